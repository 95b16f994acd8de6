package users

import (
	"context"
	"strings"

	"salestrack/internal/core/apperror"
	appctx "salestrack/internal/core/context"
	"salestrack/internal/core/id"
	"salestrack/internal/core/tx"
	"salestrack/internal/domain"
)

// Service provides business logic for users.
type Service struct {
	*domain.CatalogService[*User]
	repo Repository
}

// NewService creates a new User service.
func NewService(repo Repository, txm tx.Manager) *Service {
	svc := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*User]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: "user",
		}),
		repo: repo,
	}
	svc.Hooks().OnBeforeCreate(normalizeEmail)
	svc.Hooks().OnBeforeUpdate(normalizeEmail)
	svc.Hooks().OnBeforeDelete(svc.refuseSelfDelete)
	return svc
}

func normalizeEmail(ctx context.Context, u *User) error {
	u.Email = strings.ToLower(u.Email)
	return nil
}

func (s *Service) refuseSelfDelete(ctx context.Context, u *User) error {
	if appctx.GetUserID(ctx) == u.ID {
		return apperror.NewConflict("users cannot delete themselves").WithDetail("id", u.ID)
	}
	return nil
}

// Me returns the user record of the caller.
func (s *Service) Me(ctx context.Context) (*User, error) {
	userID := appctx.GetUserID(ctx)
	if id.IsNil(userID) {
		return nil, apperror.NewUnauthorized("authenticated user required")
	}
	return s.GetByID(ctx, userID)
}

// GetByEmail looks a user up by email, case-insensitively.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}
