package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salestrack/internal/core/apperror"
	appctx "salestrack/internal/core/context"
	"salestrack/internal/core/entity"
	"salestrack/internal/core/id"
	"salestrack/internal/core/tx/txtest"
	"salestrack/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *mockRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*User)
	return u, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, userID id.ID) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*User], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.ListResult[*User]), args.Error(1)
}

func asUser(userID id.ID) context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{UserID: userID, Roles: []string{appctx.RoleAdmin}})
}

func TestService_Create_LowercasesEmail(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Email == "ana.lopez@example.com"
	})).Return(nil)

	err := NewService(repo, &txtest.Manager{}).Create(asUser(1), NewUser(" Ana.Lopez@Example.com ", "Ana", "Lopez"))
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUser_Validate(t *testing.T) {
	assert.Error(t, NewUser("", "a", "b").Validate(context.Background()))
	assert.Error(t, NewUser("not-an-email", "a", "b").Validate(context.Background()))
	assert.Error(t, NewUser("Ana <ana@example.com>", "a", "b").Validate(context.Background()))
	assert.NoError(t, NewUser("ana@example.com", "a", "b").Validate(context.Background()))
}

func TestService_Me(t *testing.T) {
	repo := &mockRepo{}
	me := &User{BaseEntity: entity.BaseEntity{ID: 3}, Email: "me@example.com"}
	repo.On("GetByID", mock.Anything, int64(3)).Return(me, nil)
	svc := NewService(repo, &txtest.Manager{})

	got, err := svc.Me(asUser(3))
	require.NoError(t, err)
	assert.Same(t, me, got)

	_, err = svc.Me(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeUnauthorized))
}

func TestService_Delete(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, int64(3)).Return(&User{BaseEntity: entity.BaseEntity{ID: 3}}, nil)

		err := NewService(repo, &txtest.Manager{}).Delete(asUser(3), 3)
		assert.True(t, apperror.HasCode(err, apperror.CodeConflict))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("author with sales", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("GetByID", mock.Anything, int64(4)).Return(&User{BaseEntity: entity.BaseEntity{ID: 4}}, nil)
		repo.On("Delete", mock.Anything, int64(4)).Return(apperror.NewProtectedReference("user", int64(4)))

		err := NewService(repo, &txtest.Manager{}).Delete(asUser(3), 4)
		assert.True(t, apperror.HasCode(err, apperror.CodeProtectedReference))
	})
}

func TestService_GetByEmail_Normalizes(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByEmail", mock.Anything, "ana@example.com").Return(&User{Email: "ana@example.com"}, nil)

	_, err := NewService(repo, &txtest.Manager{}).GetByEmail(context.Background(), " ANA@example.com")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
