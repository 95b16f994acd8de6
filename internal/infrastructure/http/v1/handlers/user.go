package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"salestrack/internal/core/id"
	"salestrack/internal/domain"
	"salestrack/internal/domain/users"
	"salestrack/internal/infrastructure/http/v1/dto"
)

// UserService is the subset of users.Service used over HTTP.
type UserService interface {
	Create(ctx context.Context, u *users.User) error
	GetByID(ctx context.Context, userID id.ID) (*users.User, error)
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*users.User], error)
	Me(ctx context.Context) (*users.User, error)
	Delete(ctx context.Context, userID id.ID) error
}

// UserHandler handles /users.
type UserHandler struct {
	*BaseHandler
	service UserService
}

func NewUserHandler(base *BaseHandler, service UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, service: service}
}

// RegisterRoutes mounts the user routes on rg. admin guards the mutating routes.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, admin gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/me", h.Me)
	rg.GET("/:id", h.Get)
	rg.POST("", admin, h.Create)
	rg.DELETE("/:id", admin, h.Delete)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	u := req.ToUser()
	if err := h.service.Create(c.Request.Context(), u); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromUser(u))
}

// List handles GET /users?page=.
func (h *UserHandler) List(c *gin.Context) {
	filter, ok := h.ParsePage(c)
	if !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewPage(h.RequestURL(c), result, dto.FromUser))
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.service.Me(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(u))
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := h.ParseID(c)
	if !ok {
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromUser(u))
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
