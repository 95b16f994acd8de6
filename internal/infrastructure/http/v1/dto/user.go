package dto

import (
	"time"

	"salestrack/internal/core/id"
	"salestrack/internal/domain/users"
)

type CreateUserRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r CreateUserRequest) ToUser() *users.User {
	return users.NewUser(r.Email, r.FirstName, r.LastName)
}

type UserResponse struct {
	ID        id.ID     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u *users.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
