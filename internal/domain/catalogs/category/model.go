// Package category provides the Category store: named groups of articles.
package category

import (
	"context"
	"strings"
	"unicode/utf8"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/entity"
)

// MaxDisplayNameLength mirrors categories.display_name VARCHAR(255).
const MaxDisplayNameLength = 255

// Category groups articles. DisplayName is unique and case-sensitive.
type Category struct {
	entity.BaseEntity
	DisplayName string `db:"display_name" json:"display_name"`
}

// NewCategory creates a Category with the given display name.
func NewCategory(displayName string) *Category {
	return &Category{DisplayName: displayName}
}

// Validate implements entity.Validatable.
func (c *Category) Validate(ctx context.Context) error {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	if c.DisplayName == "" {
		return apperror.NewFieldValidation("display_name", "display name is required")
	}
	if utf8.RuneCountInString(c.DisplayName) > MaxDisplayNameLength {
		return apperror.NewFieldValidation("display_name", "display name is too long").
			WithDetail("max_length", MaxDisplayNameLength)
	}
	return nil
}
