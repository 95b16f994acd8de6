// Package handlers provides HTTP request handlers.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/id"
	"salestrack/internal/domain"
	"salestrack/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// BindUpdate decodes an update body into obj after refusing any key listed in immutable.
func (h *BaseHandler) BindUpdate(c *gin.Context, obj any, immutable []string) bool {
	body, err := c.GetRawData()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}

	var rejected []string
	for _, k := range immutable {
		if _, ok := keys[k]; ok {
			rejected = append(rejected, k)
		}
	}
	if len(rejected) > 0 {
		h.Error(c, apperror.NewValidation("fields cannot be updated").WithDetail("fields", rejected))
		return false
	}

	if err := json.Unmarshal(body, obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// ParsePage reads the 1-based page query parameter. Absent means the first page.
func (h *BaseHandler) ParsePage(c *gin.Context) (domain.ListFilter, bool) {
	filter := domain.DefaultListFilter()
	raw := c.Query("page")
	if raw == "" {
		return filter, true
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		h.Error(c, apperror.NewFieldValidation("page", "page must be a positive integer").WithDetail("value", raw))
		return filter, false
	}
	filter.Page = page
	return filter, true
}

// ParseID parses the :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (id.ID, bool) {
	v, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewFieldValidation("id", "id must be a positive integer").WithDetail("value", c.Param("id")))
		return 0, false
	}
	return v, true
}

// ParseOptionalID parses an id query parameter; nil when absent.
func (h *BaseHandler) ParseOptionalID(c *gin.Context, key string) (*id.ID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := id.Parse(raw)
	if err != nil {
		h.Error(c, apperror.NewFieldValidation(key, key+" must be a positive integer").WithDetail("value", raw))
		return nil, false
	}
	return &v, true
}

// ParseOptionalDate parses a YYYY-MM-DD query parameter; nil when absent.
func (h *BaseHandler) ParseOptionalDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		h.Error(c, apperror.NewFieldValidation(key, key+" must be a date in YYYY-MM-DD format").WithDetail("value", raw))
		return nil, false
	}
	return &t, true
}

// RequestURL reconstructs the absolute URL of the current request.
func (h *BaseHandler) RequestURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: c.Request.URL.RawQuery,
	}
}

// Error processes error and sends appropriate response.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	h.HandleError(c, err)
}

// HandleError registers error on Gin context and aborts request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Created sends 201 response with the created resource.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Accepted sends 202 response with data.
func (h *BaseHandler) Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, data)
}

// NoContent sends 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
