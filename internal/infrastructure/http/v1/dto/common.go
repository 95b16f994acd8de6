// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"net/url"
	"strconv"
	"time"

	"salestrack/internal/domain"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// --- Pagination ---

// Page is the envelope of every paginated list.
// Next and Previous are absolute links, or null at either end.
type Page[T any] struct {
	Count      int64   `json:"count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	Next       *string `json:"next"`
	Previous   *string `json:"previous"`
	Results    []T     `json:"results"`
}

// NewPage maps result through fn and links neighbour pages relative to self.
func NewPage[S, T any](self *url.URL, result domain.ListResult[S], fn func(S) T) Page[T] {
	items := make([]T, 0, len(result.Items))
	for _, it := range result.Items {
		items = append(items, fn(it))
	}

	p := Page[T]{
		Count:      result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages(),
		Results:    items,
	}
	if result.HasNext() {
		p.Next = pageLink(self, result.Page+1)
	}
	if result.HasPrevious() {
		p.Previous = pageLink(self, result.Page-1)
	}
	return p
}

// pageLink returns self with the page query parameter replaced.
func pageLink(self *url.URL, page int) *string {
	u := *self
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// --- Error Response ---

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
