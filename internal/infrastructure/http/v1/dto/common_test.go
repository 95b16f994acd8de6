package dto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salestrack/internal/domain"
)

func TestNewPage_Links(t *testing.T) {
	self, err := url.Parse("http://host/api/v1/sales/revenue?category=3&page=2")
	require.NoError(t, err)

	result := domain.ListResult[int]{Items: []int{1, 2}, TotalCount: 60, Page: 2, PageSize: domain.PageSize}
	page := NewPage(self, result, func(v int) int { return v * 10 })

	assert.Equal(t, int64(60), page.Count)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []int{10, 20}, page.Results)
	require.NotNil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://host/api/v1/sales/revenue?category=3&page=3", *page.Next)
	assert.Equal(t, "http://host/api/v1/sales/revenue?category=3&page=1", *page.Previous)
}

func TestNewPage_SinglePage(t *testing.T) {
	self, _ := url.Parse("http://host/api/v1/articles")
	page := NewPage(self, domain.NewListResult[string](domain.DefaultListFilter()), func(s string) string { return s })

	assert.Nil(t, page.Next)
	assert.Nil(t, page.Previous)
	assert.Equal(t, 0, page.TotalPages)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}
