package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/id"
	"salestrack/internal/core/tx/txtest"
	"salestrack/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, c *Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, categoryID id.ID) (*Category, error) {
	args := m.Called(ctx, categoryID)
	c, _ := args.Get(0).(*Category)
	return c, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, c *Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, categoryID id.ID) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *mockRepo) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[*Category], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.ListResult[*Category]), args.Error(1)
}

func (m *mockRepo) ListAll(ctx context.Context) ([]*Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*Category), args.Error(1)
}

func TestService_CreateNamed(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *Category) bool {
		return c.DisplayName == "Lighting"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Category).ID = 1
	}).Return(nil)

	c, err := NewService(repo, &txtest.Manager{}).CreateNamed(context.Background(), "  Lighting ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Lighting", c.DisplayName)
}

func TestService_CreateNamed_Duplicate(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Create", mock.Anything, mock.Anything).
		Return(apperror.NewDuplicate("category", "display_name", "Lighting"))

	_, err := NewService(repo, &txtest.Manager{}).CreateNamed(context.Background(), "Lighting")

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Equal(t, "display_name", appErr.Details["field"])
}

func TestCategory_Validate(t *testing.T) {
	assert.Error(t, NewCategory("   ").Validate(context.Background()))
	assert.Error(t, NewCategory(strings.Repeat("x", MaxDisplayNameLength+1)).Validate(context.Background()))
	assert.NoError(t, NewCategory(strings.Repeat("x", MaxDisplayNameLength)).Validate(context.Background()))
}

func TestService_Delete_Protected(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Category{DisplayName: "Lighting"}, nil)
	repo.On("Delete", mock.Anything, int64(1)).Return(apperror.NewProtectedReference("category", int64(1)))

	err := NewService(repo, &txtest.Manager{}).Delete(context.Background(), 1)
	assert.True(t, apperror.HasCode(err, apperror.CodeProtectedReference))
}

func TestService_ListAll(t *testing.T) {
	repo := &mockRepo{}
	want := []*Category{{DisplayName: "A"}, {DisplayName: "B"}}
	repo.On("ListAll", mock.Anything).Return(want, nil)

	got, err := NewService(repo, &txtest.Manager{}).ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
