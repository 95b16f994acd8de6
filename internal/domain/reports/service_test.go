package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/tx/txtest"
	"salestrack/internal/core/types"
	"salestrack/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Revenue(ctx context.Context, f RevenueFilter) (RevenuePage, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(RevenuePage), args.Error(1)
}

func TestService_Revenue(t *testing.T) {
	repo := &mockRepo{}
	txm := &txtest.Manager{}
	page := RevenuePage{
		Items: []ArticleRevenue{{
			ArticleID:               1,
			ArticleName:             "Lamp",
			CategoryName:            "Home",
			TotalRevenue:            types.MustMoney("2100.00"),
			AverageMarginPercentage: types.MustMoney("35.00"),
			SaleCount:               2,
		}},
		TotalCount: 1,
		Page:       1,
		PageSize:   domain.PageSize,
	}
	repo.On("Revenue", mock.Anything, RevenueFilter{ListFilter: domain.ListFilter{Page: 1, PageSize: domain.PageSize}}).
		Return(page, nil)

	got, err := NewService(repo, txm).Revenue(context.Background(), RevenueFilter{})
	require.NoError(t, err)

	assert.Equal(t, page, got)
	assert.Equal(t, 1, txm.ReadOnlyCalls)
	assert.Zero(t, txm.Calls)
}

func TestService_Revenue_RejectsInvertedRange(t *testing.T) {
	repo := &mockRepo{}
	from := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewService(repo, &txtest.Manager{}).Revenue(context.Background(), RevenueFilter{From: &from, To: &to})

	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	repo.AssertNotCalled(t, "Revenue", mock.Anything, mock.Anything)
}

func TestService_Revenue_WrapsRepositoryError(t *testing.T) {
	repo := &mockRepo{}
	boom := errors.New("boom")
	repo.On("Revenue", mock.Anything, mock.Anything).Return(RevenuePage{}, boom)

	_, err := NewService(repo, &txtest.Manager{}).Revenue(context.Background(), RevenueFilter{})
	assert.ErrorIs(t, err, boom)
}
