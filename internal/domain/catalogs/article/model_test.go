package article

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salestrack/internal/core/apperror"
	"salestrack/internal/core/types"
)

func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name      string
		article   *Article
		wantField string
	}{
		{"valid", NewArticle("LMP01", "Lamp", 1, types.MustMoney("100.00")), ""},
		{"code trimmed to fit", NewArticle("  LMP01 ", "Lamp", 1, types.MustMoney("100.00")), ""},
		{"empty code", NewArticle("", "Lamp", 1, types.MustMoney("100.00")), "code"},
		{"code too long", NewArticle("LAMP001", "Lamp", 1, types.MustMoney("100.00")), "code"},
		{"empty name", NewArticle("L1", " ", 1, types.MustMoney("100.00")), "name"},
		{"name too long", NewArticle("L1", strings.Repeat("n", 256), 1, types.MustMoney("100.00")), "name"},
		{"no category", NewArticle("L1", "Lamp", 0, types.MustMoney("100.00")), "category"},
		{"zero cost", NewArticle("L1", "Lamp", 1, types.Zero()), "manufacturing_cost"},
		{"negative cost", NewArticle("L1", "Lamp", 1, types.MustMoney("-1")), "manufacturing_cost"},
		{"three decimals", NewArticle("L1", "Lamp", 1, types.MustMoney("1.001")), "manufacturing_cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate(context.Background())
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantField, appErr.Details["field"])
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	a := NewArticle("L1", "Lamp", 1, types.MustMoney("100.00"))
	assert.True(t, Patch{}.IsEmpty())

	name := "Desk lamp"
	cost := types.MustMoney("80.00")
	p := Patch{Name: &name, ManufacturingCost: &cost}
	assert.False(t, p.IsEmpty())

	p.Apply(a)
	assert.Equal(t, "Desk lamp", a.Name)
	assert.Equal(t, int64(1), a.CategoryID)
	assert.True(t, a.ManufacturingCost.Equal(cost))
	assert.Equal(t, "L1", a.Code)
}
