package postgres

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salestrack/internal/core/entity"
	"salestrack/internal/domain"
)

type sampleRow struct {
	entity.BaseEntity
	Code string `db:"code"`
	Name string `db:"name"`
}

func newSampleRepo() *BaseRepo[*sampleRow] {
	return NewBaseRepo(nil, TableSpec{
		Table:     "samples",
		Entity:    "sample",
		Columns:   ExtractDBColumns[sampleRow](),
		Generated: []string{"id", "created_at"},
		Immutable: []string{"code"},
		OrderBy:   []string{"name ASC", "id ASC"},
	}, func() *sampleRow { return &sampleRow{} })
}

func TestBaseRepo_InsertQuery_SkipsGeneratedColumns(t *testing.T) {
	repo := newSampleRepo()

	sql, args, err := repo.InsertQuery(&sampleRow{Code: "C1", Name: "first"}).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO samples (code,name) VALUES ($1,$2) RETURNING id, created_at, code, name", sql)
	assert.Equal(t, []any{"C1", "first"}, args)
}

func TestBaseRepo_UpdateQuery_SkipsImmutableColumns(t *testing.T) {
	repo := newSampleRepo()
	row := &sampleRow{BaseEntity: entity.BaseEntity{ID: 9}, Code: "C1", Name: "renamed"}

	sql, args, err := repo.UpdateQuery(row).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE samples SET name = $1 WHERE id = $2 RETURNING id, created_at, code, name", sql)
	assert.Equal(t, []any{"renamed", int64(9)}, args)
}

func TestCountQuery(t *testing.T) {
	q := Builder().Select("id").From("samples").Where(squirrel.Eq{"code": "C1"})

	sql, args, err := CountQuery(q).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM (SELECT id FROM samples WHERE code = $1) AS sub", sql)
	assert.Equal(t, []any{"C1"}, args)
}

func TestPaginate(t *testing.T) {
	q := Builder().Select("id").From("samples")

	sql, _, err := Paginate(q, domain.ListFilter{Page: 1}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM samples LIMIT 25", sql)

	sql, _, err = Paginate(q, domain.ListFilter{Page: 3}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM samples LIMIT 25 OFFSET 50", sql)
}
