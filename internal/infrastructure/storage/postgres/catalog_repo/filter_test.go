package catalog_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomstock/internal/core/apperror"
	"loomstock/internal/domain"
)

func newTestRepo() *BaseRepo[any] {
	return NewBaseRepo[any](
		nil,
		"test_table", "test entity",
		[]string{"id", "code", "name", "status", "created_at"},
		[]string{"code", "name"},
		"code",
		func() any { return nil },
	)
}

func TestApplyListFilter(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		name     string
		filter   domain.ListFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filters",
			filter:  domain.ListFilter{},
			wantSQL: "SELECT id, code, name, status, created_at FROM test_table",
		},
		{
			name:     "status",
			filter:   domain.ListFilter{Status: "Active"},
			wantSQL:  "SELECT id, code, name, status, created_at FROM test_table WHERE status = $1",
			wantArgs: []any{"Active"},
		},
		{
			name:     "search over search columns",
			filter:   domain.ListFilter{Search: "bolt"},
			wantSQL:  "SELECT id, code, name, status, created_at FROM test_table WHERE (code ILIKE $1 OR name ILIKE $2)",
			wantArgs: []any{"%bolt%", "%bolt%"},
		},
		{
			name:     "status and search combined",
			filter:   domain.ListFilter{Status: "Active", Search: "bolt"},
			wantSQL:  "SELECT id, code, name, status, created_at FROM test_table WHERE status = $1 AND (code ILIKE $2 OR name ILIKE $3)",
			wantArgs: []any{"Active", "%bolt%", "%bolt%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := repo.applyListFilter(repo.baseSelect(), tt.filter)

			sql, args, err := q.ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, len(tt.wantArgs), len(args))
			for i := range tt.wantArgs {
				assert.Equal(t, tt.wantArgs[i], args[i])
			}
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	repo := newTestRepo()

	tests := []struct {
		orderBy string
		want    string
	}{
		{"", "created_at DESC"},
		{"name", "name ASC"},
		{"+name", "name ASC"},
		{"-name", "name DESC"},
		{"-created_at", "created_at DESC"},
	}

	for _, tt := range tests {
		got, err := repo.parseOrderBy(tt.orderBy)
		require.NoError(t, err, tt.orderBy)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseOrderBy_UnknownColumn(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.parseOrderBy("password; DROP TABLE users")
	require.Error(t, err)
	assert.True(t, apperror.IsAppError(err))
}
