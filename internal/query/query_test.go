package query_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/ecomlab/storefront-admin/internal/query"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClausePredicates(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		sql, args, err := query.Equal{Column: "status", Value: "pending"}.Predicate().ToSql()
		require.NoError(t, err)
		assert.Equal(t, "status = ?", sql)
		assert.Equal(t, []any{"pending"}, args)
	})

	t.Run("range with both bounds", func(t *testing.T) {
		sql, args, err := query.Range{Column: "total_amount", Min: 50.0, Max: 200.0}.Predicate().ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(total_amount >= ? AND total_amount <= ?)", sql)
		assert.Equal(t, []any{50.0, 200.0}, args)
	})

	t.Run("range with min only", func(t *testing.T) {
		sql, args, err := query.Range{Column: "total_amount", Min: 50.0}.Predicate().ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(total_amount >= ?)", sql)
		assert.Equal(t, []any{50.0}, args)
	})

	t.Run("match ORs ILIKE over all columns", func(t *testing.T) {
		match := query.Match{Columns: []string{"order_number", "customer_name"}, Term: "smith"}
		sql, args, err := match.Predicate().ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(order_number ILIKE ? OR customer_name ILIKE ?)", sql)
		assert.Equal(t, []any{"%smith%", "%smith%"}, args)
	})
}

func TestApply(t *testing.T) {
	clauses := []query.Clause{
		query.Equal{Column: "status", Value: "shipped"},
		query.Range{Column: "total_amount", Min: 10.0},
	}

	sql, args, err := query.Apply(sq.Select("COUNT(*)").From("orders"), clauses).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM orders WHERE status = ? AND (total_amount >= ?)", sql)
	assert.Equal(t, []any{"shipped", 10.0}, args)
}

func TestParsePage(t *testing.T) {
	testCases := []struct {
		name       string
		page       string
		limit      string
		wantNumber int
		wantSize   int
		wantOffset uint64
	}{
		{name: "defaults", page: "", limit: "", wantNumber: 1, wantSize: 10, wantOffset: 0},
		{name: "explicit", page: "2", limit: "5", wantNumber: 2, wantSize: 5, wantOffset: 5},
		{name: "malformed page", page: "abc", limit: "5", wantNumber: 1, wantSize: 5, wantOffset: 0},
		{name: "negative values", page: "-2", limit: "-5", wantNumber: 1, wantSize: 10, wantOffset: 0},
		{name: "zero values", page: "0", limit: "0", wantNumber: 1, wantSize: 10, wantOffset: 0},
		{name: "deep page", page: "7", limit: "25", wantNumber: 7, wantSize: 25, wantOffset: 150},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := query.ParsePage(tc.page, tc.limit)
			assert.Equal(t, tc.wantNumber, p.Number)
			assert.Equal(t, tc.wantSize, p.Size)
			assert.Equal(t, tc.wantOffset, p.Offset())
			assert.Equal(t, uint64(tc.wantSize), p.Limit())
		})
	}
}

func TestPageTotalPages(t *testing.T) {
	p := query.Page{Number: 2, Size: 5}

	assert.Equal(t, 3, p.TotalPages(12))
	assert.Equal(t, 1, p.TotalPages(5))
	assert.Equal(t, 2, p.TotalPages(6))
	assert.Equal(t, 0, p.TotalPages(0))
}

func TestParseOrderList(t *testing.T) {
	t.Run("empty request uses defaults", func(t *testing.T) {
		list := query.ParseOrderList(url.Values{})

		assert.Empty(t, list.Clauses)
		assert.Equal(t, query.Sort{Column: "created_at", Desc: true}, list.Sort)
		assert.Equal(t, query.Page{Number: 1, Size: 10}, list.Page)
		assert.Empty(t, list.Applied)
	})

	t.Run("all filters", func(t *testing.T) {
		values := url.Values{
			"status":    {"pending"},
			"userId":    {"7"},
			"minAmount": {"50"},
			"maxAmount": {"200"},
			"startDate": {"2025-01-01"},
			"endDate":   {"2025-02-01"},
			"search":    {"smith"},
			"sortBy":    {"totalAmount"},
			"sortOrder": {"asc"},
			"page":      {"2"},
			"limit":     {"5"},
		}

		list := query.ParseOrderList(values)

		require.Len(t, list.Clauses, 5)
		assert.Equal(t, query.Equal{Column: "status", Value: "pending"}, list.Clauses[0])
		assert.Equal(t, query.Equal{Column: "user_id", Value: int64(7)}, list.Clauses[1])

		amount, ok := list.Clauses[2].(query.Range)
		require.True(t, ok)
		assert.Equal(t, "total_amount", amount.Column)
		assert.Equal(t, 50.0, amount.Min)
		assert.Equal(t, 200.0, amount.Max)

		dates, ok := list.Clauses[3].(query.Range)
		require.True(t, ok)
		assert.Equal(t, "created_at", dates.Column)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), dates.Min)
		assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), dates.Max)

		assert.Equal(t, query.Match{Columns: query.SearchColumns, Term: "smith"}, list.Clauses[4])

		assert.Equal(t, query.Sort{Column: "total_amount", Desc: false}, list.Sort)
		assert.Equal(t, query.Page{Number: 2, Size: 5}, list.Page)

		assert.Equal(t, "pending", list.Applied["status"])
		assert.Equal(t, int64(7), list.Applied["userId"])
		assert.Equal(t, "smith", list.Applied["search"])
	})

	t.Run("malformed numbers are dropped", func(t *testing.T) {
		values := url.Values{
			"userId":    {"seven"},
			"minAmount": {"lots"},
			"maxAmount": {"200"},
		}

		list := query.ParseOrderList(values)

		require.Len(t, list.Clauses, 1)
		amount, ok := list.Clauses[0].(query.Range)
		require.True(t, ok)
		assert.Nil(t, amount.Min)
		assert.Equal(t, 200.0, amount.Max)
	})

	t.Run("malformed date leaves that bound unconstrained", func(t *testing.T) {
		values := url.Values{
			"startDate": {"not-a-date"},
			"endDate":   {"2025-03-01"},
		}

		list := query.ParseOrderList(values)

		require.Len(t, list.Clauses, 1)
		dates, ok := list.Clauses[0].(query.Range)
		require.True(t, ok)
		assert.Nil(t, dates.Min)
		assert.NotNil(t, dates.Max)
	})

	t.Run("rfc3339 dates", func(t *testing.T) {
		values := url.Values{"startDate": {"2025-01-15T10:30:00Z"}}

		list := query.ParseOrderList(values)

		require.Len(t, list.Clauses, 1)
		dates := list.Clauses[0].(query.Range)
		assert.Equal(t, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), dates.Min)
	})

	t.Run("unknown sort field degrades to default", func(t *testing.T) {
		values := url.Values{"sortBy": {"secretColumn; DROP TABLE orders"}}

		list := query.ParseOrderList(values)

		assert.Equal(t, query.Sort{Column: "created_at", Desc: true}, list.Sort)
	})

	t.Run("explicit non desc sort order is ascending", func(t *testing.T) {
		values := url.Values{"sortBy": {"createdAt"}, "sortOrder": {"ascending"}}

		list := query.ParseOrderList(values)

		assert.False(t, list.Sort.Desc)
	})
}

func TestParseSearchFields(t *testing.T) {
	testCases := []struct {
		name   string
		fields string
		want   []string
	}{
		{
			name:   "empty falls back to defaults",
			fields: "",
			want:   []string{"order_number", "customer_name", "customer_email"},
		},
		{
			name:   "explicit subset",
			fields: "orderNumber,customerInfo.email",
			want:   []string{"order_number", "customer_email"},
		},
		{
			name:   "unknown fields are dropped",
			fields: "orderNumber,passwordHash",
			want:   []string{"order_number"},
		},
		{
			name:   "all unknown falls back to defaults",
			fields: "passwordHash,secret",
			want:   []string{"order_number", "customer_name", "customer_email"},
		},
		{
			name:   "duplicates collapse",
			fields: "status,status,orderNumber",
			want:   []string{"status", "order_number"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, query.ParseSearchFields(tc.fields))
		})
	}
}

func TestSortOrderBy(t *testing.T) {
	assert.Equal(t, "created_at DESC", query.Sort{Column: "created_at", Desc: true}.OrderBy())
	assert.Equal(t, "total_amount ASC", query.Sort{Column: "total_amount"}.OrderBy())
}
