package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

func TestBuildOrderLinesQuery(t *testing.T) {
	query, args, err := buildOrderLinesQuery(domain.LedgerFilter{
		StoreIDs: []int64{1, 2},
		Start:    100,
		End:      200,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM order_lines ol")
	assert.Contains(t, query, "JOIN orders o ON o.id = ol.order_id")
	assert.Contains(t, query, "JOIN events e ON e.id = ol.event_id")
	assert.Contains(t, query, "o.state = $1")
	assert.Contains(t, query, "o.placed_at >= to_timestamp($2)")
	assert.Contains(t, query, "o.placed_at <= to_timestamp($3)")
	assert.Contains(t, query, "e.store_id IN ($4,$5)")
	assert.Equal(t, []any{"completed", int64(100), int64(200), int64(1), int64(2)}, args)
}

func TestBuildOrderLinesQuery_EmptyScopeMatchesNothing(t *testing.T) {
	query, _, err := buildOrderLinesQuery(domain.LedgerFilter{Start: 1, End: 2})
	require.NoError(t, err)

	assert.Contains(t, query, "(1=0)")
}

func TestBuildRefundEntriesQuery(t *testing.T) {
	query, args, err := buildRefundEntriesQuery(domain.LedgerFilter{
		StoreIDs: []int64{7},
		Start:    10,
		End:      20,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM refund_entries r")
	assert.Contains(t, query, "JOIN orders o ON o.id = r.order_id")
	assert.Contains(t, query, "JOIN events e ON e.id = r.event_id")
	assert.Contains(t, query, "e.store_id IN ($1)")
	assert.NotContains(t, query, "r.vendor_id IN")
	assert.Contains(t, query, "o.placed_at >= to_timestamp($2)")
	assert.Contains(t, query, "o.placed_at <= to_timestamp($3)")
	assert.NotContains(t, query, "r.status")
	assert.Equal(t, []any{int64(7), int64(10), int64(20)}, args)
}

func TestBuildOwnedStoresQuery(t *testing.T) {
	query, args, err := buildOwnedStoresQuery(42)
	require.NoError(t, err)

	assert.Equal(t, "SELECT s.id FROM stores s WHERE s.owner_user_id = $1 AND s.deleted_at IS NULL ORDER BY s.id ASC", query)
	assert.Equal(t, []any{42}, args)
}

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Código já normalizado", input: "USD", want: "USD"},
		{name: "Código em minúsculas", input: "usd", want: "USD"},
		{name: "Código com espaços", input: " eur ", want: "EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCurrency(tt.input))
		})
	}
}
