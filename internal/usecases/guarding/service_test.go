package guarding

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func newGuard() (Guard, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return NewService(log.New(logger)), hook
}

func auditCtx() context.Context {
	ctx := WithAudit(context.Background(), Audit{Metric: domain.MetricNetRevenue, Scope: domain.ScopeVendor})
	return WithPrincipal(ctx, 42)
}

func TestService_ViolationIsLoggedWithAuditContext(t *testing.T) {
	guard, hook := newGuard()

	err := guard.AssertValidTimeWindow(auditCtx(), 200, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeWindow)

	var analyticsErr *domain.AnalyticsError
	require.ErrorAs(t, err, &analyticsErr)
	assert.Equal(t, apiErrors.ErrInvalidTimeWindow, analyticsErr.Code)
	assert.Equal(t, domain.MetricNetRevenue, analyticsErr.Metric)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "net_revenue", entry.Data["metric"])
	assert.Equal(t, "vendor", entry.Data["scope"])
	assert.Equal(t, 42, entry.Data["principal_id"])
	assert.Equal(t, int64(200), entry.Data["start"])
	assert.Equal(t, int64(100), entry.Data["end"])
	assert.NotEmpty(t, entry.Data["violation_id"])
	assert.Equal(t, apiErrors.ErrInvalidTimeWindow, entry.Data["code"])
}

func TestService_AssertValidTimeWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end int64
		wantErr    bool
	}{
		{name: "Janela de um instante é válida", start: 100, end: 100},
		{name: "Janela crescente é válida", start: 100, end: 200},
		{name: "Início após o fim é inválido", start: 201, end: 200, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, hook := newGuard()

			err := guard.AssertValidTimeWindow(context.Background(), tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTimeWindow)
				assert.Len(t, hook.Entries, 1)
				return
			}

			assert.NoError(t, err)
			assert.Empty(t, hook.Entries)
		})
	}
}

func TestService_AssertCurrencyPolicy(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.MetricKind
		currency string
		wantErr  error
	}{
		{name: "Métrica monetária com moeda", kind: domain.MetricKindMoney, currency: "USD"},
		{name: "Métrica monetária sem moeda", kind: domain.MetricKindMoney, wantErr: domain.ErrMissingCurrency},
		{name: "Métrica de contagem sem moeda", kind: domain.MetricKindCount},
		{name: "Métrica de contagem com moeda", kind: domain.MetricKindCount, currency: "USD", wantErr: domain.ErrInvariantViolation},
		{name: "Tipo de métrica desconhecido", kind: domain.MetricKindUnknown, wantErr: domain.ErrInvariantViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, hook := newGuard()

			err := guard.AssertCurrencyPolicy(context.Background(), tt.kind, tt.currency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, hook.Entries, 1)
				return
			}

			assert.NoError(t, err)
			assert.Empty(t, hook.Entries)
		})
	}
}

func TestService_AssertKnownMetric(t *testing.T) {
	guard, hook := newGuard()
	ctx := context.Background()

	for _, metric := range []domain.Metric{
		domain.MetricGrossRevenue,
		domain.MetricRefundAmount,
		domain.MetricNetRevenue,
		domain.MetricTicketsSold,
	} {
		assert.NoError(t, guard.AssertKnownMetric(ctx, metric))
		assert.NoError(t, guard.AssertOrderLineAnchoringApplicable(ctx, metric))
	}
	assert.Empty(t, hook.Entries)

	err := guard.AssertKnownMetric(ctx, domain.Metric("order_total"))
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.Equal(t, "order_total", hook.LastEntry().Data["requested_metric"])

	err = guard.AssertOrderLineAnchoringApplicable(ctx, domain.Metric("order_total"))
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
}

func TestService_AssertLineAndRefundCurrency(t *testing.T) {
	guard, hook := newGuard()
	ctx := context.Background()

	record := &domain.OrderLineRecord{
		Order: domain.Order{ID: 1},
		Line:  domain.OrderLine{ID: 10, Currency: "EUR"},
	}
	assert.NoError(t, guard.AssertLineCurrency(ctx, "EUR", record))
	assert.NoError(t, guard.AssertLineCurrency(ctx, "EUR", &domain.OrderLineRecord{Line: domain.OrderLine{ID: 11, Currency: "eur"}}))
	assert.ErrorIs(t, guard.AssertLineCurrency(ctx, "USD", record), domain.ErrInvariantViolation)
	assert.Equal(t, "EUR", hook.LastEntry().Data["line_currency"])

	entry := &domain.RefundEntry{ID: 5, OrderID: 1, Currency: "EUR"}
	assert.NoError(t, guard.AssertRefundCurrency(ctx, "EUR", entry))
	assert.NoError(t, guard.AssertRefundCurrency(ctx, "EUR", &domain.RefundEntry{ID: 6, Currency: "eur"}))
	assert.ErrorIs(t, guard.AssertRefundCurrency(ctx, "USD", entry), domain.ErrInvariantViolation)
	assert.Equal(t, "EUR", hook.LastEntry().Data["refund_currency"])
}

func TestService_AssertRefundLinked(t *testing.T) {
	entry := &domain.RefundEntry{ID: 7, OrderID: 1, EventID: 100, VendorID: 10}

	tests := []struct {
		name    string
		record  *domain.OrderLineRecord
		wantErr bool
	}{
		{
			name:   "Reembolso vinculado à linha da loja dona do evento",
			record: &domain.OrderLineRecord{Line: domain.OrderLine{EventID: int64Ptr(100), EventStoreID: int64Ptr(10)}},
		},
		{
			name:    "Reembolso sem linha elegível",
			record:  nil,
			wantErr: true,
		},
		{
			name:    "Vendedor do reembolso não é dono do evento",
			record:  &domain.OrderLineRecord{Line: domain.OrderLine{EventID: int64Ptr(100), EventStoreID: int64Ptr(20)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard, hook := newGuard()

			err := guard.AssertRefundLinked(context.Background(), entry, tt.record)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvariantViolation)
				assert.Equal(t, int64(7), hook.LastEntry().Data["refund_id"])
				return
			}

			assert.NoError(t, err)
			assert.Empty(t, hook.Entries)
		})
	}
}

func TestService_ReconciliationAssertions(t *testing.T) {
	guard, _ := newGuard()
	ctx := context.Background()
	key := domain.RowKey{StoreID: 1, EventID: 2}

	assert.NoError(t, guard.AssertRefundWithinGross(ctx, key, 1000, 1000))
	assert.NoError(t, guard.AssertRefundWithinGross(ctx, key, 1000, 0))
	assert.ErrorIs(t, guard.AssertRefundWithinGross(ctx, key, 1000, 1100), domain.ErrInvariantViolation)

	assert.NoError(t, guard.AssertRefundHasGross(ctx, key, true, 500))
	assert.NoError(t, guard.AssertRefundHasGross(ctx, key, false, 0))
	assert.ErrorIs(t, guard.AssertRefundHasGross(ctx, key, false, 500), domain.ErrInvariantViolation)
}

func TestService_DenyAccessAndRejectScope(t *testing.T) {
	guard, hook := newGuard()
	ctx := auditCtx()

	err := guard.DenyAccess(ctx, "admin scope requires administrator override", log.Fields{"requested_store_ids": []int64{1}})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, hook.LastEntry().Data["code"])
	assert.Equal(t, "admin scope requires administrator override", hook.LastEntry().Message)

	err = guard.RejectScope(ctx, domain.Scope("superuser"))
	assert.ErrorIs(t, err, domain.ErrInvalidScope)
	assert.Equal(t, "superuser", hook.LastEntry().Data["requested_scope"])
}
