// Package guarding concentra as invariantes do motor analítico.
// É o único componente que registra violações, formando a trilha de auditoria.
package guarding

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

// Guard define as asserções disponíveis. Nenhuma delas acessa armazenamento.
type Guard interface {
	AssertValidTimeWindow(ctx context.Context, start, end int64) error
	AssertCurrencyPolicy(ctx context.Context, kind domain.MetricKind, currency string) error
	AssertKnownMetric(ctx context.Context, metric domain.Metric) error
	AssertOrderLineAnchoringApplicable(ctx context.Context, metric domain.Metric) error

	AssertLineCurrency(ctx context.Context, currency string, record *domain.OrderLineRecord) error
	AssertRefundCurrency(ctx context.Context, currency string, entry *domain.RefundEntry) error
	AssertRefundLinked(ctx context.Context, entry *domain.RefundEntry, record *domain.OrderLineRecord) error
	AssertRefundWithinGross(ctx context.Context, key domain.RowKey, grossCents, refundCents int64) error
	AssertRefundHasGross(ctx context.Context, key domain.RowKey, hasGross bool, refundCents int64) error

	DenyAccess(ctx context.Context, reason string, values log.Fields) error
	RejectScope(ctx context.Context, scope domain.Scope) error
}

type Service struct {
	logger log.Logger
}

// NewService cria o guard com o logger que recebe os registros de violação
func NewService(logger log.Logger) Guard {
	return &Service{logger: logger}
}

func (s *Service) AssertValidTimeWindow(ctx context.Context, start, end int64) error {
	if start > end {
		return s.violation(ctx, domain.ErrInvalidTimeWindow,
			fmt.Sprintf("start %d is after end %d", start, end),
			log.Fields{"start": start, "end": end})
	}
	return nil
}

func (s *Service) AssertCurrencyPolicy(ctx context.Context, kind domain.MetricKind, currency string) error {
	switch kind {
	case domain.MetricKindMoney:
		if currency == "" {
			return s.violation(ctx, domain.ErrMissingCurrency,
				"money metrics require a currency",
				log.Fields{"metric_kind": kind.String()})
		}
	case domain.MetricKindCount:
		if currency != "" {
			return s.violation(ctx, domain.ErrInvariantViolation,
				"count metrics must not carry a currency",
				log.Fields{"metric_kind": kind.String(), "currency": currency})
		}
	default:
		return s.violation(ctx, domain.ErrInvariantViolation,
			"unknown metric kind",
			log.Fields{"metric_kind": kind.String(), "currency": currency})
	}
	return nil
}

func (s *Service) AssertKnownMetric(ctx context.Context, metric domain.Metric) error {
	if !metric.IsKnown() {
		return s.violation(ctx, domain.ErrInvariantViolation,
			fmt.Sprintf("metric %q is not allowed", string(metric)),
			log.Fields{"requested_metric": string(metric)})
	}
	return nil
}

func (s *Service) AssertOrderLineAnchoringApplicable(ctx context.Context, metric domain.Metric) error {
	if !metric.IsOrderLineAnchored() {
		return s.violation(ctx, domain.ErrInvariantViolation,
			fmt.Sprintf("order line anchoring does not apply to metric %q", string(metric)),
			log.Fields{"requested_metric": string(metric)})
	}
	return nil
}

func (s *Service) AssertLineCurrency(ctx context.Context, currency string, record *domain.OrderLineRecord) error {
	if !strings.EqualFold(record.Line.Currency, currency) {
		return s.violation(ctx, domain.ErrInvariantViolation,
			fmt.Sprintf("order line %d is in %s, query is in %s", record.Line.ID, record.Line.Currency, currency),
			log.Fields{
				"order_id":      record.Order.ID,
				"order_line_id": record.Line.ID,
				"line_currency": record.Line.Currency,
				"currency":      currency,
			})
	}
	return nil
}

func (s *Service) AssertRefundCurrency(ctx context.Context, currency string, entry *domain.RefundEntry) error {
	if !strings.EqualFold(entry.Currency, currency) {
		return s.violation(ctx, domain.ErrInvariantViolation,
			fmt.Sprintf("refund %d is in %s, query is in %s", entry.ID, entry.Currency, currency),
			log.Fields{
				"refund_id":       entry.ID,
				"order_id":        entry.OrderID,
				"refund_currency": entry.Currency,
				"currency":        currency,
			})
	}
	return nil
}

// AssertRefundLinked exige que o reembolso aponte para uma linha elegível e que o vendedor
// do reembolso seja a loja dona do evento dessa linha.
func (s *Service) AssertRefundLinked(ctx context.Context, entry *domain.RefundEntry, record *domain.OrderLineRecord) error {
	if record == nil {
		return s.violation(ctx, domain.ErrInvariantViolation,
			fmt.Sprintf("refund %d has no eligible order line", entry.ID),
			log.Fields{
				"refund_id": entry.ID,
				"order_id":  entry.OrderID,
				"event_id":  entry.EventID,
				"vendor_id": entry.VendorID,
			})
	}

	if record.Line.EventStoreID == nil || *record.Line.EventStoreID != entry.VendorID {
		return s.violation(ctx, domain.ErrInvariantViolation,
			fmt.Sprintf("refund %d vendor does not own event %d", entry.ID, entry.EventID),
			log.Fields{
				"refund_id":      entry.ID,
				"order_id":       entry.OrderID,
				"event_id":       entry.EventID,
				"vendor_id":      entry.VendorID,
				"event_store_id": record.Line.EventStoreID,
			})
	}

	return nil
}

func (s *Service) AssertRefundWithinGross(ctx context.Context, key domain.RowKey, grossCents, refundCents int64) error {
	if refundCents > grossCents {
		return s.violation(ctx, domain.ErrInvariantViolation,
			fmt.Sprintf("refund %d exceeds gross %d", refundCents, grossCents),
			log.Fields{
				"store_id":     key.StoreID,
				"event_id":     key.EventID,
				"gross_cents":  grossCents,
				"refund_cents": refundCents,
			})
	}
	return nil
}

func (s *Service) AssertRefundHasGross(ctx context.Context, key domain.RowKey, hasGross bool, refundCents int64) error {
	if !hasGross && refundCents != 0 {
		return s.violation(ctx, domain.ErrInvariantViolation,
			"refund without matching gross revenue",
			log.Fields{
				"store_id":     key.StoreID,
				"event_id":     key.EventID,
				"refund_cents": refundCents,
			})
	}
	return nil
}

func (s *Service) DenyAccess(ctx context.Context, reason string, values log.Fields) error {
	return s.violation(ctx, domain.ErrAccessDenied, reason, values)
}

func (s *Service) RejectScope(ctx context.Context, scope domain.Scope) error {
	return s.violation(ctx, domain.ErrInvalidScope,
		fmt.Sprintf("scope %q is not recognized", string(scope)),
		log.Fields{"requested_scope": string(scope)})
}

// violation registra a violação com o contexto de auditoria e devolve o erro tipado
func (s *Service) violation(ctx context.Context, base error, details string, values log.Fields) error {
	audit := AuditFromContext(ctx)
	err := domain.NewAnalyticsError(base, audit.Metric, details)

	violationID, idErr := utils.GenerateID()
	if idErr != nil {
		violationID = "unavailable"
	}

	fields := log.Fields{
		"violation_id": violationID,
		"violation":    base.Error(),
		"code":         err.Code,
		"metric":       string(audit.Metric),
		"scope":        string(audit.Scope),
		"principal_id": audit.PrincipalID,
	}
	for k, v := range values {
		fields[k] = v
	}

	s.logger.WithContext(ctx).WithFields(fields).Warn(details)

	return err
}
