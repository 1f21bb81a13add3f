package analytics

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/guarding"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/scoping"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

// lineRef liga um reembolso à linha de pedido que ele estorna
type lineRef struct {
	orderID int64
	eventID int64
}

// Service implementa QueryService. Não guarda estado entre chamadas: cada chamada
// resolve o escopo e relê os ledgers.
type Service struct {
	guard    guarding.Guard
	resolver scoping.Resolver
	identity IdentityProvider
	orders   OrderLedger
	refunds  RefundLedger
}

func NewService(
	guard guarding.Guard,
	resolver scoping.Resolver,
	identity IdentityProvider,
	orders OrderLedger,
	refunds RefundLedger,
) QueryService {
	return &Service{
		guard:    guard,
		resolver: resolver,
		identity: identity,
		orders:   orders,
		refunds:  refunds,
	}
}

func (s *Service) GrossRevenue(ctx context.Context, query domain.Query) ([]domain.MoneyRow, error) {
	ctx, storeIDs, err := s.prepare(ctx, domain.MetricGrossRevenue, query)
	if err != nil {
		return nil, err
	}

	gross, err := s.grossTotals(ctx, query, storeIDs)
	if err != nil {
		return nil, err
	}

	return moneyRows(gross, query.Currency()), nil
}

func (s *Service) RefundAmount(ctx context.Context, query domain.Query) ([]domain.MoneyRow, error) {
	ctx, storeIDs, err := s.prepare(ctx, domain.MetricRefundAmount, query)
	if err != nil {
		return nil, err
	}

	lines, err := s.eligibleLines(ctx, query, storeIDs)
	if err != nil {
		return nil, err
	}

	refunds, err := s.refundTotals(ctx, query, storeIDs, lines)
	if err != nil {
		return nil, err
	}

	return moneyRows(refunds, query.Currency()), nil
}

func (s *Service) NetRevenue(ctx context.Context, query domain.Query) ([]domain.MoneyRow, error) {
	ctx, storeIDs, err := s.prepare(ctx, domain.MetricNetRevenue, query)
	if err != nil {
		return nil, err
	}

	lines, err := s.eligibleLines(ctx, query, storeIDs)
	if err != nil {
		return nil, err
	}

	gross, err := s.sumGross(ctx, query, lines)
	if err != nil {
		return nil, err
	}

	refunds, err := s.refundTotals(ctx, query, storeIDs, lines)
	if err != nil {
		return nil, err
	}

	net := make(map[domain.RowKey]int64, len(gross))
	for _, key := range sortedKeys(gross) {
		refund := refunds[key]
		if err := s.guard.AssertRefundWithinGross(ctx, key, gross[key], refund); err != nil {
			return nil, err
		}
		net[key] = gross[key] - refund
	}

	for _, key := range sortedKeys(refunds) {
		_, hasGross := gross[key]
		if err := s.guard.AssertRefundHasGross(ctx, key, hasGross, refunds[key]); err != nil {
			return nil, err
		}
	}

	return moneyRows(net, query.Currency()), nil
}

func (s *Service) TicketsSold(ctx context.Context, query domain.Query) ([]domain.CountRow, error) {
	ctx, storeIDs, err := s.prepare(ctx, domain.MetricTicketsSold, query)
	if err != nil {
		return nil, err
	}

	lines, err := s.eligibleLines(ctx, query, storeIDs)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.RowKey]int64)
	for _, record := range lines {
		counts[lineKey(record)]++
	}

	rows := make([]domain.CountRow, 0, len(counts))
	for _, key := range sortedKeys(counts) {
		rows = append(rows, domain.CountRow{
			StoreID: key.StoreID,
			EventID: key.EventID,
			Count:   counts[key],
		})
	}

	return rows, nil
}

// prepare executa as verificações estruturais e a resolução de escopo, nesta ordem.
// Nenhum ledger é lido antes de todas passarem.
func (s *Service) prepare(ctx context.Context, metric domain.Metric, query domain.Query) (context.Context, []int64, error) {
	ctx = guarding.WithAudit(ctx, guarding.Audit{Metric: metric, Scope: query.Scope()})

	principal, err := s.identity.CurrentPrincipal(ctx)
	if err != nil {
		return ctx, nil, err
	}
	if principal != nil {
		ctx = guarding.WithPrincipal(ctx, principal.UserID)
	}

	if err := s.guard.AssertValidTimeWindow(ctx, query.Start(), query.End()); err != nil {
		return ctx, nil, err
	}

	if err := s.guard.AssertCurrencyPolicy(ctx, metric.Kind(), query.Currency()); err != nil {
		return ctx, nil, err
	}

	if err := s.guard.AssertKnownMetric(ctx, metric); err != nil {
		return ctx, nil, err
	}

	if err := s.guard.AssertOrderLineAnchoringApplicable(ctx, metric); err != nil {
		return ctx, nil, err
	}

	storeIDs, err := s.resolver.ResolveEffectiveStoreIDs(ctx, query, principal)
	if err != nil {
		return ctx, nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"metric":    string(metric),
		"scope":     string(query.Scope()),
		"store_ids": storeIDs,
	}).Debug("Escopo resolvido para consulta analítica")

	return ctx, storeIDs, nil
}

// eligibleLines lê o ledger e mantém apenas linhas distintas de pedidos concluídos dentro da
// janela, ancoradas a um evento de uma loja do escopo.
func (s *Service) eligibleLines(ctx context.Context, query domain.Query, storeIDs []int64) ([]*domain.OrderLineRecord, error) {
	records, err := s.orders.ListOrderLines(ctx, domain.LedgerFilter{
		StoreIDs: storeIDs,
		Start:    query.Start(),
		End:      query.End(),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao ler linhas de pedido: %w", err)
	}

	seen := make(map[int64]struct{}, len(records))
	eligible := make([]*domain.OrderLineRecord, 0, len(records))

	for _, record := range records {
		if record == nil {
			continue
		}
		if record.Order.State != domain.OrderStateCompleted || !query.Contains(record.Order.PlacedAt) {
			continue
		}
		if !record.Line.IsAnchored() || !slices.Contains(storeIDs, *record.Line.EventStoreID) {
			continue
		}
		if _, dup := seen[record.Line.ID]; dup {
			continue
		}

		seen[record.Line.ID] = struct{}{}
		eligible = append(eligible, record)
	}

	return eligible, nil
}

func (s *Service) grossTotals(ctx context.Context, query domain.Query, storeIDs []int64) (map[domain.RowKey]int64, error) {
	lines, err := s.eligibleLines(ctx, query, storeIDs)
	if err != nil {
		return nil, err
	}
	return s.sumGross(ctx, query, lines)
}

// sumGross acumula preço × quantidade; uma única linha em outra moeda invalida tudo
func (s *Service) sumGross(ctx context.Context, query domain.Query, lines []*domain.OrderLineRecord) (map[domain.RowKey]int64, error) {
	totals := make(map[domain.RowKey]int64)

	for _, record := range lines {
		if err := s.guard.AssertLineCurrency(ctx, query.Currency(), record); err != nil {
			return nil, err
		}
		totals[lineKey(record)] += record.Line.UnitPriceCents * record.Line.Quantity
	}

	return totals, nil
}

func (s *Service) refundTotals(
	ctx context.Context,
	query domain.Query,
	storeIDs []int64,
	lines []*domain.OrderLineRecord,
) (map[domain.RowKey]int64, error) {
	entries, err := s.refunds.ListRefundEntries(ctx, domain.LedgerFilter{
		StoreIDs: storeIDs,
		Start:    query.Start(),
		End:      query.End(),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao ler reembolsos: %w", err)
	}

	linked := make(map[lineRef]*domain.OrderLineRecord, len(lines))
	for _, record := range lines {
		ref := lineRef{orderID: record.Order.ID, eventID: *record.Line.EventID}
		if _, exists := linked[ref]; !exists {
			linked[ref] = record
		}
	}

	totals := make(map[domain.RowKey]int64)
	for _, entry := range entries {
		if entry == nil || entry.Status != domain.RefundStatusCompleted {
			continue
		}
		if entry.EventStoreID != nil && !slices.Contains(storeIDs, *entry.EventStoreID) {
			continue
		}

		if err := s.guard.AssertRefundCurrency(ctx, query.Currency(), entry); err != nil {
			return nil, err
		}

		record := linked[lineRef{orderID: entry.OrderID, eventID: entry.EventID}]
		if err := s.guard.AssertRefundLinked(ctx, entry, record); err != nil {
			return nil, err
		}

		totals[lineKey(record)] += entry.AmountCents
	}

	return totals, nil
}

func lineKey(record *domain.OrderLineRecord) domain.RowKey {
	return domain.RowKey{
		StoreID: *record.Line.EventStoreID,
		EventID: *record.Line.EventID,
	}
}

func sortedKeys(m map[domain.RowKey]int64) []domain.RowKey {
	return slices.SortedFunc(maps.Keys(m), domain.CompareRowKeys)
}

// moneyRows converte totais em linhas, descartando chaves zeradas
func moneyRows(totals map[domain.RowKey]int64, currency string) []domain.MoneyRow {
	rows := make([]domain.MoneyRow, 0, len(totals))
	for _, key := range sortedKeys(totals) {
		if totals[key] == 0 {
			continue
		}
		rows = append(rows, domain.MoneyRow{
			StoreID:     key.StoreID,
			EventID:     key.EventID,
			Currency:    currency,
			AmountCents: totals[key],
		})
	}
	return rows
}
