package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

const (
	refundEntriesTable = "refund_entries r"
)

// RefundLedgerRepository lê os lançamentos de reembolso (append-only)
type RefundLedgerRepository interface {
	ListRefundEntries(ctx context.Context, filter domain.LedgerFilter) ([]*domain.RefundEntry, error)
}

type refundLedgerRepository struct {
	conn postgres.Queryer
}

func NewRefundLedgerRepository(conn postgres.Queryer) RefundLedgerRepository {
	return &refundLedgerRepository{
		conn: conn,
	}
}

// buildRefundEntriesQuery busca reembolsos de eventos das lojas do filtro cujos pedidos foram
// feitos na janela. O escopo segue a loja dona do evento, não o vendor_id do lançamento,
// para que um vendor_id divergente chegue ao serviço. O status não é filtrado aqui.
func buildRefundEntriesQuery(filter domain.LedgerFilter) (string, []any, error) {
	return squirrel.
		Select("r.id, r.order_id, r.event_id, e.store_id, r.vendor_id, r.amount_cents, r.currency, r.status, r.created_at").
		From(refundEntriesTable).
		Join("orders o ON o.id = r.order_id").
		Join("events e ON e.id = r.event_id").
		Where(squirrel.Eq{"e.store_id": filter.StoreIDs}).
		Where(squirrel.Expr("o.placed_at >= to_timestamp(?)", filter.Start)).
		Where(squirrel.Expr("o.placed_at <= to_timestamp(?)", filter.End)).
		OrderBy("r.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *refundLedgerRepository) ListRefundEntries(ctx context.Context, filter domain.LedgerFilter) ([]*domain.RefundEntry, error) {
	query, args, err := buildRefundEntriesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.RefundEntry, 0)
	for rows.Next() {
		entry := &domain.RefundEntry{}
		var (
			status       string
			eventStoreID sql.NullInt64
		)

		if err := rows.Scan(
			&entry.ID,
			&entry.OrderID,
			&entry.EventID,
			&eventStoreID,
			&entry.VendorID,
			&entry.AmountCents,
			&entry.Currency,
			&status,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear reembolso: %w", err)
		}

		entry.Currency = normalizeCurrency(entry.Currency)
		if eventStoreID.Valid {
			entry.EventStoreID = &eventStoreID.Int64
		}
		entry.Status = domain.RefundStatus(status)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
