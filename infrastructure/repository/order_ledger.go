package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

const (
	orderLinesTable = "order_lines ol"
)

// OrderLedgerRepository lê pedidos e linhas de pedido; nunca escreve
type OrderLedgerRepository interface {
	ListOrderLines(ctx context.Context, filter domain.LedgerFilter) ([]*domain.OrderLineRecord, error)
}

type orderLedgerRepository struct {
	conn postgres.Queryer
}

func NewOrderLedgerRepository(conn postgres.Queryer) OrderLedgerRepository {
	return &orderLedgerRepository{
		conn: conn,
	}
}

// buildOrderLinesQuery filtra por janela (inclusiva) e pela loja dona do evento.
// Linhas sem evento ficam de fora pelo JOIN, o que não muda nenhuma métrica.
func buildOrderLinesQuery(filter domain.LedgerFilter) (string, []any, error) {
	return squirrel.
		Select(
			"o.id, o.store_id, o.state, EXTRACT(EPOCH FROM o.placed_at)::bigint",
			"ol.id, ol.unit_price_cents, ol.quantity, ol.currency, ol.event_id, e.store_id, ol.kind",
		).
		From(orderLinesTable).
		Join("orders o ON o.id = ol.order_id").
		Join("events e ON e.id = ol.event_id").
		Where(squirrel.Eq{"o.state": string(domain.OrderStateCompleted)}).
		Where(squirrel.Expr("o.placed_at >= to_timestamp(?)", filter.Start)).
		Where(squirrel.Expr("o.placed_at <= to_timestamp(?)", filter.End)).
		Where(squirrel.Eq{"e.store_id": filter.StoreIDs}).
		OrderBy("o.id ASC", "ol.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *orderLedgerRepository) ListOrderLines(ctx context.Context, filter domain.LedgerFilter) ([]*domain.OrderLineRecord, error) {
	query, args, err := buildOrderLinesQuery(filter)
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

	records := make([]*domain.OrderLineRecord, 0)
	for rows.Next() {
		record, err := scanOrderLine(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de pedido: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func scanOrderLine(rows *sql.Rows) (*domain.OrderLineRecord, error) {
	record := &domain.OrderLineRecord{}
	var (
		state        string
		kind         string
		eventID      sql.NullInt64
		eventStoreID sql.NullInt64
	)

	err := rows.Scan(
		&record.Order.ID,
		&record.Order.StoreID,
		&state,
		&record.Order.PlacedAt,
		&record.Line.ID,
		&record.Line.UnitPriceCents,
		&record.Line.Quantity,
		&record.Line.Currency,
		&eventID,
		&eventStoreID,
		&kind,
	)
	if err != nil {
		return nil, err
	}

	record.Order.State = domain.OrderState(state)
	record.Line.Currency = normalizeCurrency(record.Line.Currency)
	record.Line.OrderID = record.Order.ID
	record.Line.Kind = domain.LineKind(kind)
	if eventID.Valid {
		record.Line.EventID = &eventID.Int64
	}
	if eventStoreID.Valid {
		record.Line.EventStoreID = &eventStoreID.Int64
	}

	return record, nil
}

// normalizeCurrency deixa o código ISO no mesmo formato das consultas (maiúsculo, sem espaços)
func normalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}
