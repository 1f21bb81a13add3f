package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/database/postgres"
)

const (
	storesTable = "stores s"
)

// StoreRepository é o diretório de lojas (tenants) consultado pelo resolvedor de escopo
type StoreRepository interface {
	ListOwnedStoreIDs(ctx context.Context, userID int) ([]int64, error)
}

type storeRepository struct {
	conn postgres.Queryer
}

func NewStoreRepository(conn postgres.Queryer) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func buildOwnedStoresQuery(userID int) (string, []any, error) {
	return squirrel.
		Select("s.id").
		From(storesTable).
		Where(squirrel.Eq{"s.owner_user_id": userID}).
		Where("s.deleted_at IS NULL").
		OrderBy("s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *storeRepository) ListOwnedStoreIDs(ctx context.Context, userID int) ([]int64, error) {
	query, args, err := buildOwnedStoresQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	storeIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		storeIDs = append(storeIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return storeIDs, nil
}
