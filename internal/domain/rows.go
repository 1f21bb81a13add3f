package domain

import "cmp"

// RowKey é a chave de agregação de todas as métricas
type RowKey struct {
	StoreID int64
	EventID int64
}

func CompareRowKeys(a, b RowKey) int {
	if c := cmp.Compare(a.StoreID, b.StoreID); c != 0 {
		return c
	}
	return cmp.Compare(a.EventID, b.EventID)
}

type MoneyRow struct {
	StoreID     int64  `json:"store_id"`
	EventID     int64  `json:"event_id"`
	Currency    string `json:"currency"`
	AmountCents int64  `json:"amount_cents"`
}

func (r MoneyRow) Key() RowKey {
	return RowKey{StoreID: r.StoreID, EventID: r.EventID}
}

type CountRow struct {
	StoreID int64 `json:"store_id"`
	EventID int64 `json:"event_id"`
	Count   int64 `json:"count"`
}

func (r CountRow) Key() RowKey {
	return RowKey{StoreID: r.StoreID, EventID: r.EventID}
}
