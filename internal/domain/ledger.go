package domain

import "time"

type OrderState string

const (
	OrderStatePending   OrderState = "pending"
	OrderStateCompleted OrderState = "completed"
	OrderStateCancelled OrderState = "cancelled"
)

type LineKind string

const (
	LineKindTicket LineKind = "ticket"
	LineKindAddon  LineKind = "addon"
)

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "pending"
	RefundStatusCompleted RefundStatus = "completed"
	RefundStatusFailed    RefundStatus = "failed"
)

type Order struct {
	ID       int64      `json:"id"`
	StoreID  int64      `json:"store_id"`
	State    OrderState `json:"state"`
	PlacedAt int64      `json:"placed_at"` // Unix em segundos
}

// OrderLine é uma linha de pedido. EventID e EventStoreID são nulos para linhas sem evento
// (ex.: taxa de serviço); EventStoreID é a loja dona do evento.
type OrderLine struct {
	ID             int64    `json:"id"`
	OrderID        int64    `json:"order_id"`
	UnitPriceCents int64    `json:"unit_price_cents"`
	Quantity       int64    `json:"quantity"`
	Currency       string   `json:"currency"`
	EventID        *int64   `json:"event_id"`
	EventStoreID   *int64   `json:"event_store_id"`
	Kind           LineKind `json:"kind"`
}

// OrderLineRecord é a linha de pedido junto do pedido ao qual pertence, como o ledger a entrega
type OrderLineRecord struct {
	Order Order
	Line  OrderLine
}

// IsAnchored aplica a regra de ancoragem: apenas ingressos com preço positivo e evento vinculado
// participam das métricas por evento.
func (l OrderLine) IsAnchored() bool {
	return l.Kind == LineKindTicket &&
		l.UnitPriceCents > 0 &&
		l.EventID != nil &&
		l.EventStoreID != nil
}

// RefundEntry é um lançamento de reembolso. EventStoreID é a loja dona do evento estornado,
// que pode divergir de VendorID quando o lançamento está inconsistente.
type RefundEntry struct {
	ID           int64        `json:"id"`
	OrderID      int64        `json:"order_id"`
	EventID      int64        `json:"event_id"`
	EventStoreID *int64       `json:"event_store_id"`
	VendorID     int64        `json:"vendor_id"`
	AmountCents  int64        `json:"amount_cents"`
	Currency     string       `json:"currency"`
	Status       RefundStatus `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// LedgerFilter restringe a leitura dos ledgers a um conjunto de lojas e a uma janela inclusiva
type LedgerFilter struct {
	StoreIDs []int64
	Start    int64
	End      int64
}
