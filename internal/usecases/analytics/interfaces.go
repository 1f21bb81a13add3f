package analytics

import (
	"context"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

// OrderLedger é a leitura somente-leitura de pedidos e linhas de pedido
type OrderLedger interface {
	// ListOrderLines retorna as linhas de pedidos feitos dentro da janela cujos eventos
	// pertencem às lojas do filtro. O serviço revalida todos os critérios.
	ListOrderLines(ctx context.Context, filter domain.LedgerFilter) ([]*domain.OrderLineRecord, error)
}

// RefundLedger é a leitura somente-leitura dos lançamentos de reembolso
type RefundLedger interface {
	// ListRefundEntries retorna os reembolsos de eventos das lojas do filtro referentes a
	// pedidos feitos dentro da janela, em qualquer status e qualquer vendor_id.
	ListRefundEntries(ctx context.Context, filter domain.LedgerFilter) ([]*domain.RefundEntry, error)
}

// IdentityProvider fornece o principal da chamada atual
type IdentityProvider interface {
	CurrentPrincipal(ctx context.Context) (*domain.Principal, error)
}

// QueryService expõe as quatro métricas do motor
type QueryService interface {
	// GrossRevenue soma preço × quantidade das linhas elegíveis por (loja, evento)
	GrossRevenue(ctx context.Context, query domain.Query) ([]domain.MoneyRow, error)

	// RefundAmount soma os reembolsos concluídos vinculados a linhas elegíveis
	RefundAmount(ctx context.Context, query domain.Query) ([]domain.MoneyRow, error)

	// NetRevenue é a receita bruta menos os reembolsos, omitindo chaves zeradas
	NetRevenue(ctx context.Context, query domain.Query) ([]domain.MoneyRow, error)

	// TicketsSold conta linhas elegíveis distintas (não quantidades)
	TicketsSold(ctx context.Context, query domain.Query) ([]domain.CountRow, error)
}
