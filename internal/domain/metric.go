package domain

// Metric é o conjunto fechado de métricas que o motor sabe calcular.
// Uma métrica nova precisa ser adicionada explicitamente aqui e nos switches abaixo.
type Metric string

const (
	MetricGrossRevenue Metric = "gross_revenue"
	MetricRefundAmount Metric = "refund_amount"
	MetricNetRevenue   Metric = "net_revenue"
	MetricTicketsSold  Metric = "tickets_sold"
)

// MetricKind separa métricas monetárias (centavos) de métricas de contagem
type MetricKind int

const (
	MetricKindUnknown MetricKind = iota
	MetricKindMoney
	MetricKindCount
)

func (k MetricKind) String() string {
	switch k {
	case MetricKindMoney:
		return "money"
	case MetricKindCount:
		return "count"
	default:
		return "unknown"
	}
}

// ParseMetric converte o nome recebido em Metric sem validar; AssertKnownMetric rejeita o resto
func ParseMetric(name string) Metric {
	return Metric(name)
}

// IsKnown é a allow-list de métricas
func (m Metric) IsKnown() bool {
	switch m {
	case MetricGrossRevenue, MetricRefundAmount, MetricNetRevenue, MetricTicketsSold:
		return true
	default:
		return false
	}
}

func (m Metric) Kind() MetricKind {
	switch m {
	case MetricGrossRevenue, MetricRefundAmount, MetricNetRevenue:
		return MetricKindMoney
	case MetricTicketsSold:
		return MetricKindCount
	default:
		return MetricKindUnknown
	}
}

// IsOrderLineAnchored indica se a métrica é calculada a partir de linhas de pedido
// vinculadas a um evento e com preço positivo.
func (m Metric) IsOrderLineAnchored() bool {
	switch m {
	case MetricGrossRevenue, MetricRefundAmount, MetricNetRevenue, MetricTicketsSold:
		return true
	default:
		return false
	}
}
