package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

type MoneyRowResponse struct {
	StoreID     int64  `json:"store_id"`
	EventID     int64  `json:"event_id"`
	Currency    string `json:"currency"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
}

type CountRowResponse struct {
	StoreID int64 `json:"store_id"`
	EventID int64 `json:"event_id"`
	Count   int64 `json:"count"`
}

type MetricResponse struct {
	Metric   domain.Metric `json:"metric"`
	Scope    domain.Scope  `json:"scope"`
	StoreIDs []int64       `json:"store_ids"`
	Start    int64         `json:"start"`
	End      int64         `json:"end"`
	Currency string        `json:"currency,omitempty"`
	Rows     any           `json:"rows"`
}

var (
	errInvalidParam = errors.New("parâmetro inválido")
	errMissingParam = errors.New("parâmetro obrigatório ausente")
)

// GetMetric atende uma métrica do motor analítico. Escopo, lojas, janela e moeda vêm da query string.
func GetMetric(service analytics.QueryService, metric domain.Metric) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseAnalyticsQuery(r)
		if err != nil {
			code := apiErrors.ErrInvalidFormat
			if errors.Is(err, errMissingParam) {
				code = apiErrors.ErrMissingRequiredData
			}
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		response := MetricResponse{
			Metric:   metric,
			Scope:    query.Scope(),
			StoreIDs: query.StoreIDs(),
			Start:    query.Start(),
			End:      query.End(),
			Currency: query.Currency(),
		}

		switch metric.Kind() {
		case domain.MetricKindMoney:
			rows, err := moneyMetric(r, service, metric, query)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			response.Rows = toMoneyResponse(rows)
		case domain.MetricKindCount:
			rows, err := service.TicketsSold(r.Context(), query)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}
			response.Rows = toCountResponse(rows)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Métrica desconhecida", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func moneyMetric(r *http.Request, service analytics.QueryService, metric domain.Metric, query domain.Query) ([]domain.MoneyRow, error) {
	switch metric {
	case domain.MetricGrossRevenue:
		return service.GrossRevenue(r.Context(), query)
	case domain.MetricRefundAmount:
		return service.RefundAmount(r.Context(), query)
	case domain.MetricNetRevenue:
		return service.NetRevenue(r.Context(), query)
	default:
		return nil, domain.NewAnalyticsError(domain.ErrInvariantViolation, metric, "metric is not a money metric")
	}
}

func parseAnalyticsQuery(r *http.Request) (domain.Query, error) {
	values := r.URL.Query()

	rawStart, rawEnd := values.Get("start"), values.Get("end")
	if rawStart == "" || rawEnd == "" {
		return domain.Query{}, errors.Wrap(errMissingParam, "start e end são obrigatórios")
	}

	start, err := utils.ParseUnixBound(rawStart, false)
	if err != nil {
		return domain.Query{}, errors.Wrapf(errInvalidParam, "start: %s", err)
	}

	end, err := utils.ParseUnixBound(rawEnd, true)
	if err != nil {
		return domain.Query{}, errors.Wrapf(errInvalidParam, "end: %s", err)
	}

	storeIDs, err := parseStoreIDs(values.Get("store_ids"))
	if err != nil {
		return domain.Query{}, err
	}

	return domain.NewQuery(
		domain.ParseScope(values.Get("scope")),
		storeIDs,
		start,
		end,
		values.Get("currency"),
	), nil
}

func parseStoreIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(errInvalidParam, "store_ids: %q não é um ID válido", part)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func toMoneyResponse(rows []domain.MoneyRow) []MoneyRowResponse {
	response := make([]MoneyRowResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, MoneyRowResponse{
			StoreID:     row.StoreID,
			EventID:     row.EventID,
			Currency:    row.Currency,
			AmountCents: row.AmountCents,
			Amount:      decimal.New(row.AmountCents, -2).StringFixed(2),
		})
	}
	return response
}

func toCountResponse(rows []domain.CountRow) []CountRowResponse {
	response := make([]CountRowResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, CountRowResponse{
			StoreID: row.StoreID,
			EventID: row.EventID,
			Count:   row.Count,
		})
	}
	return response
}
