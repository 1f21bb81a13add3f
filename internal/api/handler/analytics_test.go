package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/analytics/mocks"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type metricBody struct {
	Metric   string             `json:"metric"`
	Scope    string             `json:"scope"`
	StoreIDs []int64            `json:"store_ids"`
	Start    int64              `json:"start"`
	End      int64              `json:"end"`
	Currency string             `json:"currency"`
	Rows     []MoneyRowResponse `json:"rows"`
}

func TestGetMetric_MoneyMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockQueryService(ctrl)
	service.EXPECT().
		GrossRevenue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.Query) ([]domain.MoneyRow, error) {
			assert.Equal(t, domain.ScopeAdmin, query.Scope())
			assert.Equal(t, []int64{1, 2}, query.StoreIDs())
			assert.Equal(t, int64(1710460800), query.Start())
			assert.Equal(t, int64(1710547199), query.End())
			assert.Equal(t, "USD", query.Currency())

			return []domain.MoneyRow{
				{StoreID: 1, EventID: 100, Currency: "USD", AmountCents: 2000},
				{StoreID: 2, EventID: 200, Currency: "USD", AmountCents: 550},
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/gross-revenue?scope=admin&store_ids=2,1&start=2024-03-15&end=2024-03-15&currency=usd", nil)
	rec := httptest.NewRecorder()

	GetMetric(service, domain.MetricGrossRevenue).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body metricBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "gross_revenue", body.Metric)
	assert.Equal(t, "admin", body.Scope)
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "20.00", body.Rows[0].Amount)
	assert.Equal(t, int64(2000), body.Rows[0].AmountCents)
	assert.Equal(t, "5.50", body.Rows[1].Amount)
}

func TestGetMetric_TicketsSold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockQueryService(ctrl)
	service.EXPECT().TicketsSold(gomock.Any(), gomock.Any()).Return([]domain.CountRow{{StoreID: 1, EventID: 100, Count: 4}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/analytics/tickets-sold?scope=vendor&start=1710460800&end=1710547199", nil)
	rec := httptest.NewRecorder()

	GetMetric(service, domain.MetricTicketsSold).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Rows []CountRowResponse `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []CountRowResponse{{StoreID: 1, EventID: 100, Count: 4}}, body.Rows)
}

func TestGetMetric_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Janela ausente",
			url:        "/v1/analytics/net-revenue?scope=admin&store_ids=1&currency=USD",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "Loja com ID inválido",
			url:        "/v1/analytics/net-revenue?scope=admin&store_ids=1,abc&start=1&end=2&currency=USD",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "Data em formato inválido",
			url:        "/v1/analytics/net-revenue?scope=admin&store_ids=1&start=15/03/2024&end=2&currency=USD",
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "Acesso negado",
			url:        "/v1/analytics/net-revenue?scope=admin&store_ids=1&start=1&end=2&currency=USD",
			serviceErr: domain.NewAnalyticsError(domain.ErrAccessDenied, domain.MetricNetRevenue, "admin scope requires administrator override"),
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "Violação de invariante",
			url:        "/v1/analytics/net-revenue?scope=admin&store_ids=1&start=1&end=2&currency=USD",
			serviceErr: domain.NewAnalyticsError(domain.ErrInvariantViolation, domain.MetricNetRevenue, "refund 1100 exceeds gross 1000"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrInvariantViolation,
		},
		{
			name:       "Escopo inválido",
			url:        "/v1/analytics/net-revenue?scope=root&store_ids=1&start=1&end=2&currency=USD",
			serviceErr: domain.NewAnalyticsError(domain.ErrInvalidScope, domain.MetricNetRevenue, `scope "root" is not recognized`),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidScope,
		},
		{
			name:       "Erro inesperado",
			url:        "/v1/analytics/net-revenue?scope=admin&store_ids=1&start=1&end=2&currency=USD",
			serviceErr: errors.New("erro ao ler linhas de pedido: timeout"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockQueryService(ctrl)
			if tt.serviceErr != nil {
				service.EXPECT().NetRevenue(gomock.Any(), gomock.Any()).Return(nil, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			GetMetric(service, domain.MetricNetRevenue).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestParseStoreIDs(t *testing.T) {
	ids, err := parseStoreIDs(" 3, 1 ,,2 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	ids, err = parseStoreIDs("")
	require.NoError(t, err)
	assert.Nil(t, ids)
}
