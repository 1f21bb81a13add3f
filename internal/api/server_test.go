package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/config"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	analyticsmocks "github.com/vfg2006/ticket-analytics-api/internal/usecases/analytics/mocks"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeAuditJob struct {
	triggered int
}

func (f *fakeAuditJob) TriggerManualRun() bool {
	f.triggered++
	return true
}

func (f *fakeAuditJob) GetStatus() map[string]any {
	return map[string]any{"audit_enabled": true}
}

type serverFixture struct {
	handler       http.Handler
	analytics     *analyticsmocks.MockQueryService
	authenticator *authmocks.MockAuthenticator
	audit         *fakeAuditJob
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &serverFixture{
		analytics:     analyticsmocks.NewMockQueryService(ctrl),
		authenticator: authmocks.NewMockAuthenticator(ctrl),
		audit:         &fakeAuditJob{},
	}

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0"}}
	srv, err := New(cfg, f.analytics, f.authenticator, f.audit, nil)
	require.NoError(t, err)
	f.handler = srv.httpServer.Handler

	return f
}

func (f *serverFixture) loginAs(principal *domain.Principal) {
	f.authenticator.EXPECT().ValidateToken("token-valido").Return(&domain.Claims{UserID: principal.UserID}, nil)
	f.authenticator.EXPECT().PrincipalForUser(gomock.Any(), principal.UserID).Return(principal, nil)
}

func doRequest(h http.Handler, method, url, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr.Code
}

func TestServer_HealthcheckIsPublic(t *testing.T) {
	f := newServerFixture(t)

	rec := doRequest(f.handler, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_AnalyticsRequiresToken(t *testing.T) {
	f := newServerFixture(t)

	rec := doRequest(f.handler, http.MethodGet, "/v1/analytics/gross-revenue?scope=admin&store_ids=1&start=1&end=2&currency=USD", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, rec))
}

func TestServer_InvalidTokenIsRejected(t *testing.T) {
	f := newServerFixture(t)
	f.authenticator.EXPECT().ValidateToken("expirado").Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "token expired"))

	rec := doRequest(f.handler, http.MethodGet, "/v1/analytics/gross-revenue", "expirado")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_DisabledUserIsRejected(t *testing.T) {
	f := newServerFixture(t)
	f.authenticator.EXPECT().ValidateToken("token-valido").Return(&domain.Claims{UserID: 5}, nil)
	f.authenticator.EXPECT().PrincipalForUser(gomock.Any(), 5).Return(nil, authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 5, ""))

	rec := doRequest(f.handler, http.MethodGet, "/v1/analytics/gross-revenue", "token-valido")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrUserDisabled, errorCode(t, rec))
}

func TestServer_AnalyticsRunsAsResolvedPrincipal(t *testing.T) {
	f := newServerFixture(t)
	principal := &domain.Principal{UserID: 7}
	f.loginAs(principal)

	f.analytics.EXPECT().
		TicketsSold(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, query domain.Query) ([]domain.CountRow, error) {
			got, err := authenticating.NewIdentityProvider().CurrentPrincipal(ctx)
			require.NoError(t, err)
			assert.Equal(t, principal, got)
			assert.Equal(t, domain.ScopeVendor, query.Scope())
			return []domain.CountRow{}, nil
		})

	rec := doRequest(f.handler, http.MethodGet, "/v1/analytics/tickets-sold?scope=vendor&start=1&end=2", "token-valido")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CronRoutesRequireAdminOverride(t *testing.T) {
	t.Run("Vendedor é negado", func(t *testing.T) {
		f := newServerFixture(t)
		f.loginAs(&domain.Principal{UserID: 7})

		rec := doRequest(f.handler, http.MethodPost, "/v1/cron/reconciliation/run", "token-valido")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, f.audit.triggered)
	})

	t.Run("Administrador dispara a auditoria", func(t *testing.T) {
		f := newServerFixture(t)
		f.loginAs(&domain.Principal{UserID: 1, AdminOverride: true})

		rec := doRequest(f.handler, http.MethodPost, "/v1/cron/reconciliation/run", "token-valido")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, f.audit.triggered)
	})

	t.Run("Tipo de cron desconhecido", func(t *testing.T) {
		f := newServerFixture(t)
		f.loginAs(&domain.Principal{UserID: 1, AdminOverride: true})

		rec := doRequest(f.handler, http.MethodPost, "/v1/cron/backfill/run", "token-valido")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, f.audit.triggered)
	})

	t.Run("Status das crons", func(t *testing.T) {
		f := newServerFixture(t)
		f.loginAs(&domain.Principal{UserID: 1, AdminOverride: true})

		rec := doRequest(f.handler, http.MethodGet, "/v1/cron/status", "token-valido")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "reconciliation")
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t)
	f.loginAs(&domain.Principal{UserID: 7})

	rec := doRequest(f.handler, http.MethodGet, "/v1/analytics/order-total", "token-valido")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, errorCode(t, rec))
}
