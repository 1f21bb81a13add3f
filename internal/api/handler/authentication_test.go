package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Login com sucesso",
			body: `{"email":"admin@example.com","password":"segredo"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), "admin@example.com", "segredo").Return("jwt", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Corpo inválido",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name: "Usuário inexistente responde como credencial inválida",
			body: `{"email":"x@example.com","password":"y"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "Usuário desativado",
			body: `{"email":"x@example.com","password":"y"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 3, ""))
			},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrUserDisabled,
		},
		{
			name: "Erro inesperado",
			body: `{"email":"x@example.com","password":"y"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("panic"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			rec := httptest.NewRecorder()
			Login(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "jwt", resp.Token)
				return
			}

			var apiErr apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
