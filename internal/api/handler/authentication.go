package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	}
}

// handleLoginError não diferencia usuário inexistente de senha incorreta para o cliente
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) {
		log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
		return
	}

	logger := log.ForContext(r.Context()).WithError(err).WithField("user_id", authErr.UserID)

	switch {
	case errors.Is(err, authenticating.ErrUserDisabled):
		logger.Warn("Tentativa de login de usuário desativado")
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)
	case authenticating.IsCredentialsError(err):
		logger.Warn("Tentativa de login com credenciais inválidas")
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, authErr.Code, "Email e senha são obrigatórios", nil)
	default:
		logger.Error("Erro ao realizar login")
		apiErrors.WriteError(w, authErr.Code, "Erro interno ao realizar login", nil)
	}
}
