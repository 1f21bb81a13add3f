package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz erros tipados do domínio e da autenticação para o formato da API.
// Violações já foram registradas pelo guarding; aqui só erros inesperados são logados.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var analyticsErr *domain.AnalyticsError
	if errors.As(err, &analyticsErr) {
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Error(), map[string]any{
			"metric": analyticsErr.Metric,
		})
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao processar requisição")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar requisição", nil)
}
