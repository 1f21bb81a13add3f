package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

const CronJobTypeReconciliation = "reconciliation"

// AuditJob é o contrato do job de auditoria exposto pelas rotas de cron
type AuditJob interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs que podem ser disparados manualmente
type CronJobServices struct {
	ReconciliationAudit AuditJob
}

// RunCronJob dispara manualmente um job agendado
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReconciliation:
			if services.ReconciliationAudit == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de auditoria de reconciliação não disponível", nil)
				return
			}
			if !services.ReconciliationAudit.TriggerManualRun() {
				writeJSON(w, r, http.StatusConflict, map[string]any{
					"message": "Cron job já está em execução",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: reconciliation", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReconciliationAudit != nil {
			status[CronJobTypeReconciliation] = services.ReconciliationAudit.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
