package domain

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
)

// Erros terminais do motor analítico. Nenhum deles é transitório nem deve ser repetido.
var (
	ErrInvalidScope       = errors.New("invalid scope")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidTimeWindow  = errors.New("invalid time window")
	ErrMissingCurrency    = errors.New("missing currency")
	ErrInvariantViolation = errors.New("invariant violation")
)

// AnalyticsError é um erro com contexto adicional para auditoria e para a camada HTTP
type AnalyticsError struct {
	Err     error  // Erro base (um dos sentinelas acima)
	Code    string // Código de erro para API
	Metric  Metric // Métrica envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError cria um AnalyticsError escolhendo o código de API a partir do erro base
func NewAnalyticsError(err error, metric Metric, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     err,
		Code:    codeFor(err),
		Metric:  metric,
		Details: details,
	}
}

func codeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidScope):
		return apiErrors.ErrInvalidScope
	case errors.Is(err, ErrAccessDenied):
		return apiErrors.ErrInsufficientPrivilege
	case errors.Is(err, ErrInvalidTimeWindow):
		return apiErrors.ErrInvalidTimeWindow
	case errors.Is(err, ErrMissingCurrency):
		return apiErrors.ErrMissingCurrency
	case errors.Is(err, ErrInvariantViolation):
		return apiErrors.ErrInvariantViolation
	default:
		return apiErrors.ErrInternalServer
	}
}

// IsAnalyticsError indica se o erro pertence à taxonomia do motor analítico
func IsAnalyticsError(err error) bool {
	return errors.Is(err, ErrInvalidScope) ||
		errors.Is(err, ErrAccessDenied) ||
		errors.Is(err, ErrInvalidTimeWindow) ||
		errors.Is(err, ErrMissingCurrency) ||
		errors.Is(err, ErrInvariantViolation)
}
