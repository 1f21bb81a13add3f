package guarding

import (
	"context"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

type auditKey struct{}

// Audit é o contexto anexado a cada registro de violação
type Audit struct {
	Metric      domain.Metric
	Scope       domain.Scope
	PrincipalID int
}

// WithAudit anexa o contexto de auditoria ao ctx
func WithAudit(ctx context.Context, audit Audit) context.Context {
	return context.WithValue(ctx, auditKey{}, audit)
}

// WithPrincipal completa o contexto de auditoria com o principal, preservando o resto
func WithPrincipal(ctx context.Context, principalID int) context.Context {
	audit := AuditFromContext(ctx)
	audit.PrincipalID = principalID
	return WithAudit(ctx, audit)
}

func AuditFromContext(ctx context.Context) Audit {
	if ctx == nil {
		return Audit{}
	}
	audit, _ := ctx.Value(auditKey{}).(Audit)
	return audit
}
