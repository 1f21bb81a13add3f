package authenticating

import (
	"context"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
)

type principalKey struct{}

// ContextWithPrincipal anexa o principal já resolvido ao contexto da chamada
func ContextWithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*domain.Principal)
	return principal, ok && principal != nil
}

// ContextIdentity é o provedor de identidade usado pelo motor analítico.
// Lê o principal colocado no contexto pelo middleware de autenticação ou pelo agendador.
type ContextIdentity struct{}

func NewIdentityProvider() *ContextIdentity {
	return &ContextIdentity{}
}

func (ContextIdentity) CurrentPrincipal(ctx context.Context) (*domain.Principal, error) {
	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return nil, NewAuthError(ErrNoPrincipal, apiErrors.ErrInvalidToken, "")
	}
	return principal, nil
}
