package scoping

import (
	"context"
	"fmt"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/guarding"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

// TenantDirectory resolve as lojas pertencentes a um usuário
type TenantDirectory interface {
	ListOwnedStoreIDs(ctx context.Context, userID int) ([]int64, error)
}

// Resolver transforma (consulta, principal) no conjunto autoritativo de lojas
type Resolver interface {
	ResolveEffectiveStoreIDs(ctx context.Context, query domain.Query, principal *domain.Principal) ([]int64, error)
}

type Service struct {
	guard     guarding.Guard
	directory TenantDirectory
}

func NewService(guard guarding.Guard, directory TenantDirectory) Resolver {
	return &Service{
		guard:     guard,
		directory: directory,
	}
}

// ResolveEffectiveStoreIDs nunca devolve "todas as lojas": qualquer ambiguidade é negada.
// O resultado vem ordenado e sem repetições.
func (s *Service) ResolveEffectiveStoreIDs(ctx context.Context, query domain.Query, principal *domain.Principal) ([]int64, error) {
	if principal == nil {
		return nil, s.guard.DenyAccess(ctx, "no principal for analytics query", nil)
	}

	switch query.Scope() {
	case domain.ScopeAdmin:
		return s.resolveAdmin(ctx, query, principal)
	case domain.ScopeVendor:
		return s.resolveVendor(ctx, principal)
	default:
		return nil, s.guard.RejectScope(ctx, query.Scope())
	}
}

func (s *Service) resolveAdmin(ctx context.Context, query domain.Query, principal *domain.Principal) ([]int64, error) {
	if !principal.AdminOverride {
		return nil, s.guard.DenyAccess(ctx, "admin scope requires administrator override", log.Fields{
			"requested_store_ids": query.StoreIDs(),
		})
	}

	storeIDs := query.StoreIDs()
	if len(storeIDs) == 0 {
		return nil, s.guard.DenyAccess(ctx, "admin scope requires an explicit store selection", nil)
	}

	return storeIDs, nil
}

func (s *Service) resolveVendor(ctx context.Context, principal *domain.Principal) ([]int64, error) {
	owned, err := s.directory.ListOwnedStoreIDs(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lojas do usuário %d: %w", principal.UserID, err)
	}

	unique := make(map[int64]struct{}, len(owned))
	for _, id := range owned {
		unique[id] = struct{}{}
	}

	if len(unique) != 1 {
		return nil, s.guard.DenyAccess(ctx, "vendor scope requires exactly one owned store", log.Fields{
			"owned_store_ids": owned,
		})
	}

	return []int64{owned[0]}, nil
}
