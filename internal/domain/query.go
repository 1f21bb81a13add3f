package domain

import (
	"slices"
	"strings"
)

// Scope identifica o modo de autorização de uma consulta analítica
type Scope string

const (
	ScopeAdmin  Scope = "admin"
	ScopeVendor Scope = "vendor"
)

// ParseScope converte o valor recebido do transporte em Scope.
// Valores desconhecidos são preservados para que o resolvedor de escopo os rejeite.
func ParseScope(value string) Scope {
	return Scope(strings.ToLower(strings.TrimSpace(value)))
}

// IsKnown indica se o escopo é uma das variantes reconhecidas
func (s Scope) IsKnown() bool {
	switch s {
	case ScopeAdmin, ScopeVendor:
		return true
	default:
		return false
	}
}

// Query descreve uma única requisição analítica. É imutável após a construção
// e não se valida sozinha: as regras estruturais ficam com o guarding.
type Query struct {
	scope    Scope
	storeIDs []int64
	start    int64
	end      int64
	currency string
}

// NewQuery cria uma consulta. storeIDs é copiado e deduplicado; currency vazia significa ausente.
func NewQuery(scope Scope, storeIDs []int64, start, end int64, currency string) Query {
	ids := make([]int64, 0, len(storeIDs))
	for _, id := range storeIDs {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return Query{
		scope:    scope,
		storeIDs: ids,
		start:    start,
		end:      end,
		currency: strings.ToUpper(strings.TrimSpace(currency)),
	}
}

func (q Query) Scope() Scope {
	return q.scope
}

// StoreIDs retorna uma cópia das lojas solicitadas
func (q Query) StoreIDs() []int64 {
	return slices.Clone(q.storeIDs)
}

func (q Query) Start() int64 {
	return q.start
}

func (q Query) End() int64 {
	return q.end
}

func (q Query) Currency() string {
	return q.currency
}

func (q Query) HasCurrency() bool {
	return q.currency != ""
}

// Contains indica se o instante (Unix) está dentro da janela inclusiva da consulta
func (q Query) Contains(ts int64) bool {
	return ts >= q.start && ts <= q.end
}
