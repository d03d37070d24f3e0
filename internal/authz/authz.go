// Package authz concentra la única decisión de autorización: si una cuenta
// es administradora. Las rutas la consultan a través de middleware.RequireAdmin.
package authz

import (
	"context"

	"cattle-farm-manager/internal/domain/accounts"
	"cattle-farm-manager/internal/ports/auth"
)

type AccountEnsurer interface {
	Ensure(ctx context.Context, claims auth.Claims) (accounts.Account, error)
}

type Authorizer struct {
	accounts AccountEnsurer
}

func New(acc AccountEnsurer) *Authorizer {
	return &Authorizer{accounts: acc}
}

// IsAdmin lee el rol del registro de la cuenta. Ante cualquier error niega.
func (a *Authorizer) IsAdmin(ctx context.Context, claims auth.Claims) bool {
	acc, err := a.accounts.Ensure(ctx, claims)
	if err != nil {
		return false
	}
	return acc.Role == accounts.RoleAdmin
}
