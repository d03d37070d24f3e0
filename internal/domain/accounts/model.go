package accounts

import "time"

// Role es el rol de la cuenta dentro de la finca.
// @Enum admin, member
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Account es el registro local de una identidad autenticada.
type Account struct {
	ID          string // mismo id que el del proveedor de identidad
	DisplayName string
	Email       string
	Role        Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
