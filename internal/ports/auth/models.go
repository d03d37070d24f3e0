package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID      string
	DisplayName string
	Email       string

	// Role viene del token cuando el proveedor lo emite. La decisión final
	// de autorización la toma authz contra el registro de la cuenta.
	Role string
}
