package accounts

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Account, error)
	// Save inserta o reemplaza la cuenta.
	Save(ctx context.Context, a Account) error
	List(ctx context.Context) ([]Account, error)
}
