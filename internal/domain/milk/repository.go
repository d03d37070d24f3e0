package milk

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	// ListByCow devuelve ordenado por fecha desc.
	ListByCow(ctx context.Context, cowID string) ([]Record, error)
}
