package herds

import "context"

type Repository interface {
	Create(ctx context.Context, h Herd) error
	Update(ctx context.Context, h Herd) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Herd, error)
	// ListByOwner devuelve en orden estable de creación.
	ListByOwner(ctx context.Context, ownerID string) ([]Herd, error)
}
