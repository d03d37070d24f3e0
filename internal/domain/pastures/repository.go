package pastures

import "context"

type Repository interface {
	Create(ctx context.Context, p Pasture) error
	Update(ctx context.Context, p Pasture) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Pasture, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Pasture, error)
}
