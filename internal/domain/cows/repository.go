package cows

import "context"

type Repository interface {
	Create(ctx context.Context, c Cow) error
	Update(ctx context.Context, c Cow) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Cow, error)
	// ListByOwner devuelve ordenado por nombre.
	ListByOwner(ctx context.Context, ownerID string) ([]Cow, error)
}
