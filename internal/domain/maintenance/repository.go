package maintenance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	// ListByOwner devuelve los eventos con EventDate en [from, to], orden desc.
	ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]Event, error)
}
