package health

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	ListByCow(ctx context.Context, cowID string, filter ListFilter) ([]Event, error)
	Void(ctx context.Context, id string) error
}

type ListFilter struct {
	Types []EventType
	From  *time.Time
	To    *time.Time
	Query string
	Limit int
	// IncludeVoided incluye eventos anulados.
	IncludeVoided bool
}
