package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"cattle-farm-manager/internal/domain/maintenance"
)

type maintenanceRepo struct {
	mu   sync.RWMutex
	byID map[string]maintenance.Event
}

func NewMaintenanceRepo() maintenance.Repository {
	return &maintenanceRepo{
		byID: make(map[string]maintenance.Event),
	}
}

func (r *maintenanceRepo) Create(ctx context.Context, e maintenance.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("maintenance event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("maintenance event already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *maintenanceRepo) ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]maintenance.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]maintenance.Event, 0)
	for _, e := range r.byID {
		if e.OwnerID != ownerID {
			continue
		}
		if e.EventDate.Before(from) || e.EventDate.After(to) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].EventDate.After(out[j].EventDate)
	})
	return out, nil
}
