package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cattle-farm-manager/internal/domain/health"
)

type healthRepo struct {
	mu   sync.RWMutex
	byID map[string]health.Event
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byID: make(map[string]health.Event),
	}
}

func (r *healthRepo) Create(ctx context.Context, e health.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("health event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("health event already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *healthRepo) GetByID(ctx context.Context, id string) (health.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return health.Event{}, ErrNotFound
	}
	return e, nil
}

func (r *healthRepo) ListByCow(ctx context.Context, cowID string, filter health.ListFilter) ([]health.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	out := make([]health.Event, 0)

	for _, e := range r.byID {
		if e.CowID != cowID {
			continue
		}
		if !filter.IncludeVoided && e.Status == health.StatusVoided {
			continue
		}

		if len(filter.Types) > 0 {
			ok := false
			for _, t := range filter.Types {
				if e.Type == t {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		// Rango sobre event_date, ambos extremos incluidos
		if filter.From != nil && e.EventDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.EventDate.After(*filter.To) {
			continue
		}

		if q := strings.TrimSpace(filter.Query); q != "" {
			if !strings.Contains(strings.ToLower(e.Notes), strings.ToLower(q)) {
				continue
			}
		}

		out = append(out, e)
	}

	// Más reciente primero
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].RecordedAt.After(out[j].RecordedAt)
		}
		return out[i].EventDate.After(out[j].EventDate)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *healthRepo) Void(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = health.StatusVoided
	r.byID[id] = e
	return nil
}
