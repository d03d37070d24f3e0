package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cattle-farm-manager/internal/domain/herds"
)

type herdRepo struct {
	mu   sync.RWMutex
	byID map[string]herds.Herd
}

func NewHerdRepo() herds.Repository {
	return &herdRepo{
		byID: make(map[string]herds.Herd),
	}
}

func (r *herdRepo) Create(ctx context.Context, h herds.Herd) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(h.ID) == "" {
		return errors.New("herd id required")
	}
	if _, exists := r.byID[h.ID]; exists {
		return errors.New("herd already exists")
	}
	r.byID[h.ID] = h
	return nil
}

func (r *herdRepo) Update(ctx context.Context, h herds.Herd) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[h.ID]; !exists {
		return ErrNotFound
	}
	r.byID[h.ID] = h
	return nil
}

func (r *herdRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *herdRepo) GetByID(ctx context.Context, id string) (herds.Herd, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok {
		return herds.Herd{}, ErrNotFound
	}
	return h, nil
}

func (r *herdRepo) ListByOwner(ctx context.Context, ownerID string) ([]herds.Herd, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]herds.Herd, 0)
	for _, h := range r.byID {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
