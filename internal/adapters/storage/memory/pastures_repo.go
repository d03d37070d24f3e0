package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cattle-farm-manager/internal/domain/pastures"
)

type pastureRepo struct {
	mu   sync.RWMutex
	byID map[string]pastures.Pasture
}

func NewPastureRepo() pastures.Repository {
	return &pastureRepo{
		byID: make(map[string]pastures.Pasture),
	}
}

func (r *pastureRepo) Create(ctx context.Context, p pastures.Pasture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pasture id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pasture already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *pastureRepo) Update(ctx context.Context, p pastures.Pasture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *pastureRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *pastureRepo) GetByID(ctx context.Context, id string) (pastures.Pasture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pastures.Pasture{}, ErrNotFound
	}
	return p, nil
}

func (r *pastureRepo) ListByOwner(ctx context.Context, ownerID string) ([]pastures.Pasture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pastures.Pasture, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}

	// Orden estable por created_at asc; el primero gana cuando hay números repetidos.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
