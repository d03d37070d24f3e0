package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cattle-farm-manager/internal/domain/cows"
)

type cowRepo struct {
	mu   sync.RWMutex
	byID map[string]cows.Cow
}

func NewCowRepo() cows.Repository {
	return &cowRepo{
		byID: make(map[string]cows.Cow),
	}
}

func (r *cowRepo) Create(ctx context.Context, c cows.Cow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cow id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("cow already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *cowRepo) Update(ctx context.Context, c cows.Cow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *cowRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *cowRepo) GetByID(ctx context.Context, id string) (cows.Cow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cows.Cow{}, ErrNotFound
	}
	return c, nil
}

func (r *cowRepo) ListByOwner(ctx context.Context, ownerID string) ([]cows.Cow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cows.Cow, 0)
	for _, c := range r.byID {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
