package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"cattle-farm-manager/internal/domain/milk"
)

type milkRepo struct {
	mu   sync.RWMutex
	byID map[string]milk.Record
}

func NewMilkRepo() milk.Repository {
	return &milkRepo{
		byID: make(map[string]milk.Record),
	}
}

func (r *milkRepo) Create(ctx context.Context, rec milk.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		return errors.New("milk record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("milk record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *milkRepo) ListByCow(ctx context.Context, cowID string) ([]milk.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]milk.Record, 0)
	for _, rec := range r.byID {
		if rec.CowID == cowID {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
