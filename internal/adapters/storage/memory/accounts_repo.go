package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cattle-farm-manager/internal/domain/accounts"
)

type accountRepo struct {
	mu   sync.RWMutex
	byID map[string]accounts.Account
}

func NewAccountRepo() accounts.Repository {
	return &accountRepo{
		byID: make(map[string]accounts.Account),
	}
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return accounts.Account{}, ErrNotFound
	}
	return a, nil
}

func (r *accountRepo) Save(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("account id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *accountRepo) List(ctx context.Context) ([]accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]accounts.Account, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
