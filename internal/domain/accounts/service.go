package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattle-farm-manager/internal/ports/auth"
	"cattle-farm-manager/internal/ports/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("account not found")
)

type Service struct {
	repo Repository
	// bootstrap son cuentas que nacen admin (config auth.admin_account_ids).
	bootstrap map[string]struct{}
	now       func() time.Time
}

func NewService(repo Repository, adminIDs []string) *Service {
	b := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		if id = strings.TrimSpace(id); id != "" {
			b[id] = struct{}{}
		}
	}
	return &Service{
		repo:      repo,
		bootstrap: b,
		now:       time.Now,
	}
}

// Ensure devuelve la cuenta de claims, creándola en el primer acceso.
// Nombre y email se refrescan desde el proveedor; el rol solo cambia por
// bootstrap o SetRole.
func (s *Service) Ensure(ctx context.Context, claims auth.Claims) (Account, error) {
	id := strings.TrimSpace(claims.UserID)
	if id == "" {
		return Account{}, ErrInvalidInput
	}

	now := s.now()
	a, err := s.repo.GetByID(ctx, id)
	missing := errors.Is(err, storage.ErrNotFound)
	if err != nil && !missing {
		return Account{}, fmt.Errorf("get account: %w", err)
	}
	if missing {
		a = Account{ID: id, Role: RoleMember, CreatedAt: now}
	}

	changed := missing
	if name := strings.TrimSpace(claims.DisplayName); name != "" && name != a.DisplayName {
		a.DisplayName = name
		changed = true
	}
	if email := strings.TrimSpace(claims.Email); email != "" && email != a.Email {
		a.Email = email
		changed = true
	}
	if _, ok := s.bootstrap[id]; ok && a.Role != RoleAdmin {
		a.Role = RoleAdmin
		changed = true
	}

	if !changed {
		return a, nil
	}
	a.UpdatedAt = now
	if err := s.repo.Save(ctx, a); err != nil {
		return Account{}, fmt.Errorf("save account: %w", err)
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id string) (Account, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, storage.ErrNotFound) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Account, error) {
	return s.repo.List(ctx)
}

func (s *Service) SetRole(ctx context.Context, id string, role Role) (Account, error) {
	if !role.Valid() {
		return Account{}, ErrInvalidInput
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return Account{}, err
	}
	a.Role = role
	a.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, a); err != nil {
		return Account{}, fmt.Errorf("save account: %w", err)
	}
	return a, nil
}
