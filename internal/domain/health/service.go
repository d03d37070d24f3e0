package health

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattle-farm-manager/internal/ports/storage"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("health event not found")
	ErrCowNotFound  = errors.New("cow not found")
)

// CowOwner resuelve el dueño de un animal.
type CowOwner interface {
	OwnerOf(ctx context.Context, cowID string) (string, error)
}

type Service struct {
	repo Repository
	cows CowOwner
	now  func() time.Time
}

func NewService(repo Repository, cows CowOwner) *Service {
	return &Service{
		repo: repo,
		cows: cows,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type         EventType
	EventDate    time.Time
	Notes        string
	ReminderDate *time.Time
}

func (s *Service) Create(ctx context.Context, ownerID, cowID string, in CreateInput) (Event, error) {
	if err := s.authorize(ctx, ownerID, cowID); err != nil {
		return Event{}, err
	}
	if !in.Type.Valid() || in.EventDate.IsZero() {
		return Event{}, ErrInvalidInput
	}

	e := Event{
		ID:           uuid.NewString(),
		CowID:        cowID,
		Type:         in.Type,
		EventDate:    in.EventDate,
		Notes:        strings.TrimSpace(in.Notes),
		ReminderDate: in.ReminderDate,
		RecordedBy:   ownerID,
		RecordedAt:   s.now(),
		Status:       StatusActive,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, fmt.Errorf("create health event: %w", err)
	}
	return e, nil
}

// List devuelve los eventos del animal, el más reciente primero.
func (s *Service) List(ctx context.Context, ownerID, cowID string, filter ListFilter) ([]Event, error) {
	if err := s.authorize(ctx, ownerID, cowID); err != nil {
		return nil, err
	}
	return s.repo.ListByCow(ctx, cowID, filter)
}

// Void marca el evento como anulado (no se borra).
func (s *Service) Void(ctx context.Context, ownerID, cowID, id string) (Event, error) {
	if err := s.authorize(ctx, ownerID, cowID); err != nil {
		return Event{}, err
	}
	e, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if errors.Is(err, storage.ErrNotFound) {
		return Event{}, ErrNotFound
	}
	if err != nil {
		return Event{}, fmt.Errorf("get health event: %w", err)
	}
	if e.CowID != cowID {
		return Event{}, ErrNotFound
	}
	if err := s.repo.Void(ctx, e.ID); err != nil {
		return Event{}, fmt.Errorf("void health event: %w", err)
	}
	e.Status = StatusVoided
	return e, nil
}

func (s *Service) authorize(ctx context.Context, ownerID, cowID string) error {
	if strings.TrimSpace(cowID) == "" {
		return ErrCowNotFound
	}
	owner, err := s.cows.OwnerOf(ctx, cowID)
	if err != nil {
		return fmt.Errorf("cow owner: %w", err)
	}
	if owner == "" || owner != ownerID {
		// no distinguimos "no existe" de "no es tuyo"
		return ErrCowNotFound
	}
	return nil
}
