package maintenance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattle-farm-manager/internal/platform/clock"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// DefaultRangeDays es la ventana que se muestra si no se pide otra.
const DefaultRangeDays = 30

type Service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

type CreateInput struct {
	Type      EventType
	EventDate time.Time
	Employees *int
	Days      *float64
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Event, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Event{}, ErrInvalidInput
	}
	if !in.Type.Valid() || in.EventDate.IsZero() {
		return Event{}, ErrInvalidInput
	}
	if in.Employees != nil && *in.Employees < 0 {
		return Event{}, ErrInvalidInput
	}
	if in.Days != nil && *in.Days < 0 {
		return Event{}, ErrInvalidInput
	}

	e := Event{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Type:      in.Type,
		EventDate: in.EventDate,
		Employees: in.Employees,
		Days:      in.Days,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, fmt.Errorf("create maintenance event: %w", err)
	}
	return e, nil
}

// Range es un intervalo cerrado de días completos.
type Range struct {
	From time.Time
	To   time.Time
}

// ResolveRange arma [inicio de from, fin de to]. Sin from se usan los
// últimos DefaultRangeDays días; sin to, el mismo día de from.
func (s *Service) ResolveRange(from, to *time.Time) Range {
	if from == nil {
		today := s.now().In(s.loc)
		start := today.AddDate(0, 0, -DefaultRangeDays)
		return Range{From: clock.StartOfDay(start), To: clock.EndOfDay(today)}
	}
	end := *from
	if to != nil {
		end = *to
	}
	return Range{From: clock.StartOfDay(from.In(s.loc)), To: clock.EndOfDay(end.In(s.loc))}
}

func (s *Service) List(ctx context.Context, ownerID string, rng Range) ([]Event, error) {
	if rng.To.Before(rng.From) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerID, rng.From, rng.To)
}
