package milk

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCowNotFound  = errors.New("cow not found")
)

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

func (s *Service) Create(ctx context.Context, ownerID, cowID string, date time.Time, amount float64) (Record, error) {
	if err := s.authorize(ctx, ownerID, cowID); err != nil {
		return Record{}, err
	}
	if date.IsZero() || amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:        uuid.NewString(),
		CowID:     cowID,
		OwnerID:   ownerID,
		Date:      date,
		Amount:    amount,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("create milk record: %w", err)
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context, ownerID, cowID string) ([]Record, error) {
	if err := s.authorize(ctx, ownerID, cowID); err != nil {
		return nil, err
	}
	return s.repo.ListByCow(ctx, cowID)
}

func (s *Service) Summary(ctx context.Context, ownerID, cowID string) (Summary, error) {
	items, err := s.List(ctx, ownerID, cowID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items), nil
}

// Summarize recibe los registros en orden desc (como los devuelve el repo).
func Summarize(desc []Record) Summary {
	sum := Summary{Count: len(desc), Series: make([]ChartPoint, 0, len(desc))}
	for i := len(desc) - 1; i >= 0; i-- {
		r := desc[i]
		sum.Total += r.Amount
		sum.Series = append(sum.Series, ChartPoint{Date: r.Date.Format("02/01"), Liters: r.Amount})
	}
	if sum.Count > 0 {
		sum.Average = sum.Total / float64(sum.Count)
	}
	return sum
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
		return ErrCowNotFound
	}
	return nil
}
