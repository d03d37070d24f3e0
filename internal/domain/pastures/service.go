package pastures

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattle-farm-manager/internal/ports/changefeed"
	"cattle-farm-manager/internal/ports/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("pasture not found")
	ErrDuplicateNumber = errors.New("pasture number already in use")
)

type Service struct {
	repo Repository
	feed changefeed.Feed
	log  *zap.Logger
	now  func() time.Time
}

// NewService crea el servicio. feed puede ser nil (sin notificaciones de cambio).
func NewService(repo Repository, feed changefeed.Feed, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo: repo,
		feed: feed,
		log:  log,
		now:  time.Now,
	}
}

type CreateInput struct {
	PastureNumber  int
	RotationDays   *int
	WaterFrequency *int
	FeedFrequency  *int
	SaltFrequency  *int
}

// OptionalInt distingue "no enviado" de "enviado como null" en un PATCH.
type OptionalInt struct {
	Present bool
	Value   *int
}

type UpdateInput struct {
	PastureNumber  *int
	RotationDays   OptionalInt
	WaterFrequency OptionalInt
	FeedFrequency  OptionalInt
	SaltFrequency  OptionalInt
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Pasture, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Pasture{}, ErrInvalidInput
	}
	if err := validateNumber(in.PastureNumber); err != nil {
		return Pasture{}, err
	}
	for _, f := range []*int{in.RotationDays, in.WaterFrequency, in.FeedFrequency, in.SaltFrequency} {
		if err := validateFrequency(f); err != nil {
			return Pasture{}, err
		}
	}
	if err := s.ensureNumberFree(ctx, ownerID, "", in.PastureNumber); err != nil {
		return Pasture{}, err
	}

	now := s.now()
	p := Pasture{
		ID:             uuid.NewString(),
		OwnerID:        ownerID,
		PastureNumber:  in.PastureNumber,
		RotationDays:   in.RotationDays,
		WaterFrequency: in.WaterFrequency,
		FeedFrequency:  in.FeedFrequency,
		SaltFrequency:  in.SaltFrequency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pasture{}, fmt.Errorf("create pasture: %w", err)
	}
	s.publish(ctx, p, changefeed.OpCreated)
	return p, nil
}

// Update aplica un merge: los campos ausentes se conservan, null limpia la frecuencia.
func (s *Service) Update(ctx context.Context, ownerID, id string, in UpdateInput) (Pasture, error) {
	p, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Pasture{}, err
	}

	if in.PastureNumber != nil {
		if err := validateNumber(*in.PastureNumber); err != nil {
			return Pasture{}, err
		}
		if *in.PastureNumber != p.PastureNumber {
			if err := s.ensureNumberFree(ctx, p.OwnerID, p.ID, *in.PastureNumber); err != nil {
				return Pasture{}, err
			}
		}
		p.PastureNumber = *in.PastureNumber
	}

	fields := []struct {
		in  OptionalInt
		dst **int
	}{
		{in.RotationDays, &p.RotationDays},
		{in.WaterFrequency, &p.WaterFrequency},
		{in.FeedFrequency, &p.FeedFrequency},
		{in.SaltFrequency, &p.SaltFrequency},
	}
	for _, f := range fields {
		if !f.in.Present {
			continue
		}
		if err := validateFrequency(f.in.Value); err != nil {
			return Pasture{}, err
		}
		*f.dst = f.in.Value
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pasture{}, fmt.Errorf("update pasture: %w", err)
	}
	s.publish(ctx, p, changefeed.OpUpdated)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	p, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("delete pasture: %w", err)
	}
	s.publish(ctx, p, changefeed.OpDeleted)
	return nil
}

// Get devuelve el potrero solo si pertenece a ownerID.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Pasture, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pasture{}, ErrNotFound
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Pasture{}, ErrNotFound
	}
	if err != nil {
		return Pasture{}, fmt.Errorf("get pasture: %w", err)
	}
	if p.OwnerID != ownerID {
		return Pasture{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pasture, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// FindByNumber busca por igualdad exacta de número dentro de la cuenta.
func (s *Service) FindByNumber(ctx context.Context, ownerID string, number int) (Pasture, bool, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return Pasture{}, false, err
	}
	for _, p := range items {
		if p.PastureNumber == number {
			return p, true, nil
		}
	}
	return Pasture{}, false, nil
}

func (s *Service) ensureNumberFree(ctx context.Context, ownerID, selfID string, number int) error {
	existing, found, err := s.FindByNumber(ctx, ownerID, number)
	if err != nil {
		return err
	}
	if found && existing.ID != selfID {
		return ErrDuplicateNumber
	}
	return nil
}

func (s *Service) publish(ctx context.Context, p Pasture, op changefeed.Op) {
	if s.feed == nil {
		return
	}
	// la escritura ya quedó hecha; el recálculo también corre al listar notificaciones
	err := s.feed.Publish(ctx, changefeed.Change{
		Collection: changefeed.CollectionPastures,
		OwnerID:    p.OwnerID,
		DocumentID: p.ID,
		Op:         op,
	})
	if err != nil {
		s.log.Warn("publish pasture change failed",
			zap.String("owner_id", p.OwnerID),
			zap.String("pasture_id", p.ID),
			zap.String("op", string(op)),
			zap.Error(err),
		)
	}
}

func validateNumber(n int) error {
	if n < 1 {
		return ErrInvalidInput
	}
	return nil
}

func validateFrequency(f *int) error {
	if f != nil && *f < 1 {
		return ErrInvalidInput
	}
	return nil
}
