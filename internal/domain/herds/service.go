package herds

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
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("herd not found")
)

type Service struct {
	repo Repository
	feed changefeed.Feed
	log  *zap.Logger
	now  func() time.Time
}

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
	Name                 string
	AnimalType           string
	AnimalCount          int
	CurrentPastureNumber int
	LastRotationDate     time.Time
	LastWaterDate        *time.Time
	LastFeedDate         *time.Time
	LastSaltDate         *time.Time
}

// OptionalDate distingue "no enviado" de null en un PATCH.
type OptionalDate struct {
	Present bool
	Value   *time.Time
}

type UpdateInput struct {
	Name                 *string
	AnimalType           *string
	AnimalCount          *int
	CurrentPastureNumber *int
	LastRotationDate     *time.Time
	LastWaterDate        OptionalDate
	LastFeedDate         OptionalDate
	LastSaltDate         OptionalDate
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Herd, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Herd{}, ErrInvalidInput
	}

	h := Herd{
		OwnerID:              ownerID,
		Name:                 strings.TrimSpace(in.Name),
		AnimalType:           strings.TrimSpace(in.AnimalType),
		AnimalCount:          in.AnimalCount,
		CurrentPastureNumber: in.CurrentPastureNumber,
		LastRotationDate:     in.LastRotationDate,
		LastWaterDate:        in.LastWaterDate,
		LastFeedDate:         in.LastFeedDate,
		LastSaltDate:         in.LastSaltDate,
	}
	if err := validateHerd(h); err != nil {
		return Herd{}, err
	}

	now := s.now()
	h.ID = uuid.NewString()
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.repo.Create(ctx, h); err != nil {
		return Herd{}, fmt.Errorf("create herd: %w", err)
	}
	s.publish(ctx, h, changefeed.OpCreated)
	return h, nil
}

func (s *Service) Update(ctx context.Context, ownerID, id string, in UpdateInput) (Herd, error) {
	h, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Herd{}, err
	}

	if in.Name != nil {
		h.Name = strings.TrimSpace(*in.Name)
	}
	if in.AnimalType != nil {
		h.AnimalType = strings.TrimSpace(*in.AnimalType)
	}
	if in.AnimalCount != nil {
		h.AnimalCount = *in.AnimalCount
	}
	if in.CurrentPastureNumber != nil {
		h.CurrentPastureNumber = *in.CurrentPastureNumber
	}
	if in.LastRotationDate != nil {
		h.LastRotationDate = *in.LastRotationDate
	}
	if in.LastWaterDate.Present {
		h.LastWaterDate = in.LastWaterDate.Value
	}
	if in.LastFeedDate.Present {
		h.LastFeedDate = in.LastFeedDate.Value
	}
	if in.LastSaltDate.Present {
		h.LastSaltDate = in.LastSaltDate.Value
	}

	if err := validateHerd(h); err != nil {
		return Herd{}, err
	}
	return s.save(ctx, h)
}

// RecordCare registra que un cuidado (agua, alimento, sal) se hizo en la fecha dada.
func (s *Service) RecordCare(ctx context.Context, ownerID, id string, kind CareKind, at time.Time) (Herd, error) {
	if at.IsZero() {
		return Herd{}, ErrInvalidInput
	}
	h, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Herd{}, err
	}

	t := at
	switch kind {
	case CareWater:
		h.LastWaterDate = &t
	case CareFeed:
		h.LastFeedDate = &t
	case CareSalt:
		h.LastSaltDate = &t
	default:
		return Herd{}, ErrInvalidInput
	}
	return s.save(ctx, h)
}

// Move rota el rebaño a otro potrero; la fecha pasa a ser su última rotación.
func (s *Service) Move(ctx context.Context, ownerID, id string, pastureNumber int, at time.Time) (Herd, error) {
	if pastureNumber < 1 || at.IsZero() {
		return Herd{}, ErrInvalidInput
	}
	h, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Herd{}, err
	}
	h.CurrentPastureNumber = pastureNumber
	h.LastRotationDate = at
	return s.save(ctx, h)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	h, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, h.ID); err != nil {
		return fmt.Errorf("delete herd: %w", err)
	}
	s.publish(ctx, h, changefeed.OpDeleted)
	return nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (Herd, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Herd{}, ErrNotFound
	}
	h, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Herd{}, ErrNotFound
	}
	if err != nil {
		return Herd{}, fmt.Errorf("get herd: %w", err)
	}
	if h.OwnerID != ownerID {
		return Herd{}, ErrNotFound
	}
	return h, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Herd, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) save(ctx context.Context, h Herd) (Herd, error) {
	h.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, h); err != nil {
		return Herd{}, fmt.Errorf("update herd: %w", err)
	}
	s.publish(ctx, h, changefeed.OpUpdated)
	return h, nil
}

func (s *Service) publish(ctx context.Context, h Herd, op changefeed.Op) {
	if s.feed == nil {
		return
	}
	err := s.feed.Publish(ctx, changefeed.Change{
		Collection: changefeed.CollectionHerds,
		OwnerID:    h.OwnerID,
		DocumentID: h.ID,
		Op:         op,
	})
	if err != nil {
		s.log.Warn("publish herd change failed",
			zap.String("owner_id", h.OwnerID),
			zap.String("herd_id", h.ID),
			zap.String("op", string(op)),
			zap.Error(err),
		)
	}
}

func validateHerd(h Herd) error {
	switch {
	case h.Name == "", h.AnimalType == "":
		return ErrInvalidInput
	case h.AnimalCount < 1, h.CurrentPastureNumber < 1:
		return ErrInvalidInput
	case h.LastRotationDate.IsZero():
		return ErrInvalidInput
	}
	return nil
}
