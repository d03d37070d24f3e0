package cows

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
	ErrNotFound     = errors.New("cow not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input son los datos editables de la ficha. Se usa tanto para crear como
// para reemplazar (PUT).
type Input struct {
	Name       string
	AnimalType AnimalType
	Breed      string

	BirthDate       *time.Time
	DeathDate       *time.Time
	LastCalvingDate *time.Time

	Father   string
	Mother   string
	Brand    string
	Location string

	BrandImageURL      string
	CalfImageURL       string
	AdolescentImageURL string
	AdultImageURL      string
}

func (s *Service) Create(ctx context.Context, ownerID, ownerName string, in Input) (Cow, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Cow{}, ErrInvalidInput
	}

	c := apply(Cow{}, in)
	if c.Name == "" {
		return Cow{}, ErrInvalidInput
	}

	now := s.now()
	c.ID = uuid.NewString()
	c.OwnerID = ownerID
	c.OwnerName = strings.TrimSpace(ownerName)
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Create(ctx, c); err != nil {
		return Cow{}, fmt.Errorf("create cow: %w", err)
	}
	return c, nil
}

// Replace sobrescribe los campos editables; conserva dueño y fechas de alta.
func (s *Service) Replace(ctx context.Context, ownerID, id string, in Input) (Cow, error) {
	current, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return Cow{}, err
	}

	c := apply(current, in)
	if c.Name == "" {
		return Cow{}, ErrInvalidInput
	}
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		return Cow{}, fmt.Errorf("update cow: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	c, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("delete cow: %w", err)
	}
	return nil
}

// Get devuelve la ficha solo si pertenece a ownerID.
func (s *Service) Get(ctx context.Context, ownerID, id string) (Cow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Cow{}, ErrNotFound
	}
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Cow{}, ErrNotFound
	}
	if err != nil {
		return Cow{}, fmt.Errorf("get cow: %w", err)
	}
	if c.OwnerID != ownerID {
		return Cow{}, ErrNotFound
	}
	return c, nil
}

// Search lista los animales de la cuenta cuyo nombre contiene query
// (sin distinguir mayúsculas). query vacío devuelve todos.
func (s *Service) Search(ctx context.Context, ownerID, query string) ([]Cow, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}

	out := make([]Cow, 0, len(items))
	for _, c := range items {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// OwnerOf expone el dueño de una ficha. Los módulos hijos (salud, leche)
// lo usan sin importar este paquete completo. Una ficha inexistente
// devuelve "" sin error; el error queda para fallas del almacén.
func (s *Service) OwnerOf(ctx context.Context, cowID string) (string, error) {
	c, err := s.repo.GetByID(ctx, cowID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get cow: %w", err)
	}
	return c.OwnerID, nil
}

func apply(c Cow, in Input) Cow {
	c.Name = strings.TrimSpace(in.Name)
	c.AnimalType = AnimalType(strings.TrimSpace(string(in.AnimalType)))
	c.Breed = strings.TrimSpace(in.Breed)
	c.BirthDate = in.BirthDate
	c.DeathDate = in.DeathDate
	c.LastCalvingDate = in.LastCalvingDate
	c.Father = strings.TrimSpace(in.Father)
	c.Mother = strings.TrimSpace(in.Mother)
	c.Brand = strings.TrimSpace(in.Brand)
	c.Location = strings.TrimSpace(in.Location)
	c.BrandImageURL = strings.TrimSpace(in.BrandImageURL)
	c.CalfImageURL = strings.TrimSpace(in.CalfImageURL)
	c.AdolescentImageURL = strings.TrimSpace(in.AdolescentImageURL)
	c.AdultImageURL = strings.TrimSpace(in.AdultImageURL)
	return c
}
