package rotation

import (
	"context"
	"fmt"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"

	"github.com/paulmach/orb/geojson"
)

type PastureLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]pastures.Pasture, error)
}

type HerdLister interface {
	ListByOwner(ctx context.Context, ownerID string) ([]herds.Herd, error)
}

// Service carga los datos de una cuenta y los pasa por el motor.
type Service struct {
	pastures PastureLister
	herds    HerdLister
	loc      *time.Location
	now      func() time.Time
}

func NewService(ps PastureLister, hs HerdLister, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		pastures: ps,
		herds:    hs,
		loc:      loc,
		now:      time.Now,
	}
}

// Today es la fecha actual en la zona de la finca.
func (s *Service) Today() time.Time {
	return s.now().In(s.loc)
}

// Snapshot lee potreros y rebaños de la cuenta.
func (s *Service) Snapshot(ctx context.Context, ownerID string) ([]pastures.Pasture, []herds.Herd, error) {
	ps, err := s.pastures.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("list pastures: %w", err)
	}
	hs, err := s.herds.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, fmt.Errorf("list herds: %w", err)
	}
	return ps, hs, nil
}

func (s *Service) Map(ctx context.Context, ownerID string, selected int) (*geojson.FeatureCollection, error) {
	ps, hs, err := s.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return BuildMap(s.Today(), ps, hs, selected), nil
}

// PastureDetail es la selección de un potrero más el conteo del primer rebaño.
type PastureDetail struct {
	Selection Selection
	Report    *Report
}

func (s *Service) Pasture(ctx context.Context, ownerID string, number int) (PastureDetail, error) {
	ps, hs, err := s.Snapshot(ctx, ownerID)
	if err != nil {
		return PastureDetail{}, err
	}
	d := PastureDetail{Selection: Select(number, ps, hs)}
	if r, ok := d.Selection.Countdown(s.Today()); ok {
		d.Report = &r
	}
	return d, nil
}

// Due devuelve un reporte por cada rebaño con potrero válido.
func (s *Service) Due(ctx context.Context, ownerID string) ([]Report, error) {
	ps, hs, err := s.Snapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return EvaluateAll(s.Today(), ps, hs), nil
}
