package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"cattle-farm-manager/internal/ports/storage"
)

type testCows map[string]string

func (c testCows) OwnerOf(ctx context.Context, cowID string) (string, error) {
	return c[cowID], nil
}

type testRepo struct {
	byID map[string]Event
}

func (r *testRepo) Create(ctx context.Context, e Event) error {
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return Event{}, storage.ErrNotFound
	}
	return e, nil
}

func (r *testRepo) ListByCow(ctx context.Context, cowID string, filter ListFilter) ([]Event, error) {
	out := []Event{}
	for _, e := range r.byID {
		if e.CowID == cowID && (filter.IncludeVoided || e.Status == StatusActive) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *testRepo) Void(ctx context.Context, id string) error {
	e := r.byID[id]
	e.Status = StatusVoided
	r.byID[id] = e
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byID: map[string]Event{}}
	svc := NewService(repo, testCows{"c1": "u1"})
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Create(ctx, "u1", "c1", CreateInput{Type: "haircut", EventDate: date}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
	if _, err := svc.Create(ctx, "u1", "c1", CreateInput{Type: EventVaccination}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing date, got %v", err)
	}
	if _, err := svc.Create(ctx, "u2", "c1", CreateInput{Type: EventVaccination, EventDate: date}); !errors.Is(err, ErrCowNotFound) {
		t.Fatalf("expected ErrCowNotFound for other owner, got %v", err)
	}

	e, err := svc.Create(ctx, "u1", "c1", CreateInput{Type: EventTickBath, EventDate: date, Notes: "  ivermectina "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.Status != StatusActive || e.Notes != "ivermectina" || e.RecordedBy != "u1" {
		t.Fatalf("unexpected event: %+v", e)
	}
}

func TestVoid_HidesFromDefaultList(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	e, _ := svc.Create(ctx, "u1", "c1", CreateInput{Type: EventMastitis, EventDate: date})

	if _, err := svc.Void(ctx, "u1", "c1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	voided, err := svc.Void(ctx, "u1", "c1", e.ID)
	if err != nil || voided.Status != StatusVoided {
		t.Fatalf("void: %+v %v", voided, err)
	}

	items, _ := svc.List(ctx, "u1", "c1", ListFilter{})
	if len(items) != 0 {
		t.Fatalf("expected voided event hidden, got %d", len(items))
	}
	items, _ = svc.List(ctx, "u1", "c1", ListFilter{IncludeVoided: true})
	if len(items) != 1 {
		t.Fatalf("expected voided event with include_voided, got %d", len(items))
	}
}

func TestLabels(t *testing.T) {
	if EventIATFBirth.Label() != "Parto IATF" || EventFlyBath.Label() != "Baño de Mosca" {
		t.Fatalf("unexpected labels")
	}
	if len(EventTypes) != 9 {
		t.Fatalf("expected 9 event types, got %d", len(EventTypes))
	}
}
