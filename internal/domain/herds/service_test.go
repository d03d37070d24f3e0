package herds

import (
	"context"
	"errors"
	"testing"
	"time"

	"cattle-farm-manager/internal/ports/changefeed"
	"cattle-farm-manager/internal/ports/storage"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errRepoNotFound = storage.ErrNotFound

type testRepo struct {
	byID map[string]Herd
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Herd{}}
}

func (r *testRepo) Create(ctx context.Context, h Herd) error {
	r.byID[h.ID] = h
	return nil
}

func (r *testRepo) Update(ctx context.Context, h Herd) error {
	if _, ok := r.byID[h.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[h.ID] = h
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Herd, error) {
	h, ok := r.byID[id]
	if !ok {
		return Herd{}, errRepoNotFound
	}
	return h, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Herd, error) {
	out := make([]Herd, 0)
	for _, h := range r.byID {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}
	return out, nil
}

type recordingFeed struct {
	changes []changefeed.Change
	err     error
}

func (f *recordingFeed) Publish(ctx context.Context, c changefeed.Change) error {
	if f.err != nil {
		return f.err
	}
	f.changes = append(f.changes, c)
	return nil
}

func (f *recordingFeed) Subscribe(ctx context.Context, collection string, fn changefeed.Handler) error {
	return nil
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, *recordingFeed) {
	feed := &recordingFeed{}
	svc := NewService(newTestRepo(), feed, nil)
	svc.now = func() time.Time { return day(20) }
	return svc, feed
}

func validInput() CreateInput {
	return CreateInput{
		Name:                 " Lote Norte ",
		AnimalType:           "Vacas",
		AnimalCount:          25,
		CurrentPastureNumber: 3,
		LastRotationDate:     day(1),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, feed := newTestService()

	h, err := svc.Create(ctx, "u1", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if h.Name != "Lote Norte" {
		t.Fatalf("expected trimmed name, got %q", h.Name)
	}
	if !h.CreatedAt.Equal(day(20)) {
		t.Fatalf("expected created_at from clock, got %v", h.CreatedAt)
	}
	if len(feed.changes) != 1 || feed.changes[0].Collection != changefeed.CollectionHerds || feed.changes[0].OwnerID != "u1" {
		t.Fatalf("expected herds change for u1, got %+v", feed.changes)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, feed := newTestService()

	mutations := []func(*CreateInput){
		func(in *CreateInput) { in.Name = "  " },
		func(in *CreateInput) { in.AnimalType = "" },
		func(in *CreateInput) { in.AnimalCount = 0 },
		func(in *CreateInput) { in.CurrentPastureNumber = 0 },
		func(in *CreateInput) { in.LastRotationDate = time.Time{} },
	}
	for i, mut := range mutations {
		in := validInput()
		mut(&in)
		if _, err := svc.Create(ctx, "u1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if len(feed.changes) != 0 {
		t.Fatalf("invalid input must not publish, got %+v", feed.changes)
	}
}

func TestRecordCare(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	h, _ := svc.Create(ctx, "u1", validInput())

	got, err := svc.RecordCare(ctx, "u1", h.ID, CareSalt, day(15))
	if err != nil {
		t.Fatalf("record care: %v", err)
	}
	if got.LastSaltDate == nil || !got.LastSaltDate.Equal(day(15)) {
		t.Fatalf("expected salt date 15, got %v", got.LastSaltDate)
	}
	if got.LastWaterDate != nil {
		t.Fatalf("water date should stay empty")
	}

	if _, err := svc.RecordCare(ctx, "u1", h.ID, CareKind("vitaminas"), day(15)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown kind, got %v", err)
	}
	if _, err := svc.RecordCare(ctx, "u2", h.ID, CareWater, day(15)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestMove(t *testing.T) {
	ctx := context.Background()
	svc, feed := newTestService()
	h, _ := svc.Create(ctx, "u1", validInput())

	got, err := svc.Move(ctx, "u1", h.ID, 7, day(18))
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if got.CurrentPastureNumber != 7 || !got.LastRotationDate.Equal(day(18)) {
		t.Fatalf("unexpected herd after move: %+v", got)
	}
	if last := feed.changes[len(feed.changes)-1]; last.Op != changefeed.OpUpdated {
		t.Fatalf("expected updated change, got %+v", last)
	}

	if _, err := svc.Move(ctx, "u1", h.ID, 0, day(18)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pasture 0, got %v", err)
	}
}

func TestUpdate_ClearsOptionalDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	in := validInput()
	w := day(10)
	in.LastWaterDate = &w
	h, _ := svc.Create(ctx, "u1", in)

	name := "Lote Sur"
	got, err := svc.Update(ctx, "u1", h.ID, UpdateInput{
		Name:          &name,
		LastWaterDate: OptionalDate{Present: true, Value: nil},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Lote Sur" || got.LastWaterDate != nil {
		t.Fatalf("unexpected herd after update: %+v", got)
	}

	empty := ""
	if _, err := svc.Update(ctx, "u1", h.ID, UpdateInput{Name: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
}

// brokenRepo simula un almacén caído.
type brokenRepo struct {
	*testRepo
}

func (brokenRepo) GetByID(ctx context.Context, id string) (Herd, error) {
	return Herd{}, errors.New("connection refused")
}

func TestGet_StoreFailureIsNotNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewService(brokenRepo{newTestRepo()}, nil, nil)

	_, err := svc.Get(ctx, "u1", "h1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("store failure must not map to ErrNotFound, got %v", err)
	}
	if _, err := svc.RecordCare(ctx, "u1", "h1", CareWater, day(15)); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestGet_MissingIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Get(context.Background(), "u1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPublishFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	feed := &recordingFeed{err: errors.New("redis down")}
	svc := NewService(newTestRepo(), feed, zap.New(core))
	svc.now = func() time.Time { return day(20) }

	h, err := svc.Create(ctx, "u1", validInput())
	if err != nil {
		t.Fatalf("write must succeed even if publish fails: %v", err)
	}

	entries := logs.FilterMessage("publish herd change failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["herd_id"] != h.ID || fields["owner_id"] != "u1" || fields["op"] != string(changefeed.OpCreated) {
		t.Fatalf("unexpected fields: %+v", fields)
	}
}
