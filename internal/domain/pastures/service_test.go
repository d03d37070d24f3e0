package pastures

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"cattle-farm-manager/internal/ports/changefeed"
	"cattle-farm-manager/internal/ports/storage"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = storage.ErrNotFound

type testRepo struct {
	byID map[string]Pasture
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pasture{}}
}

func (r *testRepo) Create(ctx context.Context, p Pasture) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pasture) error {
	if _, ok := r.byID[p.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pasture, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pasture{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Pasture, error) {
	out := make([]Pasture, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PastureNumber < out[j].PastureNumber })
	return out, nil
}

// recordingFeed guarda lo publicado.
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

func newTestService() (*Service, *recordingFeed) {
	feed := &recordingFeed{}
	svc := NewService(newTestRepo(), feed, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, feed
}

func intPtr(v int) *int { return &v }

// -------------------------
// Tests
// -------------------------

func TestCreate_PublishesAndRejectsDuplicateNumber(t *testing.T) {
	ctx := context.Background()
	svc, feed := newTestService()

	p, err := svc.Create(ctx, "u1", CreateInput{PastureNumber: 3, WaterFrequency: intPtr(10)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" || p.OwnerID != "u1" {
		t.Fatalf("unexpected pasture: %+v", p)
	}
	if len(feed.changes) != 1 || feed.changes[0].Op != changefeed.OpCreated || feed.changes[0].Collection != changefeed.CollectionPastures {
		t.Fatalf("expected one created change, got %+v", feed.changes)
	}

	if _, err := svc.Create(ctx, "u1", CreateInput{PastureNumber: 3}); !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
	// otra cuenta puede usar el mismo número
	if _, err := svc.Create(ctx, "u2", CreateInput{PastureNumber: 3}); err != nil {
		t.Fatalf("expected other owner to reuse number, got %v", err)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	cases := []CreateInput{
		{PastureNumber: 0},
		{PastureNumber: 1, RotationDays: intPtr(0)},
		{PastureNumber: 1, SaltFrequency: intPtr(-2)},
	}
	for _, in := range cases {
		if _, err := svc.Create(ctx, "u1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
	if _, err := svc.Create(ctx, " ", CreateInput{PastureNumber: 1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty owner, got %v", err)
	}
}

func TestUpdate_MergeAndClear(t *testing.T) {
	ctx := context.Background()
	svc, feed := newTestService()

	p, _ := svc.Create(ctx, "u1", CreateInput{PastureNumber: 1, RotationDays: intPtr(30), WaterFrequency: intPtr(10)})

	got, err := svc.Update(ctx, "u1", p.ID, UpdateInput{
		WaterFrequency: OptionalInt{Present: true, Value: nil},
		FeedFrequency:  OptionalInt{Present: true, Value: intPtr(7)},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.RotationDays == nil || *got.RotationDays != 30 {
		t.Fatalf("rotation days should be kept, got %v", got.RotationDays)
	}
	if got.WaterFrequency != nil {
		t.Fatalf("water frequency should be cleared, got %v", *got.WaterFrequency)
	}
	if got.FeedFrequency == nil || *got.FeedFrequency != 7 {
		t.Fatalf("feed frequency should be 7, got %v", got.FeedFrequency)
	}
	if last := feed.changes[len(feed.changes)-1]; last.Op != changefeed.OpUpdated || last.DocumentID != p.ID {
		t.Fatalf("expected updated change for %s, got %+v", p.ID, last)
	}
}

func TestUpdate_NumberConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, _ = svc.Create(ctx, "u1", CreateInput{PastureNumber: 1})
	p2, _ := svc.Create(ctx, "u1", CreateInput{PastureNumber: 2})

	if _, err := svc.Update(ctx, "u1", p2.ID, UpdateInput{PastureNumber: intPtr(1)}); !errors.Is(err, ErrDuplicateNumber) {
		t.Fatalf("expected ErrDuplicateNumber, got %v", err)
	}
	// mismo número propio no es conflicto
	if _, err := svc.Update(ctx, "u1", p2.ID, UpdateInput{PastureNumber: intPtr(2)}); err != nil {
		t.Fatalf("expected no conflict with itself, got %v", err)
	}
}

func TestGetAndDelete_OwnerScoped(t *testing.T) {
	ctx := context.Background()
	svc, feed := newTestService()

	p, _ := svc.Create(ctx, "u1", CreateInput{PastureNumber: 5})

	if _, err := svc.Get(ctx, "u2", p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(ctx, "u2", p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting foreign pasture, got %v", err)
	}
	if err := svc.Delete(ctx, "u1", p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if last := feed.changes[len(feed.changes)-1]; last.Op != changefeed.OpDeleted {
		t.Fatalf("expected deleted change, got %+v", last)
	}
	if _, found, _ := svc.FindByNumber(ctx, "u1", 5); found {
		t.Fatalf("pasture 5 should be gone")
	}
}

type brokenRepo struct {
	*testRepo
}

func (brokenRepo) GetByID(ctx context.Context, id string) (Pasture, error) {
	return Pasture{}, errors.New("connection refused")
}

func TestGet_StoreFailureIsNotNotFound(t *testing.T) {
	svc := NewService(brokenRepo{newTestRepo()}, nil, nil)

	_, err := svc.Get(context.Background(), "u1", "p1")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestPublishFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	svc := NewService(newTestRepo(), &recordingFeed{err: errors.New("redis down")}, zap.New(core))

	p, err := svc.Create(context.Background(), "u1", CreateInput{PastureNumber: 2})
	if err != nil {
		t.Fatalf("write must succeed even if publish fails: %v", err)
	}
	entries := logs.FilterMessage("publish pasture change failed").All()
	if len(entries) != 1 || entries[0].ContextMap()["pasture_id"] != p.ID {
		t.Fatalf("expected one warning for %s, got %+v", p.ID, entries)
	}
}
