package notifications

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cattle-farm-manager/internal/adapters/changefeed/memory"
	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"
	"cattle-farm-manager/internal/middleware"
	"cattle-farm-manager/internal/ports/auth"
	"cattle-farm-manager/internal/ports/changefeed"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	ps    []pastures.Pasture
	hs    []herds.Herd
	today time.Time
	err   error
	calls int
}

func (f *fakeSource) Snapshot(ctx context.Context, ownerID string) ([]pastures.Pasture, []herds.Herd, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.ps, f.hs, nil
}

func (f *fakeSource) Today() time.Time { return f.today }

func TestCenter_EveryListEvaluatesWithToday(t *testing.T) {
	ps, hs := fixture()
	src := &fakeSource{ps: ps, hs: hs, today: day("2024-01-24")}
	c := NewCenter(src, nil, nil)

	items, err := c.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, items)

	// sin cambios de datos: solo pasa el día
	src.today = day("2024-01-25")
	items, err = c.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "water-H1", items[0].ID)
	require.Equal(t, 2, src.calls)
}

func TestCenter_ChangeFeedTriggersReconcile(t *testing.T) {
	ps, hs := fixture()
	src := &fakeSource{ps: ps, hs: hs, today: day("2024-01-25")}
	feed := memory.NewFeed()
	c := NewCenter(src, feed, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Start(ctx))

	items, _ := c.List(ctx, "u1")
	require.Len(t, items, 1)

	src.today = day("2024-02-01")
	_ = feed.Publish(ctx, changefeed.Change{Collection: changefeed.CollectionHerds, OwnerID: "u1", DocumentID: "H1", Op: changefeed.OpUpdated})

	// el registro ya convergió antes de cualquier lectura
	reg, ok := c.lookup("u1")
	require.True(t, ok)
	require.Equal(t, []string{"water-H1", "rotation-H1"}, ids(reg))
	require.Equal(t, 2, src.calls)
}

func TestCenter_DismissUntilNextPass(t *testing.T) {
	ps, hs := fixture()
	src := &fakeSource{ps: ps, hs: hs, today: day("2024-01-25")}
	c := NewCenter(src, nil, nil)

	_, _ = c.List(context.Background(), "u1")
	require.NoError(t, c.Dismiss("u1", "water-H1"))
	require.ErrorIs(t, c.Dismiss("u1", "water-H1"), ErrNotFound)

	reg, _ := c.lookup("u1")
	require.Zero(t, reg.Len())

	// la siguiente pasada la vuelve a generar porque sigue vencida
	items, err := c.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCenter_DismissBeforeFirstList(t *testing.T) {
	ps, hs := fixture()
	src := &fakeSource{ps: ps, hs: hs, today: day("2024-01-25")}
	c := NewCenter(src, nil, nil)

	require.ErrorIs(t, c.Dismiss("u1", "water-H1"), ErrNotFound)
	_, ok := c.lookup("u1")
	require.False(t, ok)

	items, err := c.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 1, src.calls)
}

func TestCenter_ListErrorIsRetried(t *testing.T) {
	src := &fakeSource{err: errors.New("db down"), today: day("2024-01-25")}
	c := NewCenter(src, nil, nil)

	_, err := c.List(context.Background(), "u1")
	require.Error(t, err)

	ps, hs := fixture()
	src.err, src.ps, src.hs = nil, ps, hs
	items, err := c.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestHandlers(t *testing.T) {
	ps, hs := fixture()
	c := NewCenter(&fakeSource{ps: ps, hs: hs, today: day("2024-01-25")}, nil, nil)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: "u1"})))
		})
	})
	RegisterRoutes(r, c)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `"id":"water-H1"`), rec.Body.String())
	require.True(t, strings.Contains(rec.Body.String(), `"pasture_number":3`), rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/notifications/water-H1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/notifications/water-H1", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
