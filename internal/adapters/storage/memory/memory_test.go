package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cattle-farm-manager/internal/domain/cows"
	"cattle-farm-manager/internal/domain/health"
	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/maintenance"
	"cattle-farm-manager/internal/domain/pastures"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestPastureRepo_ListByOwnerCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPastureRepo()

	require.NoError(t, repo.Create(ctx, pastures.Pasture{ID: "b", OwnerID: "u1", PastureNumber: 2, CreatedAt: day(2)}))
	require.NoError(t, repo.Create(ctx, pastures.Pasture{ID: "a", OwnerID: "u1", PastureNumber: 1, CreatedAt: day(1)}))
	require.NoError(t, repo.Create(ctx, pastures.Pasture{ID: "c", OwnerID: "u2", PastureNumber: 3, CreatedAt: day(1)}))
	require.Error(t, repo.Create(ctx, pastures.Pasture{ID: "a", OwnerID: "u1"}))

	got, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "b", got[1].ID)

	require.NoError(t, repo.Delete(ctx, "a"))
	require.ErrorIs(t, repo.Delete(ctx, "a"), ErrNotFound)
	_, err = repo.GetByID(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHerdRepo_UpdateMissing(t *testing.T) {
	repo := NewHerdRepo()
	err := repo.Update(context.Background(), herds.Herd{ID: "nope"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCowRepo_ListSortedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewCowRepo()
	for _, c := range []cows.Cow{
		{ID: "1", OwnerID: "u1", Name: "V-20"},
		{ID: "2", OwnerID: "u1", Name: "A-01"},
		{ID: "3", OwnerID: "u1", Name: "M-07"},
	} {
		require.NoError(t, repo.Create(ctx, c))
	}

	got, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	require.Equal(t, []string{"A-01", "M-07", "V-20"}, names)
}

func TestHealthRepo_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewHealthRepo()
	events := []health.Event{
		{ID: "e1", CowID: "c1", Type: health.EventVaccination, EventDate: day(1), Notes: "aftosa", Status: health.StatusActive},
		{ID: "e2", CowID: "c1", Type: health.EventDeworming, EventDate: day(5), Status: health.StatusActive},
		{ID: "e3", CowID: "c1", Type: health.EventVaccination, EventDate: day(10), Status: health.StatusActive},
		{ID: "e4", CowID: "c2", Type: health.EventVaccination, EventDate: day(3), Status: health.StatusActive},
	}
	for _, e := range events {
		require.NoError(t, repo.Create(ctx, e))
	}
	require.NoError(t, repo.Void(ctx, "e3"))

	all, err := repo.ListByCow(ctx, "c1", health.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "e2", all[0].ID, "más reciente primero")

	withVoided, err := repo.ListByCow(ctx, "c1", health.ListFilter{IncludeVoided: true})
	require.NoError(t, err)
	require.Len(t, withVoided, 3)
	require.Equal(t, "e3", withVoided[0].ID)

	from, to := day(1), day(4)
	ranged, err := repo.ListByCow(ctx, "c1", health.ListFilter{From: &from, To: &to, Types: []health.EventType{health.EventVaccination}})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	require.Equal(t, "e1", ranged[0].ID)

	found, err := repo.ListByCow(ctx, "c1", health.ListFilter{Query: "AFTOSA"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	limited, err := repo.ListByCow(ctx, "c1", health.ListFilter{Limit: 1, IncludeVoided: true})
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestMaintenanceRepo_RangeInclusive(t *testing.T) {
	ctx := context.Background()
	repo := NewMaintenanceRepo()
	for i, d := range []int{1, 5, 9} {
		require.NoError(t, repo.Create(ctx, maintenance.Event{
			ID:        string(rune('a' + i)),
			OwnerID:   "u1",
			Type:      maintenance.TypeFumigada,
			EventDate: day(d),
		}))
	}

	got, err := repo.ListByOwner(ctx, "u1", day(5), day(9).Add(24*time.Hour-time.Nanosecond))
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].EventDate.After(got[1].EventDate))

	none, err := repo.ListByOwner(ctx, "u2", day(1), day(30))
	require.NoError(t, err)
	require.Empty(t, none)
}
