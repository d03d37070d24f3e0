package notifications

import (
	"testing"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"
	"cattle-farm-manager/internal/domain/rotation"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func fixture() ([]pastures.Pasture, []herds.Herd) {
	water := day("2024-01-10")
	ps := []pastures.Pasture{{ID: "P3", PastureNumber: 3, RotationDays: intPtr(30), WaterFrequency: intPtr(15)}}
	hs := []herds.Herd{{
		ID:                   "H1",
		Name:                 "Lecheras",
		CurrentPastureNumber: 3,
		LastRotationDate:     day("2024-01-01"),
		LastWaterDate:        &water,
	}}
	return ps, hs
}

func ids(reg *Registry) []string {
	out := []string{}
	for _, n := range reg.List() {
		out = append(out, n.ID)
	}
	return out
}

func TestReconcile_Scenario1(t *testing.T) {
	ps, hs := fixture()
	reg := NewRegistry()

	Reconcile(reg, day("2024-01-25"), ps, hs)

	require.Equal(t, []string{"water-H1"}, ids(reg))
	require.Equal(t, "Potrero 3 necesita bombeo de agua.", reg.List()[0].Message)
}

func TestReconcile_Scenario2(t *testing.T) {
	ps, hs := fixture()
	reg := NewRegistry()

	Reconcile(reg, day("2024-02-01"), ps, hs)

	require.Equal(t, []string{"rotation-H1", "water-H1"}, ids(reg))
	require.Equal(t, "Rebaño 'Lecheras' necesita rotar del potrero 3.", reg.List()[0].Message)
}

func TestReconcile_IsIdempotent(t *testing.T) {
	ps, hs := fixture()
	reg := NewRegistry()

	added, _ := Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Equal(t, 2, added)

	added, removed := Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Zero(t, added)
	require.Zero(t, removed)
	require.Equal(t, 2, reg.Len())
}

func TestReconcile_SelfHealing(t *testing.T) {
	ps, hs := fixture()
	reg := NewRegistry()
	Reconcile(reg, day("2024-02-01"), ps, hs)

	// se bombeó agua y se rotó el rebaño
	water := day("2024-02-01")
	hs[0].LastWaterDate = &water
	hs[0].LastRotationDate = day("2024-02-01")

	_, removed := Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Equal(t, 2, removed)
	require.Empty(t, ids(reg))
}

func TestReconcile_StaleEntriesAreDropped(t *testing.T) {
	ps, hs := fixture()
	reg := NewRegistry()
	Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Equal(t, 2, reg.Len())

	// el rebaño pasa a un potrero inexistente
	hs[0].CurrentPastureNumber = 99
	Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Empty(t, ids(reg))

	// y también cuando el rebaño se borra
	hs[0].CurrentPastureNumber = 3
	Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Equal(t, 2, reg.Len())
	Reconcile(reg, day("2024-02-01"), ps, nil)
	require.Empty(t, ids(reg))
}

func TestReconcile_UntrackedFrequencyRemoves(t *testing.T) {
	ps, hs := fixture()
	reg := NewRegistry()
	Reconcile(reg, day("2024-02-01"), ps, hs)

	ps[0].WaterFrequency = nil
	Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Equal(t, []string{"rotation-H1"}, ids(reg))
}

func TestMessage(t *testing.T) {
	require.Equal(t, "Rebaño 'Toros' necesita alimentación en el potrero 5.", Message(rotation.ActivityFeed, "Toros", 5))
	require.Equal(t, "Rebaño 'Toros' necesita sal/melaza en el potrero 5.", Message(rotation.ActivitySalt, "Toros", 5))
}

func TestReconcile_StillDueEntryFollowsHerd(t *testing.T) {
	ps, hs := fixture()
	ps = append(ps, pastures.Pasture{ID: "P5", PastureNumber: 5, WaterFrequency: intPtr(15)})
	reg := NewRegistry()
	Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Equal(t, 3, reg.List()[1].PastureNumber)

	// se mueve al 5 sin bombear: el agua sigue vencida, la rotación queda sin seguimiento
	hs[0].CurrentPastureNumber = 5
	hs[0].Name = "Lecheras Norte"
	added, removed := Reconcile(reg, day("2024-02-01"), ps, hs)
	require.Zero(t, added)
	require.Equal(t, 1, removed)

	items := reg.List()
	require.Len(t, items, 1)
	require.Equal(t, "water-H1", items[0].ID)
	require.Equal(t, 5, items[0].PastureNumber)
	require.Equal(t, "Potrero 5 necesita bombeo de agua.", items[0].Message)
}
