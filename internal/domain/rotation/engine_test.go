package rotation

import (
	"testing"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"

	"github.com/google/go-cmp/cmp"
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

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func scenario() (pastures.Pasture, herds.Herd) {
	p := pastures.Pasture{ID: "P3", PastureNumber: 3, RotationDays: intPtr(30), WaterFrequency: intPtr(15)}
	h := herds.Herd{
		ID:                   "H1",
		Name:                 "Lecheras",
		CurrentPastureNumber: 3,
		LastRotationDate:     day("2024-01-01"),
		LastWaterDate:        dayPtr("2024-01-10"),
	}
	return p, h
}

func TestEvaluate_UntrackedWhenUnconfigured(t *testing.T) {
	p := pastures.Pasture{PastureNumber: 1}
	h := herds.Herd{ID: "H", CurrentPastureNumber: 1, LastRotationDate: day("2024-01-01"), LastWaterDate: dayPtr("2024-01-01")}

	r := Evaluate(day("2024-03-01"), h, p)
	require.Empty(t, r.Countdowns)

	// frecuencia configurada pero sin fecha previa
	p.FeedFrequency = intPtr(3)
	r = Evaluate(day("2024-03-01"), h, p)
	require.Empty(t, r.Countdowns)
}

func TestEvaluate_WaterDueBoundary(t *testing.T) {
	p := pastures.Pasture{PastureNumber: 1, WaterFrequency: intPtr(10)}
	h := herds.Herd{ID: "H", CurrentPastureNumber: 1, LastRotationDate: day("2024-01-01"), LastWaterDate: dayPtr("2024-01-01")}

	cases := []struct {
		today string
		want  Countdown
	}{
		{"2024-01-10", Countdown{DaysRemaining: 1, IsDue: false}},
		{"2024-01-11", Countdown{DaysRemaining: 0, IsDue: true}},
		{"2024-01-12", Countdown{DaysRemaining: -1, IsDue: true}},
	}
	for _, tc := range cases {
		r := Evaluate(day(tc.today), h, p)
		require.Equal(t, tc.want, r.Countdowns[ActivityWater], tc.today)
	}
}

func TestEvaluate_OverdueIsMonotonic(t *testing.T) {
	p, h := scenario()
	prev := Evaluate(day("2024-01-01"), h, p).Countdowns[ActivityRotation]
	for d := 1; d < 90; d++ {
		cur := Evaluate(day("2024-01-01").AddDate(0, 0, d), h, p).Countdowns[ActivityRotation]
		require.Equal(t, prev.DaysRemaining-1, cur.DaysRemaining)
		if prev.IsDue {
			require.True(t, cur.IsDue)
		}
		prev = cur
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	p, h := scenario()

	got := Evaluate(day("2024-01-25"), h, p)
	want := Report{
		HerdID:        "H1",
		HerdName:      "Lecheras",
		PastureNumber: 3,
		Countdowns: map[Activity]Countdown{
			ActivityRotation: {DaysRemaining: 5, IsDue: false},
			ActivityWater:    {DaysRemaining: 0, IsDue: true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}

	got = Evaluate(day("2024-02-01"), h, p)
	want.Countdowns = map[Activity]Countdown{
		ActivityRotation: {DaysRemaining: -2, IsDue: true},
		ActivityWater:    {DaysRemaining: -7, IsDue: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []Activity{ActivityRotation, ActivityWater}, got.Due())
}

func TestEvaluate_IgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	p := pastures.Pasture{PastureNumber: 1, SaltFrequency: intPtr(7)}
	last := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)
	h := herds.Herd{ID: "H", CurrentPastureNumber: 1, LastRotationDate: last, LastSaltDate: &last}

	today := time.Date(2024, 3, 8, 0, 5, 0, 0, loc)
	require.Equal(t, Countdown{DaysRemaining: 0, IsDue: true}, Evaluate(today, h, p).Countdowns[ActivitySalt])
}

func TestEvaluateAll_PastureMismatch(t *testing.T) {
	p, h := scenario()
	lost := h
	lost.ID = "H2"
	lost.CurrentPastureNumber = 99

	reports := EvaluateAll(day("2024-02-01"), []pastures.Pasture{p}, []herds.Herd{lost, h})
	require.Len(t, reports, 1)
	require.Equal(t, "H1", reports[0].HerdID)

	require.Empty(t, EvaluateAll(day("2024-02-01"), nil, []herds.Herd{lost}))
}

func TestCountdownLabel(t *testing.T) {
	require.Equal(t, "¡Ahora!", Countdown{DaysRemaining: 0, IsDue: true}.Label())
	require.Equal(t, "¡Ahora!", Countdown{DaysRemaining: -4, IsDue: true}.Label())
	require.Equal(t, "en 1 día", Countdown{DaysRemaining: 1}.Label())
	require.Equal(t, "en 12 días", Countdown{DaysRemaining: 12}.Label())
}
