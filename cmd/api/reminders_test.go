package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"
)

func intPtr(v int) *int { return &v }

func TestPrintReminders(t *testing.T) {
	today := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	water := today.AddDate(0, 0, -12)

	ps := []pastures.Pasture{{ID: "p3", PastureNumber: 3, RotationDays: intPtr(30), WaterFrequency: intPtr(10)}}
	hs := []herds.Herd{{
		ID:                   "h1",
		Name:                 "Lote Norte",
		CurrentPastureNumber: 3,
		LastRotationDate:     today.AddDate(0, 0, -5),
		LastWaterDate:        &water,
	}}

	var buf bytes.Buffer
	printReminders(&buf, today, ps, hs)
	out := buf.String()

	for _, want := range []string{
		"Fecha: 2024-03-20",
		"Lote Norte (potrero 3)",
		"¡Ahora!",
		"Alertas (1):",
		"Potrero 3 necesita bombeo de agua.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintReminders_Empty(t *testing.T) {
	var buf bytes.Buffer
	printReminders(&buf, time.Now(), nil, nil)
	if !strings.Contains(buf.String(), "Sin rebaños") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
