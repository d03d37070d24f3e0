package clock

import (
	"testing"
	"time"
)

func TestParseDate_InLocation(t *testing.T) {
	loc := time.FixedZone("VET", -4*3600)
	d, err := ParseDate(" 2024-03-15 ", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Location() != loc || d.Hour() != 0 || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}

	if _, err := ParseDate("15/03/2024", loc); err == nil {
		t.Fatalf("expected error for dd/mm/yyyy")
	}

	none, err := ParseOptionalDate("", loc)
	if err != nil || none != nil {
		t.Fatalf("expected nil for empty string, got %v %v", none, err)
	}
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	end := EndOfDay(d)
	if end.Day() != 15 || end.Add(time.Nanosecond).Day() != 16 {
		t.Fatalf("unexpected end of day: %v", end)
	}
	if FormatDate(StartOfDay(d)) != "2024-03-15" {
		t.Fatalf("unexpected start of day")
	}
	if FormatOptionalDate(nil) != nil {
		t.Fatalf("expected nil")
	}
}
