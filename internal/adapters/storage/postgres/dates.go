package postgres

import (
	"database/sql"
	"time"

	"cattle-farm-manager/internal/platform/clock"
)

// Las columnas DATE viajan como texto YYYY-MM-DD: así la zona del proceso
// no corre el día al escribir.
func dateArg(t time.Time) string {
	return clock.FormatDate(t)
}

func nullDateArg(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: clock.FormatDate(*t), Valid: true}
}

// pgx devuelve DATE como medianoche UTC; lo reanclamos al huso de la finca.
func fromDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func fromNullDate(nt sql.NullTime, loc *time.Location) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := fromDate(nt.Time, loc)
	return &t
}

func toNullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func fromNullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func toNullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func fromNullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
