package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"cattle-farm-manager/internal/domain/maintenance"
)

type MaintenanceRepo struct {
	db  *sql.DB
	loc *time.Location
}

func NewMaintenanceRepo(db *sql.DB, loc *time.Location) *MaintenanceRepo {
	return &MaintenanceRepo{db: db, loc: orUTC(loc)}
}

func (r *MaintenanceRepo) Create(ctx context.Context, e maintenance.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO maintenance_events (
			id, owner_id, type, event_date,
			employees, days, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.OwnerID,
		string(e.Type),
		dateArg(e.EventDate),
		toNullInt(e.Employees),
		toNullFloat(e.Days),
		e.Notes,
		e.CreatedAt,
	)
	return err
}

// ListByOwner filtra por día calendario: from y to se reducen a su fecha en el huso de la finca.
func (r *MaintenanceRepo) ListByOwner(ctx context.Context, ownerID string, from, to time.Time) ([]maintenance.Event, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_id, type, event_date,
			employees, days, notes, created_at
		FROM maintenance_events
		WHERE owner_id = $1 AND event_date >= $2 AND event_date <= $3
		ORDER BY event_date DESC, created_at DESC
	`, ownerID, dateArg(from.In(r.loc)), dateArg(to.In(r.loc)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]maintenance.Event, 0)
	for rows.Next() {
		var e maintenance.Event
		var typ string
		var d time.Time
		var employees sql.NullInt64
		var days sql.NullFloat64
		if err := rows.Scan(
			&e.ID,
			&e.OwnerID,
			&typ,
			&d,
			&employees,
			&days,
			&e.Notes,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Type = maintenance.EventType(typ)
		e.EventDate = fromDate(d, r.loc)
		e.Employees = fromNullInt(employees)
		e.Days = fromNullFloat(days)
		out = append(out, e)
	}
	return out, rows.Err()
}
