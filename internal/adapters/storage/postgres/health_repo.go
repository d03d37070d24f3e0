package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"cattle-farm-manager/internal/domain/health"
)

type HealthRepo struct {
	db  *sql.DB
	loc *time.Location
}

func NewHealthRepo(db *sql.DB, loc *time.Location) *HealthRepo {
	return &HealthRepo{db: db, loc: orUTC(loc)}
}

const healthColumns = `
	id, cow_id, type, event_date, notes, reminder_date,
	recorded_by, recorded_at, status`

func (r *HealthRepo) Create(ctx context.Context, e health.Event) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_events (`+healthColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		e.CowID,
		string(e.Type),
		dateArg(e.EventDate),
		e.Notes,
		nullDateArg(e.ReminderDate),
		e.RecordedBy,
		e.RecordedAt,
		string(e.Status),
	)
	return err
}

func (r *HealthRepo) GetByID(ctx context.Context, id string) (health.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return health.Event{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+healthColumns+` FROM health_events WHERE id = $1`, id)
	e, err := r.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return health.Event{}, ErrNotFound
		}
		return health.Event{}, err
	}
	return e, nil
}

func (r *HealthRepo) ListByCow(ctx context.Context, cowID string, filter health.ListFilter) ([]health.Event, error) {
	cowID = strings.TrimSpace(cowID)
	if cowID == "" {
		return nil, nil
	}

	var sb strings.Builder
	args := []any{cowID}
	argN := 2

	sb.WriteString(`SELECT ` + healthColumns + ` FROM health_events WHERE cow_id = $1`)

	if !filter.IncludeVoided {
		sb.WriteString(" AND status = 'active'")
	}

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	// from/to sobre event_date (DATE): se comparan días calendario
	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND event_date >= $%d", argN))
		args = append(args, dateArg(filter.From.In(r.loc)))
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND event_date <= $%d", argN))
		args = append(args, dateArg(filter.To.In(r.loc)))
		argN++
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		sb.WriteString(fmt.Sprintf(" AND notes ILIKE $%d", argN))
		args = append(args, "%"+q+"%")
		argN++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	sb.WriteString(" ORDER BY event_date DESC, recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]health.Event, 0)
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *HealthRepo) Void(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE health_events
		SET status = 'voided'
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HealthRepo) scan(s scanner) (health.Event, error) {
	var e health.Event
	var typ, status string
	var eventDate time.Time
	var reminder sql.NullTime
	if err := s.Scan(
		&e.ID,
		&e.CowID,
		&typ,
		&eventDate,
		&e.Notes,
		&reminder,
		&e.RecordedBy,
		&e.RecordedAt,
		&status,
	); err != nil {
		return health.Event{}, err
	}
	e.Type = health.EventType(typ)
	e.Status = health.Status(status)
	e.EventDate = fromDate(eventDate, r.loc)
	e.ReminderDate = fromNullDate(reminder, r.loc)
	return e, nil
}
