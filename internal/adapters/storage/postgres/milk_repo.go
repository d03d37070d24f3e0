package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"cattle-farm-manager/internal/domain/milk"
)

type MilkRepo struct {
	db  *sql.DB
	loc *time.Location
}

func NewMilkRepo(db *sql.DB, loc *time.Location) *MilkRepo {
	return &MilkRepo{db: db, loc: orUTC(loc)}
}

func (r *MilkRepo) Create(ctx context.Context, rec milk.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO milk_records (id, cow_id, owner_id, date, amount, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rec.ID,
		rec.CowID,
		rec.OwnerID,
		dateArg(rec.Date),
		rec.Amount,
		rec.CreatedAt,
	)
	return err
}

func (r *MilkRepo) ListByCow(ctx context.Context, cowID string) ([]milk.Record, error) {
	cowID = strings.TrimSpace(cowID)
	if cowID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cow_id, owner_id, date, amount, created_at
		FROM milk_records
		WHERE cow_id = $1
		ORDER BY date DESC, created_at DESC
	`, cowID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]milk.Record, 0)
	for rows.Next() {
		var rec milk.Record
		var d time.Time
		if err := rows.Scan(
			&rec.ID,
			&rec.CowID,
			&rec.OwnerID,
			&d,
			&rec.Amount,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Date = fromDate(d, r.loc)
		out = append(out, rec)
	}
	return out, rows.Err()
}
