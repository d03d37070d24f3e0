package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cattle-farm-manager/internal/domain/herds"
)

type HerdsRepo struct {
	db  *sql.DB
	loc *time.Location
}

// NewHerdsRepo recibe el huso de la finca para reconstruir las fechas DATE.
func NewHerdsRepo(db *sql.DB, loc *time.Location) *HerdsRepo {
	return &HerdsRepo{db: db, loc: orUTC(loc)}
}

const herdColumns = `
	id, owner_id, name, animal_type, animal_count,
	current_pasture_number, last_rotation_date,
	last_water_date, last_feed_date, last_salt_date,
	created_at, updated_at`

func (r *HerdsRepo) Create(ctx context.Context, h herds.Herd) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO herds (`+herdColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		h.ID,
		h.OwnerID,
		h.Name,
		h.AnimalType,
		h.AnimalCount,
		h.CurrentPastureNumber,
		dateArg(h.LastRotationDate),
		nullDateArg(h.LastWaterDate),
		nullDateArg(h.LastFeedDate),
		nullDateArg(h.LastSaltDate),
		h.CreatedAt,
		h.UpdatedAt,
	)
	return err
}

func (r *HerdsRepo) Update(ctx context.Context, h herds.Herd) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE herds
		SET
			name = $2,
			animal_type = $3,
			animal_count = $4,
			current_pasture_number = $5,
			last_rotation_date = $6,
			last_water_date = $7,
			last_feed_date = $8,
			last_salt_date = $9,
			updated_at = $10
		WHERE id = $1
	`,
		h.ID,
		h.Name,
		h.AnimalType,
		h.AnimalCount,
		h.CurrentPastureNumber,
		dateArg(h.LastRotationDate),
		nullDateArg(h.LastWaterDate),
		nullDateArg(h.LastFeedDate),
		nullDateArg(h.LastSaltDate),
		h.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HerdsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM herds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *HerdsRepo) GetByID(ctx context.Context, id string) (herds.Herd, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return herds.Herd{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+herdColumns+` FROM herds WHERE id = $1`, id)
	h, err := r.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return herds.Herd{}, ErrNotFound
		}
		return herds.Herd{}, err
	}
	return h, nil
}

func (r *HerdsRepo) ListByOwner(ctx context.Context, ownerID string) ([]herds.Herd, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+herdColumns+`
		FROM herds
		WHERE owner_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]herds.Herd, 0)
	for rows.Next() {
		h, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HerdsRepo) scan(s scanner) (herds.Herd, error) {
	var h herds.Herd
	var rotation time.Time
	var water, feed, salt sql.NullTime
	if err := s.Scan(
		&h.ID,
		&h.OwnerID,
		&h.Name,
		&h.AnimalType,
		&h.AnimalCount,
		&h.CurrentPastureNumber,
		&rotation,
		&water,
		&feed,
		&salt,
		&h.CreatedAt,
		&h.UpdatedAt,
	); err != nil {
		return herds.Herd{}, err
	}
	h.LastRotationDate = fromDate(rotation, r.loc)
	h.LastWaterDate = fromNullDate(water, r.loc)
	h.LastFeedDate = fromNullDate(feed, r.loc)
	h.LastSaltDate = fromNullDate(salt, r.loc)
	return h, nil
}
