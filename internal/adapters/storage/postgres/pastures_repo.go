package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cattle-farm-manager/internal/domain/pastures"
)

type PasturesRepo struct {
	db *sql.DB
}

func NewPasturesRepo(db *sql.DB) *PasturesRepo {
	return &PasturesRepo{db: db}
}

const pastureColumns = `
	id, owner_id, pasture_number,
	rotation_days, water_frequency, feed_frequency, salt_frequency,
	created_at, updated_at`

func (r *PasturesRepo) Create(ctx context.Context, p pastures.Pasture) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pastures (`+pastureColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerID,
		p.PastureNumber,
		toNullInt(p.RotationDays),
		toNullInt(p.WaterFrequency),
		toNullInt(p.FeedFrequency),
		toNullInt(p.SaltFrequency),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PasturesRepo) Update(ctx context.Context, p pastures.Pasture) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pastures
		SET
			pasture_number = $2,
			rotation_days = $3,
			water_frequency = $4,
			feed_frequency = $5,
			salt_frequency = $6,
			updated_at = $7
		WHERE id = $1
	`,
		p.ID,
		p.PastureNumber,
		toNullInt(p.RotationDays),
		toNullInt(p.WaterFrequency),
		toNullInt(p.FeedFrequency),
		toNullInt(p.SaltFrequency),
		p.UpdatedAt,
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

func (r *PasturesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pastures WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PasturesRepo) GetByID(ctx context.Context, id string) (pastures.Pasture, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pastures.Pasture{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+pastureColumns+` FROM pastures WHERE id = $1`, id)
	p, err := scanPasture(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pastures.Pasture{}, ErrNotFound
		}
		return pastures.Pasture{}, err
	}
	return p, nil
}

func (r *PasturesRepo) ListByOwner(ctx context.Context, ownerID string) ([]pastures.Pasture, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+pastureColumns+`
		FROM pastures
		WHERE owner_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pastures.Pasture, 0)
	for rows.Next() {
		p, err := scanPasture(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPasture(s scanner) (pastures.Pasture, error) {
	var p pastures.Pasture
	var rot, water, feed, salt sql.NullInt64
	if err := s.Scan(
		&p.ID,
		&p.OwnerID,
		&p.PastureNumber,
		&rot,
		&water,
		&feed,
		&salt,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pastures.Pasture{}, err
	}
	p.RotationDays = fromNullInt(rot)
	p.WaterFrequency = fromNullInt(water)
	p.FeedFrequency = fromNullInt(feed)
	p.SaltFrequency = fromNullInt(salt)
	return p, nil
}
