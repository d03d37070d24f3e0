package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cattle-farm-manager/internal/domain/cows"
)

type CowsRepo struct {
	db  *sql.DB
	loc *time.Location
}

func NewCowsRepo(db *sql.DB, loc *time.Location) *CowsRepo {
	return &CowsRepo{db: db, loc: orUTC(loc)}
}

const cowColumns = `
	id, owner_id, name, animal_type, breed,
	birth_date, death_date, last_calving_date,
	father, mother, brand, location,
	brand_image_url, calf_image_url, adolescent_image_url, adult_image_url,
	owner_name, created_at, updated_at`

func (r *CowsRepo) Create(ctx context.Context, c cows.Cow) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cows (`+cowColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
	`,
		c.ID,
		c.OwnerID,
		c.Name,
		string(c.AnimalType),
		c.Breed,
		nullDateArg(c.BirthDate),
		nullDateArg(c.DeathDate),
		nullDateArg(c.LastCalvingDate),
		c.Father,
		c.Mother,
		c.Brand,
		c.Location,
		c.BrandImageURL,
		c.CalfImageURL,
		c.AdolescentImageURL,
		c.AdultImageURL,
		c.OwnerName,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

// Update reemplaza la ficha completa; owner_name y created_at no cambian.
func (r *CowsRepo) Update(ctx context.Context, c cows.Cow) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cows
		SET
			name = $2,
			animal_type = $3,
			breed = $4,
			birth_date = $5,
			death_date = $6,
			last_calving_date = $7,
			father = $8,
			mother = $9,
			brand = $10,
			location = $11,
			brand_image_url = $12,
			calf_image_url = $13,
			adolescent_image_url = $14,
			adult_image_url = $15,
			updated_at = $16
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		string(c.AnimalType),
		c.Breed,
		nullDateArg(c.BirthDate),
		nullDateArg(c.DeathDate),
		nullDateArg(c.LastCalvingDate),
		c.Father,
		c.Mother,
		c.Brand,
		c.Location,
		c.BrandImageURL,
		c.CalfImageURL,
		c.AdolescentImageURL,
		c.AdultImageURL,
		c.UpdatedAt,
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

func (r *CowsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CowsRepo) GetByID(ctx context.Context, id string) (cows.Cow, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cows.Cow{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+cowColumns+` FROM cows WHERE id = $1`, id)
	c, err := r.scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cows.Cow{}, ErrNotFound
		}
		return cows.Cow{}, err
	}
	return c, nil
}

func (r *CowsRepo) ListByOwner(ctx context.Context, ownerID string) ([]cows.Cow, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cowColumns+`
		FROM cows
		WHERE owner_id = $1
		ORDER BY name ASC, id ASC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cows.Cow, 0)
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CowsRepo) scan(s scanner) (cows.Cow, error) {
	var c cows.Cow
	var typ string
	var birth, death, calving sql.NullTime
	if err := s.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&typ,
		&c.Breed,
		&birth,
		&death,
		&calving,
		&c.Father,
		&c.Mother,
		&c.Brand,
		&c.Location,
		&c.BrandImageURL,
		&c.CalfImageURL,
		&c.AdolescentImageURL,
		&c.AdultImageURL,
		&c.OwnerName,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return cows.Cow{}, err
	}
	c.AnimalType = cows.AnimalType(typ)
	c.BirthDate = fromNullDate(birth, r.loc)
	c.DeathDate = fromNullDate(death, r.loc)
	c.LastCalvingDate = fromNullDate(calving, r.loc)
	return c, nil
}
