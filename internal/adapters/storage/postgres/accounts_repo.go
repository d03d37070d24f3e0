package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cattle-farm-manager/internal/domain/accounts"
)

type AccountsRepo struct {
	db *sql.DB
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (r *AccountsRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return accounts.Account{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, display_name, email, role, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id)

	var a accounts.Account
	var role string
	if err := row.Scan(&a.ID, &a.DisplayName, &a.Email, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, ErrNotFound
		}
		return accounts.Account{}, err
	}
	a.Role = accounts.Role(role)
	return a, nil
}

// Save hace upsert por id; created_at se conserva en la primera escritura.
func (r *AccountsRepo) Save(ctx context.Context, a accounts.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, display_name, email, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			updated_at = EXCLUDED.updated_at
	`,
		a.ID,
		a.DisplayName,
		a.Email,
		string(a.Role),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AccountsRepo) List(ctx context.Context) ([]accounts.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, display_name, email, role, created_at, updated_at
		FROM accounts
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]accounts.Account, 0)
	for rows.Next() {
		var a accounts.Account
		var role string
		if err := rows.Scan(&a.ID, &a.DisplayName, &a.Email, &role, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		a.Role = accounts.Role(role)
		out = append(out, a)
	}
	return out, rows.Err()
}
