package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaigns-api/internal/core/domain"
)

// AccountRepository implements port.AccountRepository using pgxpool.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a new repository instance.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetAccountByUsername returns the account named username, or nil.
func (r *AccountRepository) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.getAccount(ctx, `SELECT id, username, password_hash, is_active, created_at FROM accounts WHERE username = $1`, username)
}

// GetAccount returns the account with id, or nil.
func (r *AccountRepository) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return r.getAccount(ctx, `SELECT id, username, password_hash, is_active, created_at FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepository) getAccount(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.IsActive, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveAccount inserts a or, when the username is taken, replaces its
// password hash and active flag.
func (r *AccountRepository) SaveAccount(ctx context.Context, a *domain.Account) error {
	return r.pool.QueryRow(ctx, `INSERT INTO accounts (username, password_hash, is_active)
VALUES ($1, $2, $3)
ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, is_active = EXCLUDED.is_active
RETURNING id, created_at`, a.Username, a.PasswordHash, a.IsActive).Scan(&a.ID, &a.CreatedAt)
}
