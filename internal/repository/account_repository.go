package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizdeck/quiz-backend/internal/model"
)

// AccountRepository handles account data access.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create inserts a new account and fills in the generated fields.
func (r *AccountRepository) Create(ctx context.Context, a *model.Account) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO accounts (name, about, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.About, a.Email, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID retrieves an account by its identifier.
func (r *AccountRepository) GetByID(ctx context.Context, id int) (*model.Account, error) {
	a := &model.Account{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, about, email, password_hash, success, fail, created_at, updated_at
		 FROM accounts WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.About, &a.Email, &a.PasswordHash,
		&a.Success, &a.Fail, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByEmail retrieves an account by email.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	a := &model.Account{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, about, email, password_hash, success, fail, created_at, updated_at
		 FROM accounts WHERE email = $1`, email,
	).Scan(&a.ID, &a.Name, &a.About, &a.Email, &a.PasswordHash,
		&a.Success, &a.Fail, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateProfile updates the mutable profile fields of an account.
func (r *AccountRepository) UpdateProfile(ctx context.Context, id int, name, about string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE accounts SET name = $1, about = $2, updated_at = NOW() WHERE id = $3`,
		name, about, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// IncrementStats atomically adds the scored deltas to the account's
// cumulative counters. A single statement, so concurrent participations
// never lose increments.
func (r *AccountRepository) IncrementStats(ctx context.Context, id int, success, fail int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE accounts SET success = success + $1, fail = fail + $2, updated_at = NOW()
		 WHERE id = $3`,
		success, fail, id,
	)
	return err
}
