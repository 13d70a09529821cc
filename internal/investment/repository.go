package investment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/models"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

var _ Repo = (*Repository)(nil)

func (r *Repository) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *Repository) Get(ctx context.Context, identity string) (*models.Investment, error) {
	return scanInvestment(r.pool.QueryRow(ctx, `
		SELECT identity, total_invested_paise, gold_micrograms, created_at, updated_at
		FROM investments WHERE identity = $1
	`, identity))
}

// GetForUpdateTx locks the investment row so recovery's read-compute-reset
// sequence cannot race a concurrent invest or recover.
func (r *Repository) GetForUpdateTx(ctx context.Context, tx pgx.Tx, identity string) (*models.Investment, error) {
	return scanInvestment(tx.QueryRow(ctx, `
		SELECT identity, total_invested_paise, gold_micrograms, created_at, updated_at
		FROM investments WHERE identity = $1 FOR UPDATE
	`, identity))
}

// DebitForInvestTx atomically moves amount from balance to invested_amount,
// guarded by the balance floor.
func (r *Repository) DebitForInvestTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64) (int64, error) {
	var newBalance int64
	err := tx.QueryRow(ctx, `
		UPDATE accounts
		SET balance_paise = balance_paise - $1, invested_amount_paise = invested_amount_paise + $1, updated_at = now()
		WHERE identity = $2 AND balance_paise >= $1
		RETURNING balance_paise
	`, amountPaise, identity).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if checkErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE identity = $1)`, identity).Scan(&exists); checkErr != nil {
			return 0, checkErr
		}
		if !exists {
			return 0, apperr.NotFound("worker not found")
		}
		return 0, apperr.InsufficientFunds("insufficient balance for investment")
	}
	return newBalance, err
}

// UpsertTx creates the investment record on first contribution and
// accumulates additively afterwards.
func (r *Repository) UpsertTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise, micrograms int64) (*models.Investment, error) {
	return scanInvestment(tx.QueryRow(ctx, `
		INSERT INTO investments (identity, total_invested_paise, gold_micrograms)
		VALUES ($1, $2, $3)
		ON CONFLICT (identity) DO UPDATE
		SET total_invested_paise = investments.total_invested_paise + EXCLUDED.total_invested_paise,
			gold_micrograms = investments.gold_micrograms + EXCLUDED.gold_micrograms,
			updated_at = now()
		RETURNING identity, total_invested_paise, gold_micrograms, created_at, updated_at
	`, identity, amountPaise, micrograms))
}

// CreditRecoveryTx returns the liquidated value to the balance and clears
// the account's invested-amount mirror in one statement.
func (r *Repository) CreditRecoveryTx(ctx context.Context, tx pgx.Tx, identity string, recoveredPaise int64) (int64, error) {
	var newBalance int64
	err := tx.QueryRow(ctx, `
		UPDATE accounts
		SET balance_paise = balance_paise + $1, invested_amount_paise = 0, updated_at = now()
		WHERE identity = $2
		RETURNING balance_paise
	`, recoveredPaise, identity).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperr.NotFound("worker not found")
	}
	return newBalance, err
}

func (r *Repository) ResetTx(ctx context.Context, tx pgx.Tx, identity string) error {
	_, err := tx.Exec(ctx, `
		UPDATE investments SET total_invested_paise = 0, gold_micrograms = 0, updated_at = now()
		WHERE identity = $1
	`, identity)
	return err
}

func (r *Repository) ToggleAutoInvest(ctx context.Context, identity string) (bool, error) {
	var enabled bool
	err := r.pool.QueryRow(ctx, `
		UPDATE accounts SET auto_invest = NOT auto_invest, updated_at = now()
		WHERE identity = $1
		RETURNING auto_invest
	`, identity).Scan(&enabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, apperr.NotFound("worker not found")
	}
	return enabled, err
}

func scanInvestment(row pgx.Row) (*models.Investment, error) {
	var inv models.Investment
	err := row.Scan(&inv.Identity, &inv.TotalInvestedPaise, &inv.GoldMicrograms, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
