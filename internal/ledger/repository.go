package ledger

import (
	"context"
	"errors"

	"github.com/google/uuid"
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

// WithinTx runs fn inside one transaction: either every balance mutation and
// its ledger entry commit together, or none of them are visible.
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

// CreditTx adds amount to the identity's balance and appends the matching
// credit entry inside the caller's transaction.
func (r *Repository) CreditTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error) {
	var newBalance int64
	err := tx.QueryRow(ctx, `
		UPDATE accounts SET balance_paise = balance_paise + $1, updated_at = now()
		WHERE identity = $2
		RETURNING balance_paise
	`, amountPaise, identity).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperr.NotFound("account not found")
	}
	if err != nil {
		return 0, err
	}
	if err := r.AppendTx(ctx, tx, identity, models.LedgerKindCredit, amountPaise, description); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// DebitTx deducts amount only when the current balance covers it (atomic
// conditional update, never read-then-write) and appends the debit entry in
// the same transaction.
func (r *Repository) DebitTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error) {
	var newBalance int64
	err := tx.QueryRow(ctx, `
		UPDATE accounts SET balance_paise = balance_paise - $1, updated_at = now()
		WHERE identity = $2 AND balance_paise >= $1
		RETURNING balance_paise
	`, amountPaise, identity).Scan(&newBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if checkErr := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE identity = $1)`, identity).Scan(&exists); checkErr != nil {
			return 0, checkErr
		}
		if !exists {
			return 0, apperr.NotFound("account not found")
		}
		return 0, apperr.InsufficientFunds("insufficient balance")
	}
	if err != nil {
		return 0, err
	}
	if err := r.AppendTx(ctx, tx, identity, models.LedgerKindDebit, amountPaise, description); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// PayoutTx credits a job's pay: balance and total_earned move together with
// one credit entry. Returns whether the account has auto-invest enabled so
// the caller can enqueue the follow-up job in the same transaction.
func (r *Repository) PayoutTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (autoInvest bool, err error) {
	err = tx.QueryRow(ctx, `
		UPDATE accounts
		SET balance_paise = balance_paise + $1, total_earned_paise = total_earned_paise + $1, updated_at = now()
		WHERE identity = $2
		RETURNING auto_invest
	`, amountPaise, identity).Scan(&autoInvest)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, apperr.NotFound("account not found")
	}
	if err != nil {
		return false, err
	}
	return autoInvest, r.AppendTx(ctx, tx, identity, models.LedgerKindCredit, amountPaise, description)
}

// AppendTx inserts one immutable ledger entry. Repayment uses this directly:
// it records debt movement without touching any balance.
func (r *Repository) AppendTx(ctx context.Context, tx pgx.Tx, identity, kind string, amountPaise int64, description string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO ledger_entries (id, identity, kind, amount_paise, description)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New(), identity, kind, amountPaise, description)
	return err
}

func (r *Repository) History(ctx context.Context, identity string, limit int) ([]*models.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, identity, kind, amount_paise, description, created_at
		FROM ledger_entries WHERE identity = $1 ORDER BY created_at DESC LIMIT $2
	`, identity, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Identity, &e.Kind, &e.AmountPaise, &e.Description, &e.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
