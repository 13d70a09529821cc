package ledger

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/equibridge/backend/internal/metrics"
	"github.com/equibridge/backend/internal/models"
)

// Service is the single writer for balance-affecting state. The Tx variants
// run inside a caller-owned transaction so an engine can bundle a state
// transition with its money movement; Credit/Debit open their own.
type Service interface {
	Credit(ctx context.Context, identity string, amountPaise int64, description string) (int64, error)
	Debit(ctx context.Context, identity string, amountPaise int64, description string) (int64, error)
	CreditTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error)
	DebitTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error)
	PayoutTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (bool, error)
	AppendTx(ctx context.Context, tx pgx.Tx, identity, kind string, amountPaise int64, description string) error
	History(ctx context.Context, identity string, limit int) ([]*models.LedgerEntry, error)
}

// Repo is the storage contract: every balance mutation lands together with
// its entry, and the Tx variants run in a caller-owned transaction.
type Repo interface {
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	CreditTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error)
	DebitTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error)
	PayoutTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (bool, error)
	AppendTx(ctx context.Context, tx pgx.Tx, identity, kind string, amountPaise int64, description string) error
	History(ctx context.Context, identity string, limit int) ([]*models.LedgerEntry, error)
}

type service struct {
	repo         Repo
	historyLimit int
}

// NewService creates a ledger service. historyLimit caps History results
// (and is the default when callers pass limit <= 0).
func NewService(repo Repo, historyLimit int) Service {
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &service{repo: repo, historyLimit: historyLimit}
}

var _ Service = (*service)(nil)

func (s *service) Credit(ctx context.Context, identity string, amountPaise int64, description string) (int64, error) {
	var newBalance int64
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		newBalance, err = s.CreditTx(ctx, tx, identity, amountPaise, description)
		return err
	})
	return newBalance, err
}

func (s *service) Debit(ctx context.Context, identity string, amountPaise int64, description string) (int64, error) {
	var newBalance int64
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		newBalance, err = s.DebitTx(ctx, tx, identity, amountPaise, description)
		return err
	})
	return newBalance, err
}

func (s *service) CreditTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error) {
	newBalance, err := s.repo.CreditTx(ctx, tx, identity, amountPaise, description)
	if err == nil {
		metrics.LedgerEntriesTotal.WithLabelValues(models.LedgerKindCredit).Inc()
	}
	return newBalance, err
}

func (s *service) DebitTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (int64, error) {
	newBalance, err := s.repo.DebitTx(ctx, tx, identity, amountPaise, description)
	if err == nil {
		metrics.LedgerEntriesTotal.WithLabelValues(models.LedgerKindDebit).Inc()
	}
	return newBalance, err
}

func (s *service) PayoutTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (bool, error) {
	autoInvest, err := s.repo.PayoutTx(ctx, tx, identity, amountPaise, description)
	if err == nil {
		metrics.LedgerEntriesTotal.WithLabelValues(models.LedgerKindCredit).Inc()
	}
	return autoInvest, err
}

func (s *service) AppendTx(ctx context.Context, tx pgx.Tx, identity, kind string, amountPaise int64, description string) error {
	err := s.repo.AppendTx(ctx, tx, identity, kind, amountPaise, description)
	if err == nil {
		metrics.LedgerEntriesTotal.WithLabelValues(kind).Inc()
	}
	return err
}

// History is a pure read: reverse-chronological, bounded, restartable.
func (s *service) History(ctx context.Context, identity string, limit int) ([]*models.LedgerEntry, error) {
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	return s.repo.History(ctx, identity, limit)
}
