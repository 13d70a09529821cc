// Package autoinvest runs the background job that sweeps a worker's payout
// into the gold product when the account opted in. The job is enqueued in
// the same transaction as the payout itself.
package autoinvest

import (
	"context"
	"log/slog"

	"github.com/riverqueue/river"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/investment"
)

type Args struct {
	Identity string `json:"identity"`
}

func (Args) Kind() string { return "auto_invest" }

// Investor is the contract the worker needs from the investment engine.
type Investor interface {
	Invest(ctx context.Context, identity string) (*investment.InvestResult, error)
}

type Worker struct {
	river.WorkerDefaults[Args]
	investor Investor
	log      *slog.Logger
}

func NewWorker(investor Investor, log *slog.Logger) *Worker {
	if log == nil {
		log = slog.Default()
	}
	return &Worker{investor: investor, log: log}
}

func (w *Worker) Work(ctx context.Context, job *river.Job[Args]) error {
	res, err := w.investor.Invest(ctx, job.Args.Identity)
	if apperr.Is(err, apperr.CodeInsufficientFunds) {
		// Balance dipped below the fixed contribution before the sweep
		// ran; skip this round rather than retry forever.
		w.log.Info("auto-invest skipped, balance below contribution", "identity", job.Args.Identity)
		return nil
	}
	if err != nil {
		return err
	}
	w.log.Info("auto-invest swept payout into gold",
		"identity", job.Args.Identity,
		"grams", investment.FormatGrams(res.GoldMicrograms))
	return nil
}
