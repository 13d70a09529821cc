package investment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/config"
	"github.com/equibridge/backend/internal/metrics"
	"github.com/equibridge/backend/internal/models"
)

// InvestResult reports one completed contribution.
type InvestResult struct {
	InvestedPaise         int64 `json:"invested_paise"`
	GoldMicrograms        int64 `json:"gold_micrograms"`
	RemainingBalancePaise int64 `json:"remaining_balance_paise"`
	TotalInvestedPaise    int64 `json:"total_invested_paise"`
	TotalGoldMicrograms   int64 `json:"total_gold_micrograms"`
}

// StatusResult is a pure valuation of the current position; all zeros when
// the identity has never invested.
type StatusResult struct {
	TotalInvestedPaise int64 `json:"total_invested_paise"`
	GoldMicrograms     int64 `json:"gold_micrograms"`
	CurrentValuePaise  int64 `json:"current_value_paise"`
	AppreciationPaise  int64 `json:"appreciation_paise"`
}

type RecoverResult struct {
	RecoveredPaise  int64 `json:"recovered_paise"`
	NewBalancePaise int64 `json:"new_balance_paise"`
}

// Service converts worker balance into the pooled gold position and back at
// fixed, process-wide market constants.
type Service interface {
	Invest(ctx context.Context, identity string) (*InvestResult, error)
	Status(ctx context.Context, identity string) (*StatusResult, error)
	Recover(ctx context.Context, identity string) (*RecoverResult, error)
	ToggleAutoInvest(ctx context.Context, identity string) (bool, error)
}

// Repo is the storage contract. Get/GetForUpdateTx return nil (no error)
// when the identity has no investment record yet.
type Repo interface {
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	Get(ctx context.Context, identity string) (*models.Investment, error)
	GetForUpdateTx(ctx context.Context, tx pgx.Tx, identity string) (*models.Investment, error)
	DebitForInvestTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64) (newBalance int64, err error)
	UpsertTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise, micrograms int64) (*models.Investment, error)
	CreditRecoveryTx(ctx context.Context, tx pgx.Tx, identity string, recoveredPaise int64) (newBalance int64, err error)
	ResetTx(ctx context.Context, tx pgx.Tx, identity string) error
	ToggleAutoInvest(ctx context.Context, identity string) (bool, error)
}

// LedgerWriter appends the entry paired with each balance mutation.
type LedgerWriter interface {
	AppendTx(ctx context.Context, tx pgx.Tx, identity, kind string, amountPaise int64, description string) error
}

type service struct {
	repo   Repo
	ledger LedgerWriter
	market config.Market
}

func NewService(repo Repo, ledger LedgerWriter, market config.Market) Service {
	return &service{repo: repo, ledger: ledger, market: market}
}

var _ Service = (*service)(nil)

// Invest contributes the fixed amount: the balance debit, the position
// increment and the ledger entry commit as one unit.
func (s *service) Invest(ctx context.Context, identity string) (*InvestResult, error) {
	amount := s.market.InvestAmountPaise
	grams := microgramsFor(amount, s.market.GoldUnitPricePaise)
	var res *InvestResult
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		newBalance, err := s.repo.DebitForInvestTx(ctx, tx, identity, amount)
		if err != nil {
			return err
		}
		inv, err := s.repo.UpsertTx(ctx, tx, identity, amount, grams)
		if err != nil {
			return err
		}
		desc := fmt.Sprintf("Gold investment: %sg @ ₹%s/g",
			FormatGrams(grams), formatRupees(s.market.GoldUnitPricePaise))
		if err := s.ledger.AppendTx(ctx, tx, identity, models.LedgerKindDebit, amount, desc); err != nil {
			return err
		}
		res = &InvestResult{
			InvestedPaise:         amount,
			GoldMicrograms:        grams,
			RemainingBalancePaise: newBalance,
			TotalInvestedPaise:    inv.TotalInvestedPaise,
			TotalGoldMicrograms:   inv.GoldMicrograms,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.InvestmentsTotal.Inc()
	return res, nil
}

func (s *service) Status(ctx context.Context, identity string) (*StatusResult, error) {
	inv, err := s.repo.Get(ctx, identity)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return &StatusResult{}, nil
	}
	base := valuePaise(inv.GoldMicrograms, s.market.GoldUnitPricePaise)
	current := applyBps(base, s.market.AppreciationBps)
	return &StatusResult{
		TotalInvestedPaise: inv.TotalInvestedPaise,
		GoldMicrograms:     inv.GoldMicrograms,
		CurrentValuePaise:  current,
		AppreciationPaise:  current - inv.TotalInvestedPaise,
	}, nil
}

// Recover liquidates the full position at principal plus appreciation.
// Partial recovery is not supported.
func (s *service) Recover(ctx context.Context, identity string) (*RecoverResult, error) {
	var res *RecoverResult
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		inv, err := s.repo.GetForUpdateTx(ctx, tx, identity)
		if err != nil {
			return err
		}
		if inv == nil || inv.TotalInvestedPaise == 0 {
			return apperr.Conflict("no investments to recover")
		}
		recovered := applyBps(inv.TotalInvestedPaise, s.market.AppreciationBps)
		newBalance, err := s.repo.CreditRecoveryTx(ctx, tx, identity, recovered)
		if err != nil {
			return err
		}
		if err := s.repo.ResetTx(ctx, tx, identity); err != nil {
			return err
		}
		desc := fmt.Sprintf("Emergency gold recovery (%s%% appreciation)", formatBpsPct(s.market.AppreciationBps))
		if err := s.ledger.AppendTx(ctx, tx, identity, models.LedgerKindCredit, recovered, desc); err != nil {
			return err
		}
		res = &RecoverResult{RecoveredPaise: recovered, NewBalancePaise: newBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.RecoveriesTotal.Inc()
	return res, nil
}

func (s *service) ToggleAutoInvest(ctx context.Context, identity string) (bool, error) {
	return s.repo.ToggleAutoInvest(ctx, identity)
}

// microgramsFor converts a contribution to micrograms of gold at the unit
// price, rounded half-up to the microgram (six decimal places of a gram).
func microgramsFor(amountPaise, unitPricePaise int64) int64 {
	return (amountPaise*1_000_000 + unitPricePaise/2) / unitPricePaise
}

// valuePaise is micrograms back to money at the unit price, rounded half-up.
func valuePaise(micrograms, unitPricePaise int64) int64 {
	return (micrograms*unitPricePaise + 500_000) / 1_000_000
}

// applyBps scales v by (1 + bps/10000), rounding half-up.
func applyBps(v, bps int64) int64 {
	return (v*(10_000+bps) + 5_000) / 10_000
}

// FormatGrams renders micrograms as a decimal gram count, e.g. "0.015385".
func FormatGrams(micrograms int64) string {
	return strconv.FormatFloat(float64(micrograms)/1e6, 'f', 6, 64)
}

func formatRupees(paise int64) string {
	if paise%100 == 0 {
		return strconv.FormatInt(paise/100, 10)
	}
	return strconv.FormatFloat(float64(paise)/100, 'f', 2, 64)
}

func formatBpsPct(bps int64) string {
	return strconv.FormatFloat(float64(bps)/100, 'f', -1, 64)
}
