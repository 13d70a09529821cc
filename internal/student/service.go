package student

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/config"
	"github.com/equibridge/backend/internal/curriculum"
	"github.com/equibridge/backend/internal/metrics"
	"github.com/equibridge/backend/internal/models"
)

const quizPassPct = 60

type RegisterSpec struct {
	Identity        string
	Name            string
	Age             int
	DocumentID      string
	FieldOfInterest string
}

type ProgressResult struct {
	CompletedSteps    []int `json:"completed_steps"`
	TotalFundingPaise int64 `json:"total_funding_paise"`
	ProgressPct       int   `json:"progress_pct"`
	TotalSteps        int   `json:"total_steps"`
}

type FundingStep struct {
	Step             int    `json:"step"`
	Title            string `json:"title"`
	OrgFundedPaise   int64  `json:"org_funded_paise"`
	StudentPaidPaise int64  `json:"student_paid_paise"`
}

type JobStatusResult struct {
	Name                  string        `json:"name"`
	Org                   string        `json:"org"`
	Field                 string        `json:"field"`
	SalaryPaise           int64         `json:"salary_paise"`
	TotalFundingPaise     int64         `json:"total_funding_paise"`
	RepaymentPaidPaise    int64         `json:"repayment_paid_paise"`
	RemainingDebtPaise    int64         `json:"remaining_debt_paise"`
	MonthlyRepaymentPaise int64         `json:"monthly_repayment_paise"`
	MonthsRepaid          int           `json:"months_repaid"`
	MonthsRemaining       int           `json:"months_remaining"`
	NetThisMonthPaise     int64         `json:"net_this_month_paise"`
	FundingBreakdown      []FundingStep `json:"funding_breakdown"`
	CompletedSteps        []int         `json:"completed_steps"`
	ProgressPct           int           `json:"progress_pct"`
}

type RepayResult struct {
	FullyRepaid        bool  `json:"fully_repaid"`
	PaidThisMonthPaise int64 `json:"paid_this_month_paise"`
	TotalPaidPaise     int64 `json:"total_paid_paise"`
	RemainingDebtPaise int64 `json:"remaining_debt_paise"`
}

type QuizResult struct {
	Month          int       `json:"month"`
	Topic          string    `json:"topic"`
	Score          int       `json:"score"`
	Total          int       `json:"total"`
	PctScore       int       `json:"pct_score"`
	Passed         bool      `json:"passed"`
	TaskSubmitted  bool      `json:"task_submitted"`
	TaskSubmission string    `json:"task_submission,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
	CorrectAnswers []int     `json:"correct_answers"`
}

// Service drives the education-funding pipeline: org selection, funding
// recomputation from completed roadmap steps, the salary-proportional
// repayment schedule, and the monthly quiz periphery.
type Service interface {
	Register(ctx context.Context, spec RegisterSpec) (*models.Student, error)
	Get(ctx context.Context, identity string) (*models.Student, error)
	SelectOrg(ctx context.Context, identity, orgName string) error
	UpdateProgress(ctx context.Context, identity, orgName string, completedSteps []int) (*ProgressResult, error)
	JobStatus(ctx context.Context, identity string) (*JobStatusResult, error)
	RepayMonth(ctx context.Context, identity string) (*RepayResult, error)
	SubmitQuiz(ctx context.Context, identity string, month int, answers []int, taskSubmission string) (*QuizResult, error)
	QuizResults(ctx context.Context, identity string) (json.RawMessage, error)
}

type Repo interface {
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	Create(ctx context.Context, st *models.Student) error
	Get(ctx context.Context, identity string) (*models.Student, error)
	GetForUpdateTx(ctx context.Context, tx pgx.Tx, identity string) (*models.Student, error)
	SelectOrg(ctx context.Context, identity, orgName string) error
	SetProgress(ctx context.Context, identity string, steps []int, fundingPaise int64, pct int) error
	MarkJobPlaced(ctx context.Context, identity string) error
	ApplyRepaymentTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64) (paidPaise int64, monthsRepaid int, err error)
	SaveQuizResult(ctx context.Context, identity string, month int, result []byte) error
	QuizResults(ctx context.Context, identity string) ([]byte, error)
}

// OrgStore is the read-only roadmap content collaborator.
type OrgStore interface {
	GetByName(ctx context.Context, name string) (*models.Organization, error)
}

// LedgerWriter appends the debt-movement entry paired with each repayment.
type LedgerWriter interface {
	AppendTx(ctx context.Context, tx pgx.Tx, identity, kind string, amountPaise int64, description string) error
}

type service struct {
	repo   Repo
	orgs   OrgStore
	ledger LedgerWriter
	cfg    config.Repayment
}

func NewService(repo Repo, orgs OrgStore, ledger LedgerWriter, cfg config.Repayment) Service {
	return &service{repo: repo, orgs: orgs, ledger: ledger, cfg: cfg}
}

var _ Service = (*service)(nil)

func (s *service) Register(ctx context.Context, spec RegisterSpec) (*models.Student, error) {
	if strings.TrimSpace(spec.Identity) == "" || strings.TrimSpace(spec.Name) == "" {
		return nil, apperr.Invalid("identity and name are required")
	}
	existing, err := s.repo.Get(ctx, spec.Identity)
	if err == nil {
		return existing, nil
	}
	if !apperr.Is(err, apperr.CodeNotFound) {
		return nil, err
	}
	st := &models.Student{
		Identity:        spec.Identity,
		Name:            spec.Name,
		Age:             spec.Age,
		DocumentID:      spec.DocumentID,
		FieldOfInterest: spec.FieldOfInterest,
		CompletedSteps:  []int{},
		SalaryPaise:     s.cfg.DefaultSalaryPaise,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Get(ctx context.Context, identity string) (*models.Student, error) {
	return s.repo.Get(ctx, identity)
}

// SelectOrg switches sponsors. Prior progress credit is forfeited: completed
// steps and the funding total reset together so the derivation invariant
// holds for the new roadmap.
func (s *service) SelectOrg(ctx context.Context, identity, orgName string) error {
	if _, err := s.orgs.GetByName(ctx, orgName); err != nil {
		return err
	}
	return s.repo.SelectOrg(ctx, identity, orgName)
}

// UpdateProgress recomputes the funding total from the org's roadmap and the
// submitted completed-step set.
func (s *service) UpdateProgress(ctx context.Context, identity, orgName string, completedSteps []int) (*ProgressResult, error) {
	org, err := s.orgs.GetByName(ctx, orgName)
	if err != nil {
		return nil, err
	}
	steps := uniqueSteps(completedSteps)
	funding := ComputeFunding(org.Roadmap, steps)
	pct := ProgressPct(len(steps), len(org.Roadmap))
	if err := s.repo.SetProgress(ctx, identity, steps, funding, pct); err != nil {
		return nil, err
	}
	return &ProgressResult{
		CompletedSteps:    steps,
		TotalFundingPaise: funding,
		ProgressPct:       pct,
		TotalSteps:        len(org.Roadmap),
	}, nil
}

// JobStatus derives the repayment picture from stored state. Querying it
// flips the student's job_placed flag: eligibility is granted on first view
// and the transition is one-way and idempotent.
func (s *service) JobStatus(ctx context.Context, identity string) (*JobStatusResult, error) {
	st, err := s.repo.Get(ctx, identity)
	if err != nil {
		return nil, err
	}

	monthly := monthlyRepayment(st.SalaryPaise, s.cfg.RateBps)
	remaining := st.TotalFundingPaise - st.RepaymentPaidPaise
	if remaining < 0 {
		remaining = 0
	}
	net := st.SalaryPaise
	if remaining > 0 {
		net -= monthly
	}

	var breakdown []FundingStep
	if st.SelectedOrg != "" {
		org, err := s.orgs.GetByName(ctx, st.SelectedOrg)
		if err == nil {
			completed := stepSet(st.CompletedSteps)
			for _, step := range org.Roadmap {
				if _, ok := completed[step.Step]; ok {
					// Org funds 100% of each completed step.
					breakdown = append(breakdown, FundingStep{
						Step:           step.Step,
						Title:          step.Title,
						OrgFundedPaise: step.EstimatedFeePaise,
					})
				}
			}
		}
	}

	if err := s.repo.MarkJobPlaced(ctx, identity); err != nil {
		return nil, err
	}

	return &JobStatusResult{
		Name:                  st.Name,
		Org:                   st.SelectedOrg,
		Field:                 st.FieldOfInterest,
		SalaryPaise:           st.SalaryPaise,
		TotalFundingPaise:     st.TotalFundingPaise,
		RepaymentPaidPaise:    st.RepaymentPaidPaise,
		RemainingDebtPaise:    remaining,
		MonthlyRepaymentPaise: monthly,
		MonthsRepaid:          st.MonthsRepaid,
		MonthsRemaining:       monthsToRepay(remaining, monthly),
		NetThisMonthPaise:     net,
		FundingBreakdown:      breakdown,
		CompletedSteps:        st.CompletedSteps,
		ProgressPct:           st.ProgressPct,
	}, nil
}

// RepayMonth records one month's installment. The final payment is clamped
// to the remaining debt so repayment never overshoots the funding received;
// once the debt is clear further calls are no-ops reporting fully repaid.
func (s *service) RepayMonth(ctx context.Context, identity string) (*RepayResult, error) {
	var res *RepayResult
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		st, err := s.repo.GetForUpdateTx(ctx, tx, identity)
		if err != nil {
			return err
		}
		remaining := st.TotalFundingPaise - st.RepaymentPaidPaise
		if remaining <= 0 {
			res = &RepayResult{FullyRepaid: true, TotalPaidPaise: st.RepaymentPaidPaise}
			return nil
		}
		monthly := monthlyRepayment(st.SalaryPaise, s.cfg.RateBps)
		actual := monthly
		if remaining < actual {
			actual = remaining
		}
		paid, _, err := s.repo.ApplyRepaymentTx(ctx, tx, identity, actual)
		if err != nil {
			return err
		}
		desc := fmt.Sprintf("Monthly fund repayment to %s (%s%% of salary)",
			orgOrDefault(st.SelectedOrg), formatBpsPct(s.cfg.RateBps))
		if err := s.ledger.AppendTx(ctx, tx, identity, models.LedgerKindDebit, actual, desc); err != nil {
			return err
		}
		metrics.RepaymentsTotal.Inc()
		res = &RepayResult{
			PaidThisMonthPaise: actual,
			TotalPaidPaise:     paid,
			RemainingDebtPaise: st.TotalFundingPaise - paid,
			FullyRepaid:        st.TotalFundingPaise-paid <= 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SubmitQuiz grades one month's answers against the field curriculum and
// stores the result under that month.
func (s *service) SubmitQuiz(ctx context.Context, identity string, month int, answers []int, taskSubmission string) (*QuizResult, error) {
	st, err := s.repo.Get(ctx, identity)
	if err != nil {
		return nil, err
	}
	months := curriculum.ForField(st.FieldOfInterest)
	var data *curriculum.Month
	for i := range months {
		if months[i].Month == month {
			data = &months[i]
			break
		}
	}
	if data == nil {
		return nil, apperr.NotFound("month " + strconv.Itoa(month) + " curriculum not found")
	}

	correct := make([]int, len(data.Quiz))
	score := 0
	for i, q := range data.Quiz {
		correct[i] = q.Answer
		if i < len(answers) && answers[i] == q.Answer {
			score++
		}
	}
	total := len(correct)
	pct := 0
	if total > 0 {
		pct = int(float64(score)/float64(total)*100 + 0.5)
	}

	result := &QuizResult{
		Month:          month,
		Topic:          data.Topic,
		Score:          score,
		Total:          total,
		PctScore:       pct,
		Passed:         pct >= quizPassPct,
		TaskSubmitted:  taskSubmission != "",
		TaskSubmission: taskSubmission,
		SubmittedAt:    time.Now().UTC(),
		CorrectAnswers: correct,
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveQuizResult(ctx, identity, month, raw); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) QuizResults(ctx context.Context, identity string) (json.RawMessage, error) {
	raw, err := s.repo.QuizResults(ctx, identity)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	return raw, nil
}

func orgOrDefault(org string) string {
	if org == "" {
		return "org"
	}
	return org
}

func formatBpsPct(bps int64) string {
	return strconv.FormatFloat(float64(bps)/100, 'f', -1, 64)
}
