package jobs

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/autoinvest"
	"github.com/equibridge/backend/internal/metrics"
	"github.com/equibridge/backend/internal/models"
)

// PostSpec is the input for posting a job in either vertical.
type PostSpec struct {
	Vertical       string
	Title          string
	Company        string
	Description    string
	RequiredSkills []string
	Profession     string
	Location       string
	ProblemType    string
	PhotoURL       string
	PayPaise       int64
	PostedBy       string
}

// Service runs the shared job state machine:
//
//	open -> in_progress -> completed -> approved   (requires_approval)
//	open -> in_progress -> completed(+payout)      (labor)
//
// Every transition is a conditional update on the job's current status, so
// concurrent accepts or retried completes resolve to exactly one winner and
// payout happens exactly once per job.
type Service interface {
	Post(ctx context.Context, spec PostSpec) (*models.Job, error)
	Accept(ctx context.Context, jobID uuid.UUID, identity string) (*models.Job, error)
	Complete(ctx context.Context, jobID uuid.UUID, identity, proofURL string) (*models.Job, error)
	Approve(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	Get(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	ListOpen(ctx context.Context, vertical string) ([]*models.Job, error)
	ListByWorker(ctx context.Context, identity string) ([]*models.Job, error)
	PendingEarnings(ctx context.Context, identity string) (int64, error)
}

// Repo is the storage contract the engine needs. The Tx transition methods
// apply compare-and-swap semantics on status and report a miss via ok=false
// without failing the transaction.
type Repo interface {
	WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
	AcceptTx(ctx context.Context, tx pgx.Tx, jobID uuid.UUID, identity string) (*models.Job, bool, error)
	CompleteTx(ctx context.Context, tx pgx.Tx, jobID uuid.UUID, identity, proofURL string) (*models.Job, bool, error)
	ApproveTx(ctx context.Context, tx pgx.Tx, jobID uuid.UUID) (*models.Job, bool, error)
	ListOpen(ctx context.Context, vertical string) ([]*models.Job, error)
	ListByWorker(ctx context.Context, identity string) ([]*models.Job, error)
	PendingEarnings(ctx context.Context, identity string) (int64, error)
}

// PayoutLedger is the slice of the ledger the engine uses for payouts.
type PayoutLedger interface {
	PayoutTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64, description string) (autoInvest bool, err error)
}

// InsertAutoInvestTxFunc enqueues an auto-invest job within the given
// transaction. Provided by main using river.Client.InsertTx; nil disables
// auto-invest entirely.
type InsertAutoInvestTxFunc func(ctx context.Context, tx pgx.Tx, args autoinvest.Args) error

type service struct {
	repo             Repo
	ledger           PayoutLedger
	insertAutoInvest InsertAutoInvestTxFunc
}

func NewService(repo Repo, ledger PayoutLedger, insertAutoInvest InsertAutoInvestTxFunc) Service {
	return &service{repo: repo, ledger: ledger, insertAutoInvest: insertAutoInvest}
}

var _ Service = (*service)(nil)

func (s *service) Post(ctx context.Context, spec PostSpec) (*models.Job, error) {
	if spec.Vertical != models.VerticalLabor && spec.Vertical != models.VerticalDisability {
		return nil, apperr.Invalid("unknown job vertical")
	}
	if strings.TrimSpace(spec.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}
	if strings.TrimSpace(spec.PostedBy) == "" {
		return nil, apperr.Invalid("posted_by is required")
	}
	if spec.PayPaise <= 0 {
		return nil, apperr.Invalid("pay must be positive")
	}
	if spec.Vertical == models.VerticalDisability && strings.TrimSpace(spec.Company) == "" {
		return nil, apperr.Invalid("company is required")
	}
	j := &models.Job{
		ID:               uuid.New(),
		Vertical:         spec.Vertical,
		RequiresApproval: spec.Vertical == models.VerticalDisability,
		Title:            spec.Title,
		Company:          spec.Company,
		Description:      spec.Description,
		RequiredSkills:   normalizeSkills(spec.RequiredSkills),
		Profession:       spec.Profession,
		Location:         spec.Location,
		ProblemType:      spec.ProblemType,
		PhotoURL:         spec.PhotoURL,
		PayPaise:         spec.PayPaise,
		Status:           models.JobStatusOpen,
		PostedBy:         spec.PostedBy,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// normalizeSkills trims each skill so matching is whitespace-insensitive.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		sk = strings.TrimSpace(sk)
		if sk != "" {
			out = append(out, sk)
		}
	}
	return out
}

func (s *service) Accept(ctx context.Context, jobID uuid.UUID, identity string) (*models.Job, error) {
	var out *models.Job
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		j, ok, err := s.repo.AcceptTx(ctx, tx, jobID, identity)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		out = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, s.transitionError(ctx, jobID, models.JobStatusOpen, "")
	}
	return out, nil
}

func (s *service) Complete(ctx context.Context, jobID uuid.UUID, identity, proofURL string) (*models.Job, error) {
	var out *models.Job
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		j, ok, err := s.repo.CompleteTx(ctx, tx, jobID, identity, proofURL)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		out = j
		if !j.RequiresApproval {
			// Labor payout rides in the same transaction as the
			// state transition: if either fails, neither is visible.
			return s.payoutTx(ctx, tx, j)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, s.transitionError(ctx, jobID, models.JobStatusInProgress, identity)
	}
	return out, nil
}

func (s *service) Approve(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	var out *models.Job
	err := s.repo.WithinTx(ctx, func(tx pgx.Tx) error {
		j, ok, err := s.repo.ApproveTx(ctx, tx, jobID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		out = j
		return s.payoutTx(ctx, tx, j)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, s.approveError(ctx, jobID)
	}
	return out, nil
}

// payoutTx credits the assigned worker's pay and, when the account has
// auto-invest on, enqueues the auto-invest job in the same transaction.
func (s *service) payoutTx(ctx context.Context, tx pgx.Tx, j *models.Job) error {
	if j.AcceptedBy == nil {
		return apperr.Conflict("job has no assigned worker")
	}
	autoInvest, err := s.ledger.PayoutTx(ctx, tx, *j.AcceptedBy, j.PayPaise, "Completed: "+j.Title)
	if err != nil {
		return err
	}
	metrics.PayoutsTotal.Inc()
	if autoInvest && s.insertAutoInvest != nil {
		return s.insertAutoInvest(ctx, tx, autoinvest.Args{Identity: *j.AcceptedBy})
	}
	return nil
}

// transitionError explains why a conditional transition matched no row:
// missing job, wrong status, or (complete on an approval-vertical job) a
// worker other than the assignee.
func (s *service) transitionError(ctx context.Context, jobID uuid.UUID, want, identity string) error {
	j, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if j.Status != want {
		if j.Status == models.JobStatusCompleted || j.Status == models.JobStatusApproved {
			return apperr.Conflict("job already processed")
		}
		return apperr.Conflict("job is not " + want)
	}
	if identity != "" && j.RequiresApproval && (j.AcceptedBy == nil || *j.AcceptedBy != identity) {
		return apperr.Conflict("job is not assigned to this worker")
	}
	return apperr.Conflict("job transition rejected")
}

func (s *service) approveError(ctx context.Context, jobID uuid.UUID) error {
	j, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if !j.RequiresApproval {
		return apperr.Conflict("job does not require approval")
	}
	if j.Status == models.JobStatusApproved {
		return apperr.Conflict("job already approved")
	}
	return apperr.Conflict("only completed jobs can be approved")
}

func (s *service) Get(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	return s.repo.GetByID(ctx, jobID)
}

func (s *service) ListOpen(ctx context.Context, vertical string) ([]*models.Job, error) {
	return s.repo.ListOpen(ctx, vertical)
}

func (s *service) ListByWorker(ctx context.Context, identity string) ([]*models.Job, error) {
	return s.repo.ListByWorker(ctx, identity)
}

// PendingEarnings sums pay of jobs a worker completed that still await
// approval.
func (s *service) PendingEarnings(ctx context.Context, identity string) (int64, error) {
	return s.repo.PendingEarnings(ctx, identity)
}
