package jobs

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/models"
)

const jobColumns = `id, vertical, requires_approval, title, company, description, required_skills,
	profession, location, problem_type, photo_url, pay_paise, status, posted_by, accepted_by,
	proof_url, created_at, accepted_at, completed_at, approved_at`

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

func (r *Repository) Create(ctx context.Context, j *models.Job) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO jobs (id, vertical, requires_approval, title, company, description, required_skills,
			profession, location, problem_type, photo_url, pay_paise, status, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`, j.ID, j.Vertical, j.RequiresApproval, j.Title, j.Company, j.Description, j.RequiredSkills,
		j.Profession, j.Location, j.ProblemType, j.PhotoURL, j.PayPaise, j.Status, j.PostedBy).Scan(&j.CreatedAt)
}

func (r *Repository) GetByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("job not found")
	}
	return j, err
}

// AcceptTx transitions open -> in_progress only if the job is still open,
// atomically claiming it for identity. ok=false means the condition did not
// hold (absent job or wrong status); the caller decides which.
func (r *Repository) AcceptTx(ctx context.Context, tx pgx.Tx, jobID uuid.UUID, identity string) (*models.Job, bool, error) {
	row := tx.QueryRow(ctx, `
		UPDATE jobs SET status = $3, accepted_by = $2, accepted_at = now()
		WHERE id = $1 AND status = $4
		RETURNING `+jobColumns, jobID, identity, models.JobStatusInProgress, models.JobStatusOpen)
	return scanTransition(row)
}

// CompleteTx transitions in_progress -> completed. Approval-vertical jobs
// additionally require the caller to be the assignee.
func (r *Repository) CompleteTx(ctx context.Context, tx pgx.Tx, jobID uuid.UUID, identity, proofURL string) (*models.Job, bool, error) {
	row := tx.QueryRow(ctx, `
		UPDATE jobs SET status = $4, completed_at = now(), proof_url = $3
		WHERE id = $1 AND status = $5 AND (requires_approval = false OR accepted_by = $2)
		RETURNING `+jobColumns, jobID, identity, proofURL, models.JobStatusCompleted, models.JobStatusInProgress)
	return scanTransition(row)
}

// ApproveTx transitions completed -> approved for approval-vertical jobs.
func (r *Repository) ApproveTx(ctx context.Context, tx pgx.Tx, jobID uuid.UUID) (*models.Job, bool, error) {
	row := tx.QueryRow(ctx, `
		UPDATE jobs SET status = $2, approved_at = now()
		WHERE id = $1 AND status = $3 AND requires_approval
		RETURNING `+jobColumns, jobID, models.JobStatusApproved, models.JobStatusCompleted)
	return scanTransition(row)
}

func (r *Repository) ListOpen(ctx context.Context, vertical string) ([]*models.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+` FROM jobs
		WHERE vertical = $1 AND status = $2 ORDER BY created_at DESC
	`, vertical, models.JobStatusOpen)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *Repository) ListByWorker(ctx context.Context, identity string) ([]*models.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+` FROM jobs
		WHERE accepted_by = $1 AND status IN ($2, $3, $4) ORDER BY created_at DESC
	`, identity, models.JobStatusInProgress, models.JobStatusCompleted, models.JobStatusApproved)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *Repository) PendingEarnings(ctx context.Context, identity string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(pay_paise), 0) FROM jobs
		WHERE accepted_by = $1 AND requires_approval AND status = $2
	`, identity, models.JobStatusCompleted).Scan(&total)
	return total, err
}

func scanTransition(row pgx.Row) (*models.Job, bool, error) {
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return j, true, nil
}

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Vertical, &j.RequiresApproval, &j.Title, &j.Company, &j.Description,
		&j.RequiredSkills, &j.Profession, &j.Location, &j.ProblemType, &j.PhotoURL, &j.PayPaise,
		&j.Status, &j.PostedBy, &j.AcceptedBy, &j.ProofURL, &j.CreatedAt, &j.AcceptedAt,
		&j.CompletedAt, &j.ApprovedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func collectJobs(rows pgx.Rows) ([]*models.Job, error) {
	defer rows.Close()
	var list []*models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, j)
	}
	return list, rows.Err()
}
