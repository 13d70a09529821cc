package student

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/equibridge/backend/internal/apperr"
	"github.com/equibridge/backend/internal/models"
)

const studentColumns = `identity, name, age, document_id, field_of_interest, selected_org,
	completed_steps, total_funding_paise, progress_pct, job_placed, salary_paise,
	repayment_paid_paise, months_repaid, quiz_results, created_at`

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

func (r *Repository) Create(ctx context.Context, st *models.Student) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO students (identity, name, age, document_id, field_of_interest, completed_steps, salary_paise)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`, st.Identity, st.Name, st.Age, st.DocumentID, st.FieldOfInterest, st.CompletedSteps, st.SalaryPaise).Scan(&st.CreatedAt)
}

func (r *Repository) Get(ctx context.Context, identity string) (*models.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE identity = $1`, identity))
}

// GetForUpdateTx locks the student row so the repayment's read-clamp-write
// sequence cannot race a concurrent repayment.
func (r *Repository) GetForUpdateTx(ctx context.Context, tx pgx.Tx, identity string) (*models.Student, error) {
	return scanStudent(tx.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE identity = $1 FOR UPDATE`, identity))
}

// SelectOrg points the student at a new sponsor and wipes prior progress.
func (r *Repository) SelectOrg(ctx context.Context, identity, orgName string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE students
		SET selected_org = $2, completed_steps = '{}', total_funding_paise = 0, progress_pct = 0
		WHERE identity = $1
	`, identity, orgName)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("student not found")
	}
	return nil
}

func (r *Repository) SetProgress(ctx context.Context, identity string, steps []int, fundingPaise int64, pct int) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE students SET completed_steps = $2, total_funding_paise = $3, progress_pct = $4
		WHERE identity = $1
	`, identity, steps, fundingPaise, pct)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("student not found")
	}
	return nil
}

// MarkJobPlaced is the one-way flag transition; already-placed rows are
// left untouched.
func (r *Repository) MarkJobPlaced(ctx context.Context, identity string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE students SET job_placed = TRUE WHERE identity = $1 AND job_placed = FALSE
	`, identity)
	return err
}

// ApplyRepaymentTx increments the paid total and month counter atomically.
// Call after GetForUpdateTx in the same transaction.
func (r *Repository) ApplyRepaymentTx(ctx context.Context, tx pgx.Tx, identity string, amountPaise int64) (int64, int, error) {
	var paid int64
	var months int
	err := tx.QueryRow(ctx, `
		UPDATE students
		SET repayment_paid_paise = repayment_paid_paise + $2, months_repaid = months_repaid + 1
		WHERE identity = $1
		RETURNING repayment_paid_paise, months_repaid
	`, identity, amountPaise).Scan(&paid, &months)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, apperr.NotFound("student not found")
	}
	return paid, months, err
}

func (r *Repository) SaveQuizResult(ctx context.Context, identity string, month int, result []byte) error {
	key := "month_" + strconv.Itoa(month)
	tag, err := r.pool.Exec(ctx, `
		UPDATE students
		SET quiz_results = jsonb_set(COALESCE(quiz_results, '{}'::jsonb), ARRAY[$2], $3::jsonb)
		WHERE identity = $1
	`, identity, key, result)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("student not found")
	}
	return nil
}

func (r *Repository) QuizResults(ctx context.Context, identity string) ([]byte, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(quiz_results, '{}'::jsonb) FROM students WHERE identity = $1`, identity).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("student not found")
	}
	return raw, err
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var st models.Student
	var quiz []byte
	err := row.Scan(&st.Identity, &st.Name, &st.Age, &st.DocumentID, &st.FieldOfInterest, &st.SelectedOrg,
		&st.CompletedSteps, &st.TotalFundingPaise, &st.ProgressPct, &st.JobPlaced, &st.SalaryPaise,
		&st.RepaymentPaidPaise, &st.MonthsRepaid, &quiz, &st.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("student not found")
	}
	if err != nil {
		return nil, err
	}
	st.QuizResults = quiz
	return &st, nil
}
