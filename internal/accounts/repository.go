// Package accounts manages identity registration and profile reads for both
// job verticals. Monetary movement lives in the ledger package; this one only
// creates rows and serves profile queries.
package accounts

import (
	"context"
	"errors"
	"strings"

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

// WorkerView is an account joined with its labor-vertical profile.
type WorkerView struct {
	models.Account
	Location    string `json:"location"`
	ProblemType string `json:"problem_type"`
	PhotoURL    string `json:"photo_url"`
}

// SeekerView is an account joined with its disability-vertical profile.
type SeekerView struct {
	models.Account
	IDProof        string   `json:"id_proof"`
	Profession     string   `json:"profession"`
	DisabilityType string   `json:"disability_type"`
	Skills         []string `json:"skills"`
}

// NearbyWorker is the public shape of a worker listing. Monetary fields are
// deliberately absent.
type NearbyWorker struct {
	Identity    string `json:"identity"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	ProblemType string `json:"problem_type"`
	PhotoURL    string `json:"photo_url"`
}

// EnsureWorker registers a worker, or refreshes the mutable profile fields
// when the identity already exists. Monetary fields are never reset.
func (r *Repository) EnsureWorker(ctx context.Context, identity, name, location, problemType, photoURL string) (*WorkerView, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO accounts (identity, name)
		VALUES ($1, $2)
		ON CONFLICT (identity) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
	`, identity, name)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO worker_profiles (identity, location, problem_type, photo_url, last_seen)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (identity) DO UPDATE
		SET location = EXCLUDED.location, problem_type = EXCLUDED.problem_type,
		    photo_url = EXCLUDED.photo_url, last_seen = NOW()
	`, identity, location, problemType, photoURL)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetWorker(ctx, identity)
}

// EnsureSeeker registers a disability-vertical seeker, updating the matching
// profile on re-registration. The id proof is written once and kept.
func (r *Repository) EnsureSeeker(ctx context.Context, identity, name, idProof, profession, disabilityType string, skills []string) (*SeekerView, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO accounts (identity, name)
		VALUES ($1, $2)
		ON CONFLICT (identity) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
	`, identity, name)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO seeker_profiles (identity, id_proof, profession, disability_type, skills)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (identity) DO UPDATE
		SET profession = EXCLUDED.profession, disability_type = EXCLUDED.disability_type,
		    skills = EXCLUDED.skills
	`, identity, idProof, profession, disabilityType, skills)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetSeeker(ctx, identity)
}

const accountColumns = `a.identity, a.name, a.balance_paise, a.total_earned_paise,
	a.invested_amount_paise, a.auto_invest, a.created_at, a.updated_at`

func (r *Repository) GetAccount(ctx context.Context, identity string) (*models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts a WHERE a.identity = $1
	`, identity).Scan(&a.Identity, &a.Name, &a.BalancePaise, &a.TotalEarnedPaise,
		&a.InvestedAmountPaise, &a.AutoInvest, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("account not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetWorker(ctx context.Context, identity string) (*WorkerView, error) {
	var w WorkerView
	err := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`, w.location, w.problem_type, w.photo_url
		FROM accounts a
		JOIN worker_profiles w ON w.identity = a.identity
		WHERE a.identity = $1
	`, identity).Scan(&w.Identity, &w.Name, &w.BalancePaise, &w.TotalEarnedPaise,
		&w.InvestedAmountPaise, &w.AutoInvest, &w.CreatedAt, &w.UpdatedAt,
		&w.Location, &w.ProblemType, &w.PhotoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("worker not found")
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *Repository) GetSeeker(ctx context.Context, identity string) (*SeekerView, error) {
	var s SeekerView
	err := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`, s.id_proof, s.profession, s.disability_type, s.skills
		FROM accounts a
		JOIN seeker_profiles s ON s.identity = a.identity
		WHERE a.identity = $1
	`, identity).Scan(&s.Identity, &s.Name, &s.BalancePaise, &s.TotalEarnedPaise,
		&s.InvestedAmountPaise, &s.AutoInvest, &s.CreatedAt, &s.UpdatedAt,
		&s.IDProof, &s.Profession, &s.DisabilityType, &s.Skills)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("seeker not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// NearbyWorkers lists workers whose location contains the query area
// (case-insensitive) and, when given, whose problem type matches exactly.
// Only the city or area before the first comma is used for the match.
func (r *Repository) NearbyWorkers(ctx context.Context, location, problemType string, limit int) ([]NearbyWorker, error) {
	if limit <= 0 {
		limit = 10
	}
	area, _, _ := strings.Cut(location, ",")
	area = strings.TrimSpace(area)
	rows, err := r.pool.Query(ctx, `
		SELECT a.identity, a.name, w.location, w.problem_type, w.photo_url
		FROM accounts a
		JOIN worker_profiles w ON w.identity = a.identity
		WHERE ($1 = '' OR w.location ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR w.problem_type = $2)
		ORDER BY w.last_seen DESC
		LIMIT $3
	`, area, problemType, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]NearbyWorker, 0)
	for rows.Next() {
		var w NearbyWorker
		if err := rows.Scan(&w.Identity, &w.Name, &w.Location, &w.ProblemType, &w.PhotoURL); err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}
