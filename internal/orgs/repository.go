// Package orgs stores sponsor organizations and their funding roadmaps.
package orgs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

// GetByName returns the full organization including its roadmap.
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Organization, error) {
	var org models.Organization
	var roadmap []byte
	err := r.pool.QueryRow(ctx, `
		SELECT name, field, description, roadmap FROM organizations WHERE name = $1
	`, name).Scan(&org.Name, &org.Field, &org.Description, &roadmap)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("organization not found")
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(roadmap, &org.Roadmap); err != nil {
		return nil, fmt.Errorf("decode roadmap for %q: %w", name, err)
	}
	return &org, nil
}

// ListByField returns the organizations sponsoring a field of study. Roadmaps
// are omitted; fetch the selected org by name for the full pipeline.
func (r *Repository) ListByField(ctx context.Context, field string) ([]*models.Organization, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, field, description FROM organizations WHERE field = $1 ORDER BY name
	`, field)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Organization
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.Name, &org.Field, &org.Description); err != nil {
			return nil, err
		}
		out = append(out, &org)
	}
	return out, rows.Err()
}

// EnsureSeed inserts the built-in sponsor catalog. Existing rows are left
// alone, so the seed is safe to run on every startup.
func (r *Repository) EnsureSeed(ctx context.Context) error {
	for _, org := range seedOrgs {
		roadmap, err := json.Marshal(org.Roadmap)
		if err != nil {
			return fmt.Errorf("encode roadmap for %q: %w", org.Name, err)
		}
		_, err = r.pool.Exec(ctx, `
			INSERT INTO organizations (name, field, description, roadmap)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (name) DO NOTHING
		`, org.Name, org.Field, org.Description, roadmap)
		if err != nil {
			return fmt.Errorf("seed organization %q: %w", org.Name, err)
		}
	}
	return nil
}
