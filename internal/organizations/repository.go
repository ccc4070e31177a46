package organizations

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/pkg/database"
)

// ErrNotFound is returned when no organization has the requested id.
var ErrNotFound = errors.New("organization not found")

const selectOrganizations = `SELECT o.id, o.name, COALESCE(o.category, '') FROM organizations o`

// Repository reads organizations.
type Repository struct {
	pool database.Pool
}

// NewRepository creates an organizations repository.
func NewRepository(pool database.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns every organization ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Organization, error) {
	return r.list(ctx, selectOrganizations+` ORDER BY o.id`)
}

// ListForUser returns the organizations the user holds a role in, ordered by id.
func (r *Repository) ListForUser(ctx context.Context, userID int64) ([]models.Organization, error) {
	const q = selectOrganizations + ` JOIN roles r ON r.organization_id = o.id WHERE r.user_id = $1 ORDER BY o.id`
	return r.list(ctx, q, userID)
}

// GetByID returns an organization by id, or ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	var (
		org      models.Organization
		category string
	)
	err := r.pool.QueryRow(ctx, selectOrganizations+` WHERE o.id = $1`, id).Scan(&org.ID, &org.Name, &category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get organization %d: %w", id, err)
	}
	org.Category = models.Category(category)
	return &org, nil
}

func (r *Repository) list(ctx context.Context, sql string, args ...any) ([]models.Organization, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var list []models.Organization
	for rows.Next() {
		var (
			org      models.Organization
			category string
		)
		if err := rows.Scan(&org.ID, &org.Name, &category); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		org.Category = models.Category(category)
		list = append(list, org)
	}
	return list, rows.Err()
}
