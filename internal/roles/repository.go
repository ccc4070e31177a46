package roles

import (
	"context"
	"fmt"

	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/pkg/database"
)

// Repository reads user roles from PostgreSQL.
type Repository struct {
	pool database.Pool
}

// NewRepository creates a role repository.
func NewRepository(pool database.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListByUser returns the user's roles ordered by organization id. A user
// without roles gets an empty slice and no error.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.Role, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, organization_id, permission_level FROM roles WHERE user_id = $1 ORDER BY organization_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list roles for user %d: %w", userID, err)
	}
	defer rows.Close()

	list := []models.Role{}
	for rows.Next() {
		var (
			role  models.Role
			level string
		)
		if err := rows.Scan(&role.UserID, &role.OrganizationID, &level); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		role.PermissionLevel = models.PermissionLevel(level)
		if !role.PermissionLevel.Valid() {
			return nil, fmt.Errorf("role %d/%d: unknown permission level %q", role.UserID, role.OrganizationID, level)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}
