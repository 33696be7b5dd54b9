package repository

import (
	"context"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
)

// MenuPermissionRepository defines the interface for menu permission data access
type MenuPermissionRepository interface {
	GetByRole(ctx context.Context, role string) (*entity.MenuPermission, error)
	List(ctx context.Context) ([]entity.MenuPermission, error)
	// Upsert creates the role's row or replaces its whole tree; the unique
	// constraint on role keeps one row per role.
	Upsert(ctx context.Context, p *entity.MenuPermission) error
}
