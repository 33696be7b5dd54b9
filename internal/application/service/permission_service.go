package service

import (
	"context"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
	"github.com/motorline/dealerdesk-api/pkg/permission"
)

// PermissionService manages the per-role menu permission trees.
type PermissionService struct {
	permissionRepo repository.MenuPermissionRepository
}

// NewPermissionService creates a new permission service
func NewPermissionService(permissionRepo repository.MenuPermissionRepository) *PermissionService {
	return &PermissionService{permissionRepo: permissionRepo}
}

// RolePermissions pairs a role with its decoded tree
type RolePermissions struct {
	Role        string          `json:"role"`
	Permissions permission.Tree `json:"permissions"`
}

// GetPermissions returns a role's tree. An unknown role gets an empty tree,
// which denies every path.
func (s *PermissionService) GetPermissions(ctx context.Context, role string) (*RolePermissions, error) {
	if role == "" {
		return nil, apperror.NewBadRequestError("Role is required")
	}

	row, err := s.permissionRepo.GetByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return &RolePermissions{Role: role, Permissions: permission.Tree{}}, nil
	}

	tree, err := permission.Decode(row.Permissions)
	if err != nil {
		return nil, apperror.NewAppError(500, "Stored permission tree is corrupt")
	}
	return &RolePermissions{Role: role, Permissions: tree}, nil
}

// ListPermissions returns every role's tree
func (s *PermissionService) ListPermissions(ctx context.Context) ([]RolePermissions, error) {
	rows, err := s.permissionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]RolePermissions, 0, len(rows))
	for _, row := range rows {
		tree, err := permission.Decode(row.Permissions)
		if err != nil {
			return nil, apperror.NewAppError(500, "Stored permission tree is corrupt")
		}
		result = append(result, RolePermissions{Role: row.Role, Permissions: tree})
	}
	return result, nil
}

// UpsertPermissions replaces a role's whole tree
func (s *PermissionService) UpsertPermissions(ctx context.Context, role string, tree permission.Tree) (*RolePermissions, error) {
	if role == "" {
		return nil, apperror.NewBadRequestError("Role is required")
	}

	payload, err := tree.Encode()
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid permission tree")
	}

	if err := s.permissionRepo.Upsert(ctx, &entity.MenuPermission{Role: role, Permissions: payload}); err != nil {
		return nil, err
	}
	return &RolePermissions{Role: role, Permissions: tree}, nil
}

// Allows reports whether the role's tree grants a dotted permission path.
// The admin role always passes.
func (s *PermissionService) Allows(ctx context.Context, role, path string) (bool, error) {
	if role == "admin" {
		return true, nil
	}

	row, err := s.permissionRepo.GetByRole(ctx, role)
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, nil
	}

	tree, err := permission.Decode(row.Permissions)
	if err != nil {
		return false, err
	}
	return tree.Allows(path), nil
}
