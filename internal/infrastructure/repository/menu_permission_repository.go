package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	domainRepo "github.com/motorline/dealerdesk-api/internal/domain/repository"
)

type menuPermissionRepository struct {
	db *gorm.DB
}

// NewMenuPermissionRepository creates a new menu permission repository
func NewMenuPermissionRepository(db *gorm.DB) domainRepo.MenuPermissionRepository {
	return &menuPermissionRepository{db: db}
}

func (r *menuPermissionRepository) GetByRole(ctx context.Context, role string) (*entity.MenuPermission, error) {
	var p entity.MenuPermission
	err := r.db.WithContext(ctx).First(&p, "role = ?", role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *menuPermissionRepository) List(ctx context.Context) ([]entity.MenuPermission, error) {
	var permissions []entity.MenuPermission
	err := r.db.WithContext(ctx).Order("role ASC").Find(&permissions).Error
	return permissions, err
}

func (r *menuPermissionRepository) Upsert(ctx context.Context, p *entity.MenuPermission) error {
	// Whole-tree replace, keyed on the unique role column.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "role"}},
		DoUpdates: clause.AssignmentColumns([]string{"permissions", "updated_at"}),
	}).Create(p).Error
}
