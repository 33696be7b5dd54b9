package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	domainRepo "github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *gorm.DB) domainRepo.EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Create(ctx context.Context, e *entity.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *enquiryRepository) GetByID(ctx context.Context, id uint) (*entity.Enquiry, error) {
	var e entity.Enquiry
	err := r.db.WithContext(ctx).Preload("VehicleModel").First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *enquiryRepository) List(ctx context.Context, params *pagination.PaginationParams, status *enum.EnquiryStatus) ([]entity.Enquiry, int64, error) {
	var enquiries []entity.Enquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Enquiry{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("VehicleModel").
		Order("id DESC").
		Find(&enquiries).Error

	return enquiries, total, err
}

func (r *enquiryRepository) Update(ctx context.Context, e *entity.Enquiry) error {
	return r.db.WithContext(ctx).Save(e).Error
}
