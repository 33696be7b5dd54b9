package repository

import (
	"context"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

// EnquiryRepository defines the interface for enquiry data access
type EnquiryRepository interface {
	Create(ctx context.Context, e *entity.Enquiry) error
	GetByID(ctx context.Context, id uint) (*entity.Enquiry, error)
	List(ctx context.Context, params *pagination.PaginationParams, status *enum.EnquiryStatus) ([]entity.Enquiry, int64, error)
	Update(ctx context.Context, e *entity.Enquiry) error
}
