package service

import (
	"context"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

// EnquiryService handles walk-in sales lead intake
type EnquiryService struct {
	enquiryRepo repository.EnquiryRepository
	modelRepo   repository.VehicleModelRepository
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(enquiryRepo repository.EnquiryRepository, modelRepo repository.VehicleModelRepository) *EnquiryService {
	return &EnquiryService{enquiryRepo: enquiryRepo, modelRepo: modelRepo}
}

// CreateEnquiryInput represents the create enquiry input
type CreateEnquiryInput struct {
	Name           string
	Phone          string
	VehicleModelID *uint
	Remarks        *string
	EnteredByID    *uint
}

// CreateEnquiry records a new sales lead with status "new"
func (s *EnquiryService) CreateEnquiry(ctx context.Context, input *CreateEnquiryInput) (*entity.Enquiry, error) {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Phone == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "Phone is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if input.VehicleModelID != nil {
		model, err := s.modelRepo.GetByID(ctx, *input.VehicleModelID)
		if err != nil {
			return nil, err
		}
		if model == nil {
			return nil, apperror.NewNotFoundError("Vehicle model")
		}
	}

	enquiry := &entity.Enquiry{
		Name:           input.Name,
		Phone:          input.Phone,
		VehicleModelID: input.VehicleModelID,
		Remarks:        input.Remarks,
		Status:         enum.EnquiryStatusNew,
		EnteredByID:    input.EnteredByID,
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, err
	}
	return enquiry, nil
}

// GetEnquiry retrieves an enquiry by ID
func (s *EnquiryService) GetEnquiry(ctx context.Context, id uint) (*entity.Enquiry, error) {
	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, apperror.NewNotFoundError("Enquiry")
	}
	return enquiry, nil
}

// ListEnquiries lists enquiries with pagination and optional status filter
func (s *EnquiryService) ListEnquiries(ctx context.Context, params *pagination.PaginationParams, status *enum.EnquiryStatus) (*pagination.PaginatedResult[entity.Enquiry], error) {
	if status != nil && !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown enquiry status")
	}

	enquiries, total, err := s.enquiryRepo.List(ctx, params, status)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(enquiries, pag), nil
}

// UpdateEnquiryStatus moves a lead through its follow-up lifecycle
func (s *EnquiryService) UpdateEnquiryStatus(ctx context.Context, id uint, status enum.EnquiryStatus) (*entity.Enquiry, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown enquiry status")
	}

	enquiry, err := s.enquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enquiry == nil {
		return nil, apperror.NewNotFoundError("Enquiry")
	}

	enquiry.Status = status
	if err := s.enquiryRepo.Update(ctx, enquiry); err != nil {
		return nil, err
	}
	return enquiry, nil
}
