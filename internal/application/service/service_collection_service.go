package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
	"github.com/motorline/dealerdesk-api/pkg/sequence"
)

// ServiceCollectionService handles the service payment ledger. Receipt
// codes (SRV0001, ...) derive from max(id)+1; gaps from out-of-band hard
// deletes are tolerated. Creating a completed entry rolls up the customer's
// pending entries: their {receipt_no, date, amount} triples are snapshotted
// onto the new entry and the source rows are flipped to completed in the
// same transaction. The snapshot is immutable from then on.
type ServiceCollectionService struct {
	serviceRepo  repository.ServiceCollectionRepository
	customerRepo repository.CustomerRepository
	modeRepo     repository.PaymentModeRepository
	receipts     sequence.Allocator
}

// NewServiceCollectionService creates a new service ledger service
func NewServiceCollectionService(
	serviceRepo repository.ServiceCollectionRepository,
	customerRepo repository.CustomerRepository,
	modeRepo repository.PaymentModeRepository,
) *ServiceCollectionService {
	return &ServiceCollectionService{
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		modeRepo:     modeRepo,
		receipts:     sequence.NewAllocator("SRV", 4),
	}
}

// CreateServiceCollectionInput represents the create service collection input
type CreateServiceCollectionInput struct {
	Date             time.Time
	TotalAmount      *float64
	ReceivedAmount   float64
	PaymentType      string
	PaymentStatus    enum.PaymentStatus
	VehicleNo        *string
	JobCardNo        *string
	CustomerID       uint
	PaymentModeID    uint
	TypeOfPaymentID  *uint
	CollectionTypeID *uint
	VehicleModelID   *uint
	EnteredByID      *uint
	Remarks          *string
}

// CreateServiceCollection records a service ledger entry. A completed entry
// absorbs the customer's pending entries as a payment-session snapshot.
func (s *ServiceCollectionService) CreateServiceCollection(ctx context.Context, input *CreateServiceCollectionInput) (*entity.ServicePaymentCollection, error) {
	if err := s.validateServiceCollection(ctx, input); err != nil {
		return nil, err
	}

	status := input.PaymentStatus
	if status == "" {
		status = enum.PaymentStatusCompleted
	}

	maxID, err := s.serviceRepo.MaxID(ctx)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	collection := &entity.ServicePaymentCollection{
		ReceiptNo:        s.receipts.NextFromID(maxID),
		Date:             date,
		TotalAmount:      input.TotalAmount,
		ReceivedAmount:   input.ReceivedAmount,
		PaymentType:      input.PaymentType,
		PaymentStatus:    status,
		VehicleNo:        input.VehicleNo,
		JobCardNo:        input.JobCardNo,
		CustomerID:       input.CustomerID,
		PaymentModeID:    input.PaymentModeID,
		TypeOfPaymentID:  input.TypeOfPaymentID,
		CollectionTypeID: input.CollectionTypeID,
		VehicleModelID:   input.VehicleModelID,
		EnteredByID:      input.EnteredByID,
		Remarks:          input.Remarks,
	}

	if status != enum.PaymentStatusCompleted {
		if err := s.serviceRepo.Create(ctx, collection); err != nil {
			return nil, err
		}
		return collection, nil
	}

	pending, err := s.serviceRepo.ListPendingByCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	sessions, pendingIDs := buildPaymentSessions(pending)
	if len(sessions) > 0 {
		payload, err := json.Marshal(sessions)
		if err != nil {
			return nil, apperror.ErrInternalServer
		}
		collection.PaymentSessions = payload
	}

	if err := s.serviceRepo.CreateWithRollup(ctx, collection, pendingIDs); err != nil {
		return nil, err
	}
	return collection, nil
}

// buildPaymentSessions snapshots pending entries into session triples and
// collects the ids to flip to completed.
func buildPaymentSessions(pending []entity.ServicePaymentCollection) ([]entity.PaymentSession, []uint) {
	sessions := make([]entity.PaymentSession, 0, len(pending))
	ids := make([]uint, 0, len(pending))
	for _, p := range pending {
		sessions = append(sessions, entity.PaymentSession{
			ReceiptNo: p.ReceiptNo,
			Date:      p.Date,
			Amount:    p.ReceivedAmount,
		})
		ids = append(ids, p.ID)
	}
	return sessions, ids
}

// GetServiceCollection retrieves a service ledger entry by ID
func (s *ServiceCollectionService) GetServiceCollection(ctx context.Context, id uint) (*entity.ServicePaymentCollection, error) {
	collection, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Service collection")
	}
	return collection, nil
}

// ListServiceCollections lists non-deleted entries, newest first
func (s *ServiceCollectionService) ListServiceCollections(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.ServicePaymentCollection], error) {
	collections, total, err := s.serviceRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(collections, pag), nil
}

// ListPendingByCustomer lists a customer's pending non-deleted entries
func (s *ServiceCollectionService) ListPendingByCustomer(ctx context.Context, customerID uint) ([]entity.ServicePaymentCollection, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return s.serviceRepo.ListPendingByCustomer(ctx, customerID)
}

// ListDeletedServiceCollections lists soft-deleted entries with the deleting user resolved
func (s *ServiceCollectionService) ListDeletedServiceCollections(ctx context.Context) ([]entity.ServicePaymentCollection, error) {
	return s.serviceRepo.ListDeleted(ctx)
}

// UpdateServiceCollectionInput represents the update service collection input
type UpdateServiceCollectionInput struct {
	ID               uint
	Date             *time.Time
	TotalAmount      *float64
	ReceivedAmount   *float64
	PaymentType      *string
	VehicleNo        *string
	JobCardNo        *string
	PaymentModeID    *uint
	TypeOfPaymentID  *uint
	CollectionTypeID *uint
	VehicleModelID   *uint
	Remarks          *string
}

// UpdateServiceCollection updates an entry. Receipt number, payment status
// and the payment-session snapshot never change through this path.
func (s *ServiceCollectionService) UpdateServiceCollection(ctx context.Context, input *UpdateServiceCollectionInput) (*entity.ServicePaymentCollection, error) {
	collection, err := s.serviceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Service collection")
	}
	if collection.IsDeleted() {
		return nil, apperror.NewConflictError("Service collection is deleted; restore it before editing")
	}

	if input.Date != nil {
		collection.Date = *input.Date
	}
	if input.TotalAmount != nil {
		collection.TotalAmount = input.TotalAmount
	}
	if input.ReceivedAmount != nil {
		if *input.ReceivedAmount <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "received_amount", Message: "Received amount must be greater than zero"},
			})
		}
		collection.ReceivedAmount = *input.ReceivedAmount
	}
	if input.PaymentType != nil {
		collection.PaymentType = *input.PaymentType
	}
	if input.VehicleNo != nil {
		collection.VehicleNo = input.VehicleNo
	}
	if input.JobCardNo != nil {
		collection.JobCardNo = input.JobCardNo
	}
	if input.PaymentModeID != nil {
		collection.PaymentModeID = *input.PaymentModeID
	}
	if input.TypeOfPaymentID != nil {
		collection.TypeOfPaymentID = input.TypeOfPaymentID
	}
	if input.CollectionTypeID != nil {
		collection.CollectionTypeID = input.CollectionTypeID
	}
	if input.VehicleModelID != nil {
		collection.VehicleModelID = input.VehicleModelID
	}
	if input.Remarks != nil {
		collection.Remarks = input.Remarks
	}

	if err := s.serviceRepo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// DeleteServiceCollection soft-deletes an entry
func (s *ServiceCollectionService) DeleteServiceCollection(ctx context.Context, id uint, deletedBy *uint) error {
	collection, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if collection == nil {
		return apperror.NewNotFoundError("Service collection")
	}
	if collection.IsDeleted() {
		return apperror.NewConflictError("Service collection is already deleted")
	}

	return s.serviceRepo.SoftDelete(ctx, id, deletedBy)
}

// RestoreServiceCollection clears a soft delete
func (s *ServiceCollectionService) RestoreServiceCollection(ctx context.Context, id uint) (*entity.ServicePaymentCollection, error) {
	collection, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Service collection")
	}
	if !collection.IsDeleted() {
		return nil, apperror.NewConflictError("Service collection is not deleted")
	}

	if err := s.serviceRepo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *ServiceCollectionService) validateServiceCollection(ctx context.Context, input *CreateServiceCollectionInput) error {
	var fieldErrors []apperror.FieldError
	if input.ReceivedAmount <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "received_amount", Message: "Received amount must be greater than zero"})
	}
	if input.PaymentStatus != "" && !input.PaymentStatus.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_status", Message: "Payment status must be completed or pending"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	mode, err := s.modeRepo.GetByID(ctx, input.PaymentModeID)
	if err != nil {
		return err
	}
	if mode == nil {
		return apperror.NewNotFoundError("Payment mode")
	}

	return nil
}
