package service

import (
	"context"
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
	"github.com/motorline/dealerdesk-api/pkg/sequence"
)

// CollectionService handles the sales payment ledger. Receipt codes
// (RV0001, ...) continue the sequence of the most recently created entry:
// the latest row's code is parsed and incremented, so the sequence survives
// soft deletes and never reuses a number. A corrupt latest code aborts
// creation instead of restarting the sequence.
type CollectionService struct {
	collectionRepo repository.CollectionRepository
	customerRepo   repository.CustomerRepository
	modeRepo       repository.PaymentModeRepository
	receipts       sequence.Allocator
}

// NewCollectionService creates a new sales ledger service
func NewCollectionService(
	collectionRepo repository.CollectionRepository,
	customerRepo repository.CustomerRepository,
	modeRepo repository.PaymentModeRepository,
) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		customerRepo:   customerRepo,
		modeRepo:       modeRepo,
		receipts:       sequence.NewAllocator("RV", 4),
	}
}

// CreateCollectionInput represents the create sales collection input
type CreateCollectionInput struct {
	Date             time.Time
	Amount           float64
	CustomerID       uint
	PaymentModeID    uint
	TypeOfPaymentID  *uint
	CollectionTypeID *uint
	VehicleModelID   *uint
	EnteredByID      *uint
	Remarks          *string
	Reference        *string
}

// CreateCollection allocates the next receipt number and records the entry
func (s *CollectionService) CreateCollection(ctx context.Context, input *CreateCollectionInput) (*entity.PaymentCollection, error) {
	if err := s.validateCollection(ctx, input.Amount, input.CustomerID, input.PaymentModeID); err != nil {
		return nil, err
	}

	lastCode, err := s.collectionRepo.LastReceiptNo(ctx)
	if err != nil {
		return nil, err
	}
	receiptNo, err := s.receipts.NextFromCode(lastCode)
	if err != nil {
		return nil, apperror.NewAppError(500, "Receipt sequence is corrupt: "+err.Error())
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	collection := &entity.PaymentCollection{
		ReceiptNo:        receiptNo,
		Date:             date,
		Amount:           input.Amount,
		CustomerID:       input.CustomerID,
		PaymentModeID:    input.PaymentModeID,
		TypeOfPaymentID:  input.TypeOfPaymentID,
		CollectionTypeID: input.CollectionTypeID,
		VehicleModelID:   input.VehicleModelID,
		EnteredByID:      input.EnteredByID,
		Remarks:          input.Remarks,
		Reference:        input.Reference,
	}

	// The unique index on receipt_no turns a concurrent duplicate
	// allocation into an insert error rather than a duplicated receipt.
	if err := s.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// GetCollection retrieves a sales ledger entry by ID
func (s *CollectionService) GetCollection(ctx context.Context, id uint) (*entity.PaymentCollection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	return collection, nil
}

// ListCollections lists non-deleted entries, newest first
func (s *CollectionService) ListCollections(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.PaymentCollection], error) {
	collections, total, err := s.collectionRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(collections, pag), nil
}

// ListDeletedCollections lists soft-deleted entries with the deleting user resolved
func (s *CollectionService) ListDeletedCollections(ctx context.Context) ([]entity.PaymentCollection, error) {
	return s.collectionRepo.ListDeleted(ctx)
}

// UpdateCollectionInput represents the update sales collection input
type UpdateCollectionInput struct {
	ID               uint
	Date             *time.Time
	Amount           *float64
	PaymentModeID    *uint
	TypeOfPaymentID  *uint
	CollectionTypeID *uint
	VehicleModelID   *uint
	Remarks          *string
	Reference        *string
}

// UpdateCollection updates an entry. The receipt number never changes.
func (s *CollectionService) UpdateCollection(ctx context.Context, input *UpdateCollectionInput) (*entity.PaymentCollection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	if collection.IsDeleted() {
		return nil, apperror.NewConflictError("Collection is deleted; restore it before editing")
	}

	if input.Date != nil {
		collection.Date = *input.Date
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "amount", Message: "Amount must be greater than zero"},
			})
		}
		collection.Amount = *input.Amount
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
	if input.Reference != nil {
		collection.Reference = input.Reference
	}

	if err := s.collectionRepo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collection, nil
}

// DeleteCollection soft-deletes an entry, stamping the server clock and the
// acting user. The row stays restorable and keeps its receipt number.
func (s *CollectionService) DeleteCollection(ctx context.Context, id uint, deletedBy *uint) error {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if collection == nil {
		return apperror.NewNotFoundError("Collection")
	}
	if collection.IsDeleted() {
		return apperror.NewConflictError("Collection is already deleted")
	}

	return s.collectionRepo.SoftDelete(ctx, id, deletedBy)
}

// RestoreCollection clears a soft delete, returning the entry to listings
func (s *CollectionService) RestoreCollection(ctx context.Context, id uint) (*entity.PaymentCollection, error) {
	collection, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperror.NewNotFoundError("Collection")
	}
	if !collection.IsDeleted() {
		return nil, apperror.NewConflictError("Collection is not deleted")
	}

	if err := s.collectionRepo.Restore(ctx, id); err != nil {
		return nil, err
	}
	return s.collectionRepo.GetByID(ctx, id)
}

func (s *CollectionService) validateCollection(ctx context.Context, amount float64, customerID, paymentModeID uint) error {
	if amount <= 0 {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "Amount must be greater than zero"},
		})
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	mode, err := s.modeRepo.GetByID(ctx, paymentModeID)
	if err != nil {
		return err
	}
	if mode == nil {
		return apperror.NewNotFoundError("Payment mode")
	}

	return nil
}
