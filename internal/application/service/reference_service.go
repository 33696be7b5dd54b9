package service

import (
	"context"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	"github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/apperror"
)

// ReferenceService handles the four master-data registries. Each registry
// supports create, list, rename, enable/disable and guarded delete: a row
// referenced by either ledger (or, for payment modes, by types of payment)
// must be disabled instead of deleted.
type ReferenceService struct {
	modeRepo       repository.PaymentModeRepository
	typeRepo       repository.TypeOfPaymentRepository
	collectionRepo repository.CollectionTypeRepository
	modelRepo      repository.VehicleModelRepository
	salesLedger    repository.LedgerRefCounts
	serviceLedger  repository.LedgerRefCounts
}

// NewReferenceService creates a new reference registry service
func NewReferenceService(
	modeRepo repository.PaymentModeRepository,
	typeRepo repository.TypeOfPaymentRepository,
	collectionRepo repository.CollectionTypeRepository,
	modelRepo repository.VehicleModelRepository,
	salesLedger repository.LedgerRefCounts,
	serviceLedger repository.LedgerRefCounts,
) *ReferenceService {
	return &ReferenceService{
		modeRepo:       modeRepo,
		typeRepo:       typeRepo,
		collectionRepo: collectionRepo,
		modelRepo:      modelRepo,
		salesLedger:    salesLedger,
		serviceLedger:  serviceLedger,
	}
}

func validateRegistryName(name string) error {
	if name == "" {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}
	return nil
}

func validateStatus(status enum.RecordStatus) error {
	if !status.IsValid() {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "status", Message: "Status must be enabled or disabled"},
		})
	}
	return nil
}

// --- Payment modes ---

// CreatePaymentMode creates a payment mode
func (s *ReferenceService) CreatePaymentMode(ctx context.Context, name string) (*entity.PaymentMode, error) {
	if err := validateRegistryName(name); err != nil {
		return nil, err
	}
	mode := &entity.PaymentMode{Name: name, Status: enum.RecordStatusEnabled}
	if err := s.modeRepo.Create(ctx, mode); err != nil {
		return nil, err
	}
	return mode, nil
}

// ListPaymentModes lists payment modes, optionally only enabled ones
func (s *ReferenceService) ListPaymentModes(ctx context.Context, enabledOnly bool) ([]entity.PaymentMode, error) {
	return s.modeRepo.List(ctx, enabledOnly)
}

// UpdatePaymentMode renames a payment mode and/or flips its status
func (s *ReferenceService) UpdatePaymentMode(ctx context.Context, id uint, name *string, status *enum.RecordStatus) (*entity.PaymentMode, error) {
	mode, err := s.modeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mode == nil {
		return nil, apperror.NewNotFoundError("Payment mode")
	}
	if name != nil {
		if err := validateRegistryName(*name); err != nil {
			return nil, err
		}
		mode.Name = *name
	}
	if status != nil {
		if err := validateStatus(*status); err != nil {
			return nil, err
		}
		mode.Status = *status
	}
	if err := s.modeRepo.Update(ctx, mode); err != nil {
		return nil, err
	}
	return mode, nil
}

// DeletePaymentMode deletes a payment mode unless ledger entries or
// types of payment still reference it
func (s *ReferenceService) DeletePaymentMode(ctx context.Context, id uint) error {
	mode, err := s.modeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mode == nil {
		return apperror.NewNotFoundError("Payment mode")
	}

	typeCount, err := s.modeRepo.CountTypes(ctx, id)
	if err != nil {
		return err
	}
	if typeCount > 0 {
		return apperror.NewConflictError("Payment mode has types of payment and cannot be deleted")
	}

	referenced, err := s.ledgerReferences(ctx, func(ctx context.Context, ledger repository.LedgerRefCounts) (int64, error) {
		return ledger.CountByPaymentMode(ctx, id)
	})
	if err != nil {
		return err
	}
	if referenced {
		return apperror.NewConflictError("Payment mode is used by payment collections and cannot be deleted")
	}

	return s.modeRepo.Delete(ctx, id)
}

// --- Types of payment ---

// CreateTypeOfPayment creates a type of payment under a payment mode
func (s *ReferenceService) CreateTypeOfPayment(ctx context.Context, name string, paymentModeID uint) (*entity.TypeOfPayment, error) {
	if err := validateRegistryName(name); err != nil {
		return nil, err
	}
	mode, err := s.modeRepo.GetByID(ctx, paymentModeID)
	if err != nil {
		return nil, err
	}
	if mode == nil {
		return nil, apperror.NewNotFoundError("Payment mode")
	}
	t := &entity.TypeOfPayment{Name: name, PaymentModeID: paymentModeID, Status: enum.RecordStatusEnabled}
	if err := s.typeRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTypesOfPayment lists types of payment, optionally scoped to one mode
func (s *ReferenceService) ListTypesOfPayment(ctx context.Context, paymentModeID *uint, enabledOnly bool) ([]entity.TypeOfPayment, error) {
	return s.typeRepo.List(ctx, paymentModeID, enabledOnly)
}

// UpdateTypeOfPayment renames a type of payment and/or flips its status
func (s *ReferenceService) UpdateTypeOfPayment(ctx context.Context, id uint, name *string, status *enum.RecordStatus) (*entity.TypeOfPayment, error) {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NewNotFoundError("Type of payment")
	}
	if name != nil {
		if err := validateRegistryName(*name); err != nil {
			return nil, err
		}
		t.Name = *name
	}
	if status != nil {
		if err := validateStatus(*status); err != nil {
			return nil, err
		}
		t.Status = *status
	}
	if err := s.typeRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTypeOfPayment deletes a type of payment unless ledger entries reference it
func (s *ReferenceService) DeleteTypeOfPayment(ctx context.Context, id uint) error {
	t, err := s.typeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return apperror.NewNotFoundError("Type of payment")
	}

	referenced, err := s.ledgerReferences(ctx, func(ctx context.Context, ledger repository.LedgerRefCounts) (int64, error) {
		return ledger.CountByTypeOfPayment(ctx, id)
	})
	if err != nil {
		return err
	}
	if referenced {
		return apperror.NewConflictError("Type of payment is used by payment collections and cannot be deleted")
	}

	return s.typeRepo.Delete(ctx, id)
}

// --- Collection types ---

// CreateCollectionType creates a collection type
func (s *ReferenceService) CreateCollectionType(ctx context.Context, name string) (*entity.CollectionType, error) {
	if err := validateRegistryName(name); err != nil {
		return nil, err
	}
	t := &entity.CollectionType{Name: name, Status: enum.RecordStatusEnabled}
	if err := s.collectionRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListCollectionTypes lists collection types, optionally only enabled ones
func (s *ReferenceService) ListCollectionTypes(ctx context.Context, enabledOnly bool) ([]entity.CollectionType, error) {
	return s.collectionRepo.List(ctx, enabledOnly)
}

// UpdateCollectionType renames a collection type and/or flips its status
func (s *ReferenceService) UpdateCollectionType(ctx context.Context, id uint, name *string, status *enum.RecordStatus) (*entity.CollectionType, error) {
	t, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NewNotFoundError("Collection type")
	}
	if name != nil {
		if err := validateRegistryName(*name); err != nil {
			return nil, err
		}
		t.Name = *name
	}
	if status != nil {
		if err := validateStatus(*status); err != nil {
			return nil, err
		}
		t.Status = *status
	}
	if err := s.collectionRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteCollectionType deletes a collection type unless ledger entries reference it
func (s *ReferenceService) DeleteCollectionType(ctx context.Context, id uint) error {
	t, err := s.collectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return apperror.NewNotFoundError("Collection type")
	}

	referenced, err := s.ledgerReferences(ctx, func(ctx context.Context, ledger repository.LedgerRefCounts) (int64, error) {
		return ledger.CountByCollectionType(ctx, id)
	})
	if err != nil {
		return err
	}
	if referenced {
		return apperror.NewConflictError("Collection type is used by payment collections and cannot be deleted")
	}

	return s.collectionRepo.Delete(ctx, id)
}

// --- Vehicle models ---

// CreateVehicleModel creates a vehicle model
func (s *ReferenceService) CreateVehicleModel(ctx context.Context, name string) (*entity.VehicleModel, error) {
	if err := validateRegistryName(name); err != nil {
		return nil, err
	}
	m := &entity.VehicleModel{Name: name, Status: enum.RecordStatusEnabled}
	if err := s.modelRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListVehicleModels lists vehicle models, optionally only enabled ones
func (s *ReferenceService) ListVehicleModels(ctx context.Context, enabledOnly bool) ([]entity.VehicleModel, error) {
	return s.modelRepo.List(ctx, enabledOnly)
}

// UpdateVehicleModel renames a vehicle model and/or flips its status
func (s *ReferenceService) UpdateVehicleModel(ctx context.Context, id uint, name *string, status *enum.RecordStatus) (*entity.VehicleModel, error) {
	m, err := s.modelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, apperror.NewNotFoundError("Vehicle model")
	}
	if name != nil {
		if err := validateRegistryName(*name); err != nil {
			return nil, err
		}
		m.Name = *name
	}
	if status != nil {
		if err := validateStatus(*status); err != nil {
			return nil, err
		}
		m.Status = *status
	}
	if err := s.modelRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteVehicleModel deletes a vehicle model unless ledger entries reference it
func (s *ReferenceService) DeleteVehicleModel(ctx context.Context, id uint) error {
	m, err := s.modelRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return apperror.NewNotFoundError("Vehicle model")
	}

	referenced, err := s.ledgerReferences(ctx, func(ctx context.Context, ledger repository.LedgerRefCounts) (int64, error) {
		return ledger.CountByVehicleModel(ctx, id)
	})
	if err != nil {
		return err
	}
	if referenced {
		return apperror.NewConflictError("Vehicle model is used by payment collections and cannot be deleted")
	}

	return s.modelRepo.Delete(ctx, id)
}

// ledgerReferences reports whether either ledger holds a row counted by fn.
func (s *ReferenceService) ledgerReferences(ctx context.Context, fn func(context.Context, repository.LedgerRefCounts) (int64, error)) (bool, error) {
	for _, ledger := range []repository.LedgerRefCounts{s.salesLedger, s.serviceLedger} {
		count, err := fn(ctx, ledger)
		if err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
