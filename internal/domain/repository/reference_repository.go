package repository

import (
	"context"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
)

// PaymentModeRepository defines the interface for payment mode data access
type PaymentModeRepository interface {
	Create(ctx context.Context, mode *entity.PaymentMode) error
	GetByID(ctx context.Context, id uint) (*entity.PaymentMode, error)
	List(ctx context.Context, enabledOnly bool) ([]entity.PaymentMode, error)
	Update(ctx context.Context, mode *entity.PaymentMode) error
	Delete(ctx context.Context, id uint) error
	// CountTypes reports how many type-of-payment rows belong to the mode;
	// a referenced mode must be disabled, not deleted.
	CountTypes(ctx context.Context, modeID uint) (int64, error)
}

// TypeOfPaymentRepository defines the interface for type-of-payment data access
type TypeOfPaymentRepository interface {
	Create(ctx context.Context, t *entity.TypeOfPayment) error
	GetByID(ctx context.Context, id uint) (*entity.TypeOfPayment, error)
	List(ctx context.Context, paymentModeID *uint, enabledOnly bool) ([]entity.TypeOfPayment, error)
	Update(ctx context.Context, t *entity.TypeOfPayment) error
	Delete(ctx context.Context, id uint) error
}

// CollectionTypeRepository defines the interface for collection type data access
type CollectionTypeRepository interface {
	Create(ctx context.Context, t *entity.CollectionType) error
	GetByID(ctx context.Context, id uint) (*entity.CollectionType, error)
	List(ctx context.Context, enabledOnly bool) ([]entity.CollectionType, error)
	Update(ctx context.Context, t *entity.CollectionType) error
	Delete(ctx context.Context, id uint) error
}

// VehicleModelRepository defines the interface for vehicle model data access
type VehicleModelRepository interface {
	Create(ctx context.Context, m *entity.VehicleModel) error
	GetByID(ctx context.Context, id uint) (*entity.VehicleModel, error)
	List(ctx context.Context, enabledOnly bool) ([]entity.VehicleModel, error)
	Update(ctx context.Context, m *entity.VehicleModel) error
	Delete(ctx context.Context, id uint) error
}
