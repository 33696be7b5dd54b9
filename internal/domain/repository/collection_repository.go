package repository

import (
	"context"
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

// LedgerRefCounts reports how many ledger rows reference each kind of
// master-data row. Used by the referential delete guards.
type LedgerRefCounts interface {
	CountByCustomer(ctx context.Context, customerID uint) (int64, error)
	CountByPaymentMode(ctx context.Context, modeID uint) (int64, error)
	CountByTypeOfPayment(ctx context.Context, typeID uint) (int64, error)
	CountByCollectionType(ctx context.Context, typeID uint) (int64, error)
	CountByVehicleModel(ctx context.Context, modelID uint) (int64, error)
}

// ModeAggregate is one dashboard row: amount and entry count per payment mode.
type ModeAggregate struct {
	PaymentModeID uint    `json:"payment_mode_id"`
	Mode          string  `json:"mode"`
	Amount        float64 `json:"amount"`
	Count         int64   `json:"count"`
}

// CollectionRepository defines the interface for sales ledger data access.
// Listing order is id descending throughout; the receipt allocator derives
// from the same ordering so the two cannot diverge.
type CollectionRepository interface {
	LedgerRefCounts

	Create(ctx context.Context, c *entity.PaymentCollection) error
	GetByID(ctx context.Context, id uint) (*entity.PaymentCollection, error)
	// LastReceiptNo returns the receipt code of the latest row by id,
	// soft-deleted rows included, or "" when the ledger is empty.
	LastReceiptNo(ctx context.Context) (string, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.PaymentCollection, int64, error)
	ListDeleted(ctx context.Context) ([]entity.PaymentCollection, error)
	ListRange(ctx context.Context, from, to time.Time) ([]entity.PaymentCollection, error)
	Update(ctx context.Context, c *entity.PaymentCollection) error
	SoftDelete(ctx context.Context, id uint, deletedBy *uint) error
	Restore(ctx context.Context, id uint) error
	// AggregateByMode computes the dashboard rows for the inclusive range
	// with a single grouped query over non-deleted entries.
	AggregateByMode(ctx context.Context, from, to time.Time) ([]ModeAggregate, error)
	CountInRange(ctx context.Context, from, to time.Time) (int64, error)
}
