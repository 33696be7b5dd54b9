package repository

import (
	"context"
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

// ServiceCollectionRepository defines the interface for service ledger data access
type ServiceCollectionRepository interface {
	LedgerRefCounts

	Create(ctx context.Context, c *entity.ServicePaymentCollection) error
	// CreateWithRollup inserts the entry and flips the given pending rows
	// to completed in a single transaction, so a reader can never observe
	// the completed entry without its snapshot's source rows updated.
	CreateWithRollup(ctx context.Context, c *entity.ServicePaymentCollection, pendingIDs []uint) error
	GetByID(ctx context.Context, id uint) (*entity.ServicePaymentCollection, error)
	// MaxID returns the highest existing row id, 0 when the ledger is empty.
	// The service receipt code derives from it, so out-of-band hard deletes
	// may leave gaps in the numbering.
	MaxID(ctx context.Context) (uint, error)
	ListPendingByCustomer(ctx context.Context, customerID uint) ([]entity.ServicePaymentCollection, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.ServicePaymentCollection, int64, error)
	ListDeleted(ctx context.Context) ([]entity.ServicePaymentCollection, error)
	ListRange(ctx context.Context, from, to time.Time) ([]entity.ServicePaymentCollection, error)
	Update(ctx context.Context, c *entity.ServicePaymentCollection) error
	SoftDelete(ctx context.Context, id uint, deletedBy *uint) error
	Restore(ctx context.Context, id uint) error
}
