package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	domainRepo "github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

type serviceCollectionRepository struct {
	db *gorm.DB
}

// NewServiceCollectionRepository creates a new service ledger repository
func NewServiceCollectionRepository(db *gorm.DB) domainRepo.ServiceCollectionRepository {
	return &serviceCollectionRepository{db: db}
}

func (r *serviceCollectionRepository) Create(ctx context.Context, c *entity.ServicePaymentCollection) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *serviceCollectionRepository) CreateWithRollup(ctx context.Context, c *entity.ServicePaymentCollection, pendingIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if len(pendingIDs) == 0 {
			return nil
		}
		// Only the status flag changes on the rolled-up rows; their
		// amounts, dates and receipt codes stay untouched.
		return tx.Model(&entity.ServicePaymentCollection{}).
			Where("id IN ?", pendingIDs).
			Update("payment_status", enum.PaymentStatusCompleted).Error
	})
}

func (r *serviceCollectionRepository) GetByID(ctx context.Context, id uint) (*entity.ServicePaymentCollection, error) {
	var c entity.ServicePaymentCollection
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("PaymentMode").
		Preload("TypeOfPayment").
		Preload("CollectionType").
		Preload("VehicleModel").
		Preload("EnteredBy").
		First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *serviceCollectionRepository) MaxID(ctx context.Context) (uint, error) {
	var maxID *uint
	err := r.db.WithContext(ctx).Model(&entity.ServicePaymentCollection{}).
		Select("MAX(id)").Scan(&maxID).Error
	if err != nil || maxID == nil {
		return 0, err
	}
	return *maxID, nil
}

func (r *serviceCollectionRepository) ListPendingByCustomer(ctx context.Context, customerID uint) ([]entity.ServicePaymentCollection, error) {
	var collections []entity.ServicePaymentCollection
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND payment_status = ? AND deleted_at IS NULL",
			customerID, enum.PaymentStatusPending).
		Order("id ASC").
		Find(&collections).Error
	return collections, err
}

func (r *serviceCollectionRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.ServicePaymentCollection, int64, error) {
	var collections []entity.ServicePaymentCollection
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ServicePaymentCollection{}).
		Where("deleted_at IS NULL")

	if search != "" {
		query = query.
			Joins("LEFT JOIN customers ON customers.id = service_payment_collections.customer_id").
			Where(`service_payment_collections.receipt_no ILIKE ?
				OR service_payment_collections.vehicle_no ILIKE ?
				OR service_payment_collections.job_card_no ILIKE ?
				OR customers.name ILIKE ?`,
				"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Preload("PaymentMode").
		Order("service_payment_collections.id DESC").
		Find(&collections).Error

	return collections, total, err
}

func (r *serviceCollectionRepository) ListDeleted(ctx context.Context) ([]entity.ServicePaymentCollection, error) {
	var collections []entity.ServicePaymentCollection
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL").
		Preload("Customer").
		Preload("PaymentMode").
		Preload("DeletedBy").
		Order("id DESC").
		Find(&collections).Error
	return collections, err
}

func (r *serviceCollectionRepository) ListRange(ctx context.Context, from, to time.Time) ([]entity.ServicePaymentCollection, error) {
	var collections []entity.ServicePaymentCollection
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL AND date BETWEEN ? AND ?", from, to).
		Preload("Customer").
		Preload("PaymentMode").
		Preload("VehicleModel").
		Order("id ASC").
		Find(&collections).Error
	return collections, err
}

func (r *serviceCollectionRepository) Update(ctx context.Context, c *entity.ServicePaymentCollection) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *serviceCollectionRepository) SoftDelete(ctx context.Context, id uint, deletedBy *uint) error {
	return r.db.WithContext(ctx).Model(&entity.ServicePaymentCollection{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":    time.Now(),
			"deleted_by_id": deletedBy,
		}).Error
}

func (r *serviceCollectionRepository) Restore(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entity.ServicePaymentCollection{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":    nil,
			"deleted_by_id": nil,
		}).Error
}

func (r *serviceCollectionRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	return r.countWhere(ctx, "customer_id = ?", customerID)
}

func (r *serviceCollectionRepository) CountByPaymentMode(ctx context.Context, modeID uint) (int64, error) {
	return r.countWhere(ctx, "payment_mode_id = ?", modeID)
}

func (r *serviceCollectionRepository) CountByTypeOfPayment(ctx context.Context, typeID uint) (int64, error) {
	return r.countWhere(ctx, "type_of_payment_id = ?", typeID)
}

func (r *serviceCollectionRepository) CountByCollectionType(ctx context.Context, typeID uint) (int64, error) {
	return r.countWhere(ctx, "collection_type_id = ?", typeID)
}

func (r *serviceCollectionRepository) CountByVehicleModel(ctx context.Context, modelID uint) (int64, error) {
	return r.countWhere(ctx, "vehicle_model_id = ?", modelID)
}

func (r *serviceCollectionRepository) countWhere(ctx context.Context, cond string, arg uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ServicePaymentCollection{}).
		Where(cond, arg).Count(&count).Error
	return count, err
}
