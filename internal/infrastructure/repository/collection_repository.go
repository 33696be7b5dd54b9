package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	domainRepo "github.com/motorline/dealerdesk-api/internal/domain/repository"
	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new sales ledger repository
func NewCollectionRepository(db *gorm.DB) domainRepo.CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(ctx context.Context, c *entity.PaymentCollection) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *collectionRepository) GetByID(ctx context.Context, id uint) (*entity.PaymentCollection, error) {
	var c entity.PaymentCollection
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

func (r *collectionRepository) LastReceiptNo(ctx context.Context) (string, error) {
	var c entity.PaymentCollection
	err := r.db.WithContext(ctx).
		Select("receipt_no").
		Order("id DESC").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return c.ReceiptNo, err
}

func (r *collectionRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.PaymentCollection, int64, error) {
	var collections []entity.PaymentCollection
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PaymentCollection{}).
		Where("deleted_at IS NULL")

	if search != "" {
		query = query.
			Joins("LEFT JOIN customers ON customers.id = payment_collections.customer_id").
			Where("payment_collections.receipt_no ILIKE ? OR customers.name ILIKE ? OR customers.phone ILIKE ?",
				"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Customer").
		Preload("PaymentMode").
		Order("payment_collections.id DESC").
		Find(&collections).Error

	return collections, total, err
}

func (r *collectionRepository) ListDeleted(ctx context.Context) ([]entity.PaymentCollection, error) {
	var collections []entity.PaymentCollection
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL").
		Preload("Customer").
		Preload("PaymentMode").
		Preload("DeletedBy").
		Order("id DESC").
		Find(&collections).Error
	return collections, err
}

func (r *collectionRepository) ListRange(ctx context.Context, from, to time.Time) ([]entity.PaymentCollection, error) {
	var collections []entity.PaymentCollection
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL AND date BETWEEN ? AND ?", from, to).
		Preload("Customer").
		Preload("PaymentMode").
		Preload("CollectionType").
		Preload("VehicleModel").
		Order("id ASC").
		Find(&collections).Error
	return collections, err
}

func (r *collectionRepository) Update(ctx context.Context, c *entity.PaymentCollection) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *collectionRepository) SoftDelete(ctx context.Context, id uint, deletedBy *uint) error {
	return r.db.WithContext(ctx).Model(&entity.PaymentCollection{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":    time.Now(),
			"deleted_by_id": deletedBy,
		}).Error
}

func (r *collectionRepository) Restore(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entity.PaymentCollection{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at":    nil,
			"deleted_by_id": nil,
		}).Error
}

func (r *collectionRepository) AggregateByMode(ctx context.Context, from, to time.Time) ([]domainRepo.ModeAggregate, error) {
	var rows []domainRepo.ModeAggregate
	err := r.db.WithContext(ctx).
		Table("payment_modes").
		Select(`payment_modes.id AS payment_mode_id,
			payment_modes.name AS mode,
			COALESCE(SUM(payment_collections.amount), 0) AS amount,
			COUNT(payment_collections.id) AS count`).
		Joins(`LEFT JOIN payment_collections
			ON payment_collections.payment_mode_id = payment_modes.id
			AND payment_collections.deleted_at IS NULL
			AND payment_collections.date BETWEEN ? AND ?`, from, to).
		Group("payment_modes.id, payment_modes.name").
		Order("payment_modes.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *collectionRepository) CountInRange(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PaymentCollection{}).
		Where("deleted_at IS NULL AND date BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *collectionRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	return r.countWhere(ctx, "customer_id = ?", customerID)
}

func (r *collectionRepository) CountByPaymentMode(ctx context.Context, modeID uint) (int64, error) {
	return r.countWhere(ctx, "payment_mode_id = ?", modeID)
}

func (r *collectionRepository) CountByTypeOfPayment(ctx context.Context, typeID uint) (int64, error) {
	return r.countWhere(ctx, "type_of_payment_id = ?", typeID)
}

func (r *collectionRepository) CountByCollectionType(ctx context.Context, typeID uint) (int64, error) {
	return r.countWhere(ctx, "collection_type_id = ?", typeID)
}

func (r *collectionRepository) CountByVehicleModel(ctx context.Context, modelID uint) (int64, error) {
	return r.countWhere(ctx, "vehicle_model_id = ?", modelID)
}

func (r *collectionRepository) countWhere(ctx context.Context, cond string, arg uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PaymentCollection{}).
		Where(cond, arg).Count(&count).Error
	return count, err
}
