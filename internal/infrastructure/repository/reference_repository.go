package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/motorline/dealerdesk-api/internal/domain/entity"
	"github.com/motorline/dealerdesk-api/internal/domain/enum"
	domainRepo "github.com/motorline/dealerdesk-api/internal/domain/repository"
)

type paymentModeRepository struct {
	db *gorm.DB
}

// NewPaymentModeRepository creates a new payment mode repository
func NewPaymentModeRepository(db *gorm.DB) domainRepo.PaymentModeRepository {
	return &paymentModeRepository{db: db}
}

func (r *paymentModeRepository) Create(ctx context.Context, mode *entity.PaymentMode) error {
	return r.db.WithContext(ctx).Create(mode).Error
}

func (r *paymentModeRepository) GetByID(ctx context.Context, id uint) (*entity.PaymentMode, error) {
	var mode entity.PaymentMode
	err := r.db.WithContext(ctx).First(&mode, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &mode, err
}

func (r *paymentModeRepository) List(ctx context.Context, enabledOnly bool) ([]entity.PaymentMode, error) {
	var modes []entity.PaymentMode
	query := r.db.WithContext(ctx).Model(&entity.PaymentMode{})
	if enabledOnly {
		query = query.Where("status = ?", enum.RecordStatusEnabled)
	}
	err := query.Order("name ASC").Find(&modes).Error
	return modes, err
}

func (r *paymentModeRepository) Update(ctx context.Context, mode *entity.PaymentMode) error {
	return r.db.WithContext(ctx).Save(mode).Error
}

func (r *paymentModeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.PaymentMode{}, "id = ?", id).Error
}

func (r *paymentModeRepository) CountTypes(ctx context.Context, modeID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TypeOfPayment{}).
		Where("payment_mode_id = ?", modeID).Count(&count).Error
	return count, err
}

type typeOfPaymentRepository struct {
	db *gorm.DB
}

// NewTypeOfPaymentRepository creates a new type-of-payment repository
func NewTypeOfPaymentRepository(db *gorm.DB) domainRepo.TypeOfPaymentRepository {
	return &typeOfPaymentRepository{db: db}
}

func (r *typeOfPaymentRepository) Create(ctx context.Context, t *entity.TypeOfPayment) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *typeOfPaymentRepository) GetByID(ctx context.Context, id uint) (*entity.TypeOfPayment, error) {
	var t entity.TypeOfPayment
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *typeOfPaymentRepository) List(ctx context.Context, paymentModeID *uint, enabledOnly bool) ([]entity.TypeOfPayment, error) {
	var types []entity.TypeOfPayment
	query := r.db.WithContext(ctx).Model(&entity.TypeOfPayment{})
	if paymentModeID != nil {
		query = query.Where("payment_mode_id = ?", *paymentModeID)
	}
	if enabledOnly {
		query = query.Where("status = ?", enum.RecordStatusEnabled)
	}
	err := query.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *typeOfPaymentRepository) Update(ctx context.Context, t *entity.TypeOfPayment) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *typeOfPaymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.TypeOfPayment{}, "id = ?", id).Error
}

type collectionTypeRepository struct {
	db *gorm.DB
}

// NewCollectionTypeRepository creates a new collection type repository
func NewCollectionTypeRepository(db *gorm.DB) domainRepo.CollectionTypeRepository {
	return &collectionTypeRepository{db: db}
}

func (r *collectionTypeRepository) Create(ctx context.Context, t *entity.CollectionType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *collectionTypeRepository) GetByID(ctx context.Context, id uint) (*entity.CollectionType, error) {
	var t entity.CollectionType
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &t, err
}

func (r *collectionTypeRepository) List(ctx context.Context, enabledOnly bool) ([]entity.CollectionType, error) {
	var types []entity.CollectionType
	query := r.db.WithContext(ctx).Model(&entity.CollectionType{})
	if enabledOnly {
		query = query.Where("status = ?", enum.RecordStatusEnabled)
	}
	err := query.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *collectionTypeRepository) Update(ctx context.Context, t *entity.CollectionType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *collectionTypeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.CollectionType{}, "id = ?", id).Error
}

type vehicleModelRepository struct {
	db *gorm.DB
}

// NewVehicleModelRepository creates a new vehicle model repository
func NewVehicleModelRepository(db *gorm.DB) domainRepo.VehicleModelRepository {
	return &vehicleModelRepository{db: db}
}

func (r *vehicleModelRepository) Create(ctx context.Context, m *entity.VehicleModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *vehicleModelRepository) GetByID(ctx context.Context, id uint) (*entity.VehicleModel, error) {
	var m entity.VehicleModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &m, err
}

func (r *vehicleModelRepository) List(ctx context.Context, enabledOnly bool) ([]entity.VehicleModel, error) {
	var models []entity.VehicleModel
	query := r.db.WithContext(ctx).Model(&entity.VehicleModel{})
	if enabledOnly {
		query = query.Where("status = ?", enum.RecordStatusEnabled)
	}
	err := query.Order("name ASC").Find(&models).Error
	return models, err
}

func (r *vehicleModelRepository) Update(ctx context.Context, m *entity.VehicleModel) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *vehicleModelRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.VehicleModel{}, "id = ?", id).Error
}
