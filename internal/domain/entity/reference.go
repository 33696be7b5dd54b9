package entity

import (
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/enum"
)

// PaymentMode is a reference registry row (Cash, Card, UPI, ...).
// In-use modes are disabled rather than deleted.
type PaymentMode struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Status    enum.RecordStatus `gorm:"size:20;not null;default:'enabled'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	TypesOfPayment []TypeOfPayment `gorm:"foreignKey:PaymentModeID" json:"-"`
}

// TableName returns the table name for the PaymentMode model
func (PaymentMode) TableName() string {
	return "payment_modes"
}

// TypeOfPayment is a finer-grained payment classification scoped to a
// single payment mode (e.g. "Credit Card" under "Card").
type TypeOfPayment struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	Name          string            `gorm:"size:100;not null" json:"name"`
	PaymentModeID uint              `gorm:"not null;index" json:"payment_mode_id"`
	Status        enum.RecordStatus `gorm:"size:20;not null;default:'enabled'" json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	PaymentMode PaymentMode `gorm:"foreignKey:PaymentModeID" json:"-"`
}

// TableName returns the table name for the TypeOfPayment model
func (TypeOfPayment) TableName() string {
	return "types_of_payment"
}

// CollectionType classifies a ledger entry (booking advance, full payment, ...).
type CollectionType struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Status    enum.RecordStatus `gorm:"size:20;not null;default:'enabled'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TableName returns the table name for the CollectionType model
func (CollectionType) TableName() string {
	return "collection_types"
}

// VehicleModel is the registry of sellable vehicle models.
type VehicleModel struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Status    enum.RecordStatus `gorm:"size:20;not null;default:'enabled'" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TableName returns the table name for the VehicleModel model
func (VehicleModel) TableName() string {
	return "vehicle_models"
}
