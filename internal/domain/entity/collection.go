package entity

import (
	"time"
)

// PaymentCollection is a sales ledger entry. ReceiptNo (RV0001, ...) is
// allocated by parsing the numeric suffix of the most recently created
// receipt code and incrementing, never from the row id. The unique index
// turns a concurrent duplicate allocation into an insert error instead of
// a silently duplicated receipt.
type PaymentCollection struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	ReceiptNo        string     `gorm:"size:20;uniqueIndex;not null" json:"receipt_no"`
	Date             time.Time  `gorm:"not null;index" json:"date"`
	Amount           float64    `gorm:"not null" json:"amount"`
	CustomerID       uint       `gorm:"not null;index" json:"customer_id"`
	PaymentModeID    uint       `gorm:"not null;index" json:"payment_mode_id"`
	TypeOfPaymentID  *uint      `json:"type_of_payment_id,omitempty"`
	CollectionTypeID *uint      `json:"collection_type_id,omitempty"`
	VehicleModelID   *uint      `json:"vehicle_model_id,omitempty"`
	EnteredByID      *uint      `json:"entered_by_id,omitempty"`
	Remarks          *string    `gorm:"type:text" json:"remarks,omitempty"`
	Reference        *string    `gorm:"size:255" json:"reference,omitempty"`
	DeletedAt        *time.Time `gorm:"index" json:"deleted_at,omitempty"`
	DeletedByID      *uint      `json:"deleted_by_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Customer       Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PaymentMode    PaymentMode     `gorm:"foreignKey:PaymentModeID" json:"payment_mode,omitempty"`
	TypeOfPayment  *TypeOfPayment  `gorm:"foreignKey:TypeOfPaymentID" json:"type_of_payment,omitempty"`
	CollectionType *CollectionType `gorm:"foreignKey:CollectionTypeID" json:"collection_type,omitempty"`
	VehicleModel   *VehicleModel   `gorm:"foreignKey:VehicleModelID" json:"vehicle_model,omitempty"`
	EnteredBy      *User           `gorm:"foreignKey:EnteredByID" json:"entered_by,omitempty"`
	DeletedBy      *User           `gorm:"foreignKey:DeletedByID" json:"deleted_by,omitempty"`
}

// TableName returns the table name for the PaymentCollection model
func (PaymentCollection) TableName() string {
	return "payment_collections"
}

// IsDeleted reports whether the entry is soft-deleted.
func (p *PaymentCollection) IsDeleted() bool {
	return p.DeletedAt != nil
}
