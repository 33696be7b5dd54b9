package entity

import (
	"time"

	"gorm.io/datatypes"

	"github.com/motorline/dealerdesk-api/internal/domain/enum"
)

// PaymentSession is one element of the snapshot a completed service entry
// keeps of the pending entries it rolled up. Captured once at completion
// time; later mutation of the source rows never rewrites the snapshot.
type PaymentSession struct {
	ReceiptNo string    `json:"receipt_no"`
	Date      time.Time `json:"date"`
	Amount    float64   `json:"amount"`
}

// ServicePaymentCollection is a service ledger entry. ReceiptNo (SRV0001,
// ...) derives from max(id)+1, a deliberately simpler scheme than the
// sales ledger; hard-deleted rows may therefore leave gaps in the numbering.
type ServicePaymentCollection struct {
	ID               uint               `gorm:"primaryKey" json:"id"`
	ReceiptNo        string             `gorm:"size:20;uniqueIndex;not null" json:"receipt_no"`
	Date             time.Time          `gorm:"not null;index" json:"date"`
	TotalAmount      *float64           `json:"total_amount,omitempty"`
	ReceivedAmount   float64            `gorm:"not null" json:"received_amount"`
	PaymentType      string             `gorm:"size:100" json:"payment_type"`
	PaymentStatus    enum.PaymentStatus `gorm:"size:20;not null;default:'completed';index" json:"payment_status"`
	VehicleNo        *string            `gorm:"size:50" json:"vehicle_no,omitempty"`
	JobCardNo        *string            `gorm:"size:50" json:"job_card_no,omitempty"`
	CustomerID       uint               `gorm:"not null;index" json:"customer_id"`
	PaymentModeID    uint               `gorm:"not null;index" json:"payment_mode_id"`
	TypeOfPaymentID  *uint              `json:"type_of_payment_id,omitempty"`
	CollectionTypeID *uint              `json:"collection_type_id,omitempty"`
	VehicleModelID   *uint              `json:"vehicle_model_id,omitempty"`
	EnteredByID      *uint              `json:"entered_by_id,omitempty"`
	Remarks          *string            `gorm:"type:text" json:"remarks,omitempty"`
	PaymentSessions  datatypes.JSON     `gorm:"type:jsonb" json:"payment_sessions,omitempty"`
	DeletedAt        *time.Time         `gorm:"index" json:"deleted_at,omitempty"`
	DeletedByID      *uint              `json:"deleted_by_id,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`

	// Relationships
	Customer       Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PaymentMode    PaymentMode     `gorm:"foreignKey:PaymentModeID" json:"payment_mode,omitempty"`
	TypeOfPayment  *TypeOfPayment  `gorm:"foreignKey:TypeOfPaymentID" json:"type_of_payment,omitempty"`
	CollectionType *CollectionType `gorm:"foreignKey:CollectionTypeID" json:"collection_type,omitempty"`
	VehicleModel   *VehicleModel   `gorm:"foreignKey:VehicleModelID" json:"vehicle_model,omitempty"`
	EnteredBy      *User           `gorm:"foreignKey:EnteredByID" json:"entered_by,omitempty"`
	DeletedBy      *User           `gorm:"foreignKey:DeletedByID" json:"deleted_by,omitempty"`
}

// TableName returns the table name for the ServicePaymentCollection model
func (ServicePaymentCollection) TableName() string {
	return "service_payment_collections"
}

// IsDeleted reports whether the entry is soft-deleted.
func (s *ServicePaymentCollection) IsDeleted() bool {
	return s.DeletedAt != nil
}
