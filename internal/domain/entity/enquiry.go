package entity

import (
	"time"

	"github.com/motorline/dealerdesk-api/internal/domain/enum"
)

// Enquiry is a sales lead record, independent of the payment flow.
type Enquiry struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	Name           string             `gorm:"size:255;not null" json:"name"`
	Phone          string             `gorm:"size:20;not null" json:"phone"`
	VehicleModelID *uint              `json:"vehicle_model_id,omitempty"`
	Remarks        *string            `gorm:"type:text" json:"remarks,omitempty"`
	Status         enum.EnquiryStatus `gorm:"size:20;not null;default:'new'" json:"status"`
	EnteredByID    *uint              `json:"entered_by_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	VehicleModel *VehicleModel `gorm:"foreignKey:VehicleModelID" json:"vehicle_model,omitempty"`
	EnteredBy    *User         `gorm:"foreignKey:EnteredByID" json:"entered_by,omitempty"`
}

// TableName returns the table name for the Enquiry model
func (Enquiry) TableName() string {
	return "enquiries"
}
