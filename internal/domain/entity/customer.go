package entity

import (
	"time"
)

// Customer represents a dealership customer.
// CustCode is the externally visible sequential identifier (CUST001, ...),
// derived from the highest existing row id at creation time.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CustCode  string    `gorm:"size:20;uniqueIndex;not null" json:"cust_code"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:20;index;not null" json:"phone"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	Status    string    `gorm:"size:50;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Collections        []PaymentCollection        `gorm:"foreignKey:CustomerID" json:"-"`
	ServiceCollections []ServicePaymentCollection `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
