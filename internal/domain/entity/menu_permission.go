package entity

import (
	"time"

	"gorm.io/datatypes"
)

// MenuPermission holds the nested permission tree for one role. The tree
// is stored whole and replaced whole on upsert; the unique index on Role
// enforces the single-row-per-role invariant.
type MenuPermission struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Role        string         `gorm:"size:50;uniqueIndex;not null" json:"role"`
	Permissions datatypes.JSON `gorm:"type:jsonb" json:"permissions"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TableName returns the table name for the MenuPermission model
func (MenuPermission) TableName() string {
	return "menu_permissions"
}
