package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID             uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Longitude           float64   `gorm:"type:double precision;not null;default:0"`
	Latitude            float64   `gorm:"type:double precision;not null;default:0"`
	AutoDispatch        bool      `gorm:"not null;default:false"`
	TelegramChatID      *int64
	CompletedOrderCount int64 `gorm:"not null;default:0"`
	RewardPoints        int64 `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// RestaurantPermissionModel is the GORM-specific struct for the 'restaurant_permissions' table.
type RestaurantPermissionModel struct {
	RestaurantID    uuid.UUID `gorm:"type:uuid;primary_key"`
	CanManageMenu   bool      `gorm:"column:can_manage_menu;not null;default:false"`
	CanAcceptOrder  bool      `gorm:"column:can_accept_order;not null;default:false"`
	CanRejectOrder  bool      `gorm:"column:can_reject_order;not null;default:false"`
	CanManageOffers bool      `gorm:"column:can_manage_offers;not null;default:false"`
	CanViewReports  bool      `gorm:"column:can_view_reports;not null;default:false"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantPermissionModel) TableName() string {
	return "restaurant_permissions"
}

// PermissionColumns maps permission flag keys to their columns.
var PermissionColumns = map[string]string{
	"canManageMenu":   "can_manage_menu",
	"canAcceptOrder":  "can_accept_order",
	"canRejectOrder":  "can_reject_order",
	"canManageOffers": "can_manage_offers",
	"canViewReports":  "can_view_reports",
}
