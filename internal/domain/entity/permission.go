package entity

import (
	"time"

	"github.com/google/uuid"
)

// Permission flag keys as exchanged with admins.
const (
	PermissionCanManageMenu   = "canManageMenu"
	PermissionCanAcceptOrder  = "canAcceptOrder"
	PermissionCanRejectOrder  = "canRejectOrder"
	PermissionCanManageOffers = "canManageOffers"
	PermissionCanViewReports  = "canViewReports"
)

// PermissionKeys lists the recognised permission flags.
var PermissionKeys = []string{
	PermissionCanManageMenu,
	PermissionCanAcceptOrder,
	PermissionCanRejectOrder,
	PermissionCanManageOffers,
	PermissionCanViewReports,
}

// IsPermissionKey reports whether key names a recognised permission flag.
func IsPermissionKey(key string) bool {
	for _, k := range PermissionKeys {
		if k == key {
			return true
		}
	}

	return false
}

// RestaurantPermission holds the per-restaurant capability flags. All flags default to false.
type RestaurantPermission struct {
	RestaurantID    uuid.UUID `json:"restaurant_id"`
	CanManageMenu   bool      `json:"canManageMenu"`
	CanAcceptOrder  bool      `json:"canAcceptOrder"`
	CanRejectOrder  bool      `json:"canRejectOrder"`
	CanManageOffers bool      `json:"canManageOffers"`
	CanViewReports  bool      `json:"canViewReports"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultPermission returns the all-false permission set for a restaurant.
func DefaultPermission(restaurantID uuid.UUID) *RestaurantPermission {
	return &RestaurantPermission{RestaurantID: restaurantID}
}

// Apply sets the given flags; unknown keys are ignored.
func (p *RestaurantPermission) Apply(flags map[string]bool) {
	for key, value := range flags {
		switch key {
		case PermissionCanManageMenu:
			p.CanManageMenu = value
		case PermissionCanAcceptOrder:
			p.CanAcceptOrder = value
		case PermissionCanRejectOrder:
			p.CanRejectOrder = value
		case PermissionCanManageOffers:
			p.CanManageOffers = value
		case PermissionCanViewReports:
			p.CanViewReports = value
		}
	}
}
