package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Version backs the compare-and-swap guard on every status change.
type OrderModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key"`
	CustomerID       *uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Items            []byte     `gorm:"type:jsonb;not null"`
	Status           string     `gorm:"type:varchar(32);not null;index:idx_orders_status_agent"`
	AssignedAgentID  *uuid.UUID `gorm:"type:uuid;index:idx_orders_status_agent"`
	Subtotal         float64    `gorm:"type:numeric(12,2);not null"`
	Tax              float64    `gorm:"type:numeric(12,2);not null"`
	Discount         float64    `gorm:"type:numeric(12,2);not null"`
	DeliveryCharge   float64    `gorm:"type:numeric(12,2);not null"`
	Surge            float64    `gorm:"type:numeric(12,2);not null"`
	Tip              float64    `gorm:"type:numeric(12,2);not null"`
	Total            float64    `gorm:"type:numeric(12,2);not null"`
	DeliveryLon      float64    `gorm:"type:double precision;not null"`
	DeliveryLat      float64    `gorm:"type:double precision;not null"`
	ScheduledAt      *time.Time
	Reason           string `gorm:"type:text;not null;default:''"`
	AutoAccepted     bool   `gorm:"not null;default:false"`
	DebtCancellation bool   `gorm:"not null;default:false"`
	AgentRating      *int   `gorm:"type:smallint"`
	Version          int64  `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderStatusChangeModel is the GORM-specific struct for the append-only 'order_status_history' table.
type OrderStatusChangeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"type:varchar(32);not null"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"type:varchar(16);not null"`
	Reason     string    `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusChangeModel) TableName() string {
	return "order_status_history"
}
