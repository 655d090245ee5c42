package model

import (
	"time"

	"github.com/google/uuid"
)

// AgentEarningModel is the GORM-specific struct for the 'agent_earnings' table.
// A partial unique index on (order_id, type) WHERE type = 'delivery_fee' keeps delivery fees single-posted.
type AgentEarningModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	AgentID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Amount    float64    `gorm:"type:numeric(12,2);not null"`
	Type      string     `gorm:"type:varchar(16);not null"`
	Remarks   string     `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentEarningModel) TableName() string {
	return "agent_earnings"
}

// RestaurantEarningModel is the GORM-specific struct for the 'restaurant_earnings' table.
type RestaurantEarningModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	GrossAmount  float64   `gorm:"type:numeric(12,2);not null"`
	Commission   float64   `gorm:"type:numeric(12,2);not null"`
	Amount       float64   `gorm:"type:numeric(12,2);not null"`
	Category     string    `gorm:"type:varchar(32);not null"`
	PayoutStatus string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantEarningModel) TableName() string {
	return "restaurant_earnings"
}

// RewardPointEntryModel is the GORM-specific struct for the 'reward_point_entries' table.
type RewardPointEntryModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_reward_owner"`
	OwnerType string     `gorm:"type:varchar(16);not null;index:idx_reward_owner"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Points    int64      `gorm:"not null"`
	Reason    string     `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardPointEntryModel) TableName() string {
	return "reward_point_entries"
}

// EarningSumRow is the scan target of the per-type earnings aggregate.
type EarningSumRow struct {
	Type  string
	Total float64
}
