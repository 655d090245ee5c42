package entity

import (
	"time"

	"github.com/google/uuid"
)

// EarningType categorises agent ledger rows.
type EarningType string

const (
	EarningTypeDeliveryFee EarningType = "delivery_fee"
	EarningTypeIncentive   EarningType = "incentive"
	EarningTypePenalty     EarningType = "penalty"
	EarningTypeOther       EarningType = "other"
)

// EarningTypes lists every agent earning type.
var EarningTypes = []EarningType{
	EarningTypeDeliveryFee,
	EarningTypeIncentive,
	EarningTypePenalty,
	EarningTypeOther,
}

// IsValid checks if the earning type is known.
func (t EarningType) IsValid() bool {
	switch t {
	case EarningTypeDeliveryFee, EarningTypeIncentive, EarningTypePenalty, EarningTypeOther:
		return true
	default:
		return false
	}
}

// PayoutStatus tracks settlement of restaurant earnings.
type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "pending"
	PayoutStatusPaid    PayoutStatus = "paid"
)

// RestaurantEarningCategory categorises restaurant ledger rows.
const RestaurantEarningCategoryOrderRevenue = "order_revenue"

// AgentEarning is an immutable ledger row crediting (or debiting, for penalties) an agent.
type AgentEarning struct {
	ID        uuid.UUID   `json:"id"`
	AgentID   uuid.UUID   `json:"agent_id"`
	OrderID   *uuid.UUID  `json:"order_id"`
	Amount    float64     `json:"amount"`
	Type      EarningType `json:"type"`
	Remarks   string      `json:"remarks"`
	CreatedAt time.Time   `json:"created_at"`
}

// RestaurantEarning is an immutable ledger row crediting a restaurant for an order.
type RestaurantEarning struct {
	ID           uuid.UUID    `json:"id"`
	RestaurantID uuid.UUID    `json:"restaurant_id"`
	OrderID      uuid.UUID    `json:"order_id"`
	GrossAmount  float64      `json:"gross_amount"`
	Commission   float64      `json:"commission"`
	Amount       float64      `json:"amount"` // net share credited to the restaurant
	Category     string       `json:"category"`
	PayoutStatus PayoutStatus `json:"payout_status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// EarningsSummary is the agent-facing aggregate of the ledger.
type EarningsSummary struct {
	AgentID uuid.UUID               `json:"agent_id"`
	Total   float64                 `json:"total"`
	ByType  map[EarningType]float64 `json:"by_type"`
}

// NewEarningsSummary returns a summary with every earning type present and zeroed.
func NewEarningsSummary(agentID uuid.UUID) *EarningsSummary {
	byType := make(map[EarningType]float64, len(EarningTypes))
	for _, t := range EarningTypes {
		byType[t] = 0
	}

	return &EarningsSummary{AgentID: agentID, ByType: byType}
}

// RewardOwnerType identifies who a reward point entry belongs to.
type RewardOwnerType string

const (
	RewardOwnerAgent      RewardOwnerType = "agent"
	RewardOwnerRestaurant RewardOwnerType = "restaurant"
)

// RewardPointEntry is an append-only record of points granted to an agent or restaurant.
type RewardPointEntry struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	OwnerType RewardOwnerType
	OrderID   *uuid.UUID
	Points    int64
	Reason    string
	CreatedAt time.Time
}

// Commission is a restaurant's revenue-share terms, supplied by pricing configuration.
type Commission struct {
	Percent float64 // share of food revenue kept by the platform, 0..100
	FlatFee float64 // fixed per-order fee kept by the platform
}

// Split returns the commission and net share for a gross amount. The net share never goes below zero.
func (c Commission) Split(gross float64) (commission, net float64) {
	commission = gross*c.Percent/100 + c.FlatFee
	if commission > gross {
		commission = gross
	}

	return commission, gross - commission
}
