package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAgentCapacity is the number of concurrently held orders an agent may carry
// when no per-agent capacity is configured.
const DefaultAgentCapacity = 1

// Agent is a delivery agent. Agents are deactivated, never deleted.
type Agent struct {
	ID            uuid.UUID    `json:"id"`
	UserID        uuid.UUID    `json:"user_id"`
	Active        bool         `json:"active"`
	Location      Point        `json:"location"`
	OrderCount    int          `json:"order_count"` // orders currently held in an agent-holding status
	Capacity      int          `json:"capacity"`
	ReviewCount   int          `json:"review_count"`
	AverageRating float64      `json:"average_rating"`
	Payout        PayoutDetail `json:"payout"`
	RewardPoints  int64        `json:"reward_points"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// HasCapacity reports whether the agent can take one more order.
func (a *Agent) HasCapacity() bool {
	return a.Active && a.OrderCount < a.Capacity
}

// PayoutDetail holds the agent's bank details for settlements.
type PayoutDetail struct {
	AccountHolder string `json:"account_holder"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
}

// NearbyAgent is a locator hit: an agent id, its last known location and the distance to the query point.
type NearbyAgent struct {
	AgentID        uuid.UUID
	Location       Point
	DistanceMeters float64
}
