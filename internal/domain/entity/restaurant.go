package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the subset of the merchant profile the engine depends on.
// Profile CRUD lives outside the engine.
type Restaurant struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Name                string
	Location            Point
	AutoDispatch        bool   // skip the manual accept step and dispatch at placement
	TelegramChatID      *int64 // optional merchant chat for order notifications
	CompletedOrderCount int64
	RewardPoints        int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
