package model

import (
	"time"

	"github.com/google/uuid"
)

// AgentModel is the GORM-specific struct for the 'agents' table.
// The PostGIS 'location' column is generated from longitude and latitude.
type AgentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Active        bool      `gorm:"not null"`
	Longitude     float64   `gorm:"type:double precision;not null;default:0"`
	Latitude      float64   `gorm:"type:double precision;not null;default:0"`
	OrderCount    int       `gorm:"not null;default:0"`
	Capacity      int       `gorm:"not null;default:1"`
	ReviewCount   int       `gorm:"not null;default:0"`
	AverageRating float64   `gorm:"type:numeric(3,2);not null;default:0"`
	PayoutHolder  string    `gorm:"type:varchar(255);not null;default:''"`
	PayoutBank    string    `gorm:"type:varchar(255);not null;default:''"`
	PayoutAccount string    `gorm:"type:varchar(64);not null;default:''"`
	RewardPoints  int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentModel) TableName() string {
	return "agents"
}

// NearbyAgentRow is the scan target of the PostGIS nearest-agent query.
type NearbyAgentRow struct {
	ID        uuid.UUID
	Longitude float64
	Latitude  float64
	Distance  float64
}
