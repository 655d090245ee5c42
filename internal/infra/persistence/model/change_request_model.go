package model

import (
	"time"

	"github.com/google/uuid"
)

// ChangeRequestModel is the GORM-specific struct for the 'change_requests' table.
// Payload holds the JSON body of the variant named by Action.
type ChangeRequestModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;not null;index"`
	RequesterID  uuid.UUID  `gorm:"type:uuid;not null"`
	Type         string     `gorm:"type:varchar(32);not null"`
	Action       string     `gorm:"type:varchar(32);not null"`
	Payload      []byte     `gorm:"type:jsonb;not null"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	Note         string `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChangeRequestModel) TableName() string {
	return "change_requests"
}
