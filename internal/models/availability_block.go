package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityBlock removes a whole day (no times) or a time range of one date
// from a professional's calendar.
type AvailabilityBlock struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index" json:"professional_id"`

	Date      string  `gorm:"size:10;not null;index" json:"date"`
	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`
	Reason    string  `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
