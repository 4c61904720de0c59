package models

import (
	"time"

	"github.com/google/uuid"
)

type Break struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index" json:"professional_id"`

	// 0 = Monday … 6 = Sunday; nil repeats every day
	DayOfWeek *int `json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Label     string `gorm:"size:100" json:"label"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
