package models

import (
	"time"

	"github.com/google/uuid"
)

type Professional struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Role     string `gorm:"size:30;not null" json:"role"`
	PhotoURL string `gorm:"size:255" json:"photo_url,omitempty"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleTherapist    = "THERAPIST"
	RoleEsthetician  = "ESTHETICIAN"
	RoleMasseur      = "MASSEUR"
	RoleReceptionist = "RECEPTIONIST"
	RoleManager      = "MANAGER"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleTherapist, RoleEsthetician, RoleMasseur, RoleReceptionist, RoleManager:
		return true
	}
	return false
}
