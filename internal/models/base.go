package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID fills an empty primary key before insert.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (p *Professional) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func (c *Client) BeforeCreate(*gorm.DB) error {
	assignID(&c.ID)
	return nil
}

func (s *Service) BeforeCreate(*gorm.DB) error {
	assignID(&s.ID)
	return nil
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	assignID(&b.ID)
	return nil
}

func (a *AvailabilityBlock) BeforeCreate(*gorm.DB) error {
	assignID(&a.ID)
	return nil
}

func (b *Break) BeforeCreate(*gorm.DB) error {
	assignID(&b.ID)
	return nil
}
