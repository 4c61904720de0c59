package dto

import (
	"github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
)

type BookingDetailsDTO struct {
	Booking          calendar.Booking `json:"booking"`
	Display          booking.Display  `json:"display"`
	ProfessionalName string           `json:"professional_name"`
	ClientName       string           `json:"client_name"`
	ServiceName      string           `json:"service_name"`
	AllowedNext      []booking.Status `json:"allowed_next"`
}
