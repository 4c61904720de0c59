package converter

import (
	"github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
)

func BookingToCalendar(b models.Booking) calendar.Booking {
	out := calendar.Booking{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		ClientID:       b.ClientID,
		ServiceID:      b.ServiceID,
		Start:          b.StartTime,
		End:            b.EndTime,
		Notes:          b.Notes,
	}

	// unknown legacy values stay visible with their raw status
	if st, err := booking.ParseStatus(b.Status); err == nil {
		out.Status = st
	} else {
		out.Status = booking.Status(b.Status)
	}

	if b.PaymentStatus != nil {
		ps := booking.PaymentStatus(*b.PaymentStatus)
		out.PaymentStatus = &ps
	}

	return out
}

func BookingsToCalendar(in []models.Booking) []calendar.Booking {
	out := make([]calendar.Booking, 0, len(in))
	for _, b := range in {
		out = append(out, BookingToCalendar(b))
	}
	return out
}

func BlockToCalendar(b models.AvailabilityBlock) calendar.AvailabilityBlock {
	return calendar.AvailabilityBlock{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Reason:         b.Reason,
	}
}

func BlocksToCalendar(in []models.AvailabilityBlock) []calendar.AvailabilityBlock {
	out := make([]calendar.AvailabilityBlock, 0, len(in))
	for _, b := range in {
		out = append(out, BlockToCalendar(b))
	}
	return out
}

func BreakToCalendar(b models.Break) calendar.Break {
	return calendar.Break{
		ID:             b.ID,
		ProfessionalID: b.ProfessionalID,
		DayOfWeek:      b.DayOfWeek,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Label:          b.Label,
	}
}

func BreaksToCalendar(in []models.Break) []calendar.Break {
	out := make([]calendar.Break, 0, len(in))
	for _, b := range in {
		out = append(out, BreakToCalendar(b))
	}
	return out
}
