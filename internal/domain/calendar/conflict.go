package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
)

// Overlaps is the half-open interval test: touching edges do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// occupies reports whether b still holds its time range. Only cancelled
// bookings release it; malformed ranges are not considered.
func occupies(b Booking, professionalID uuid.UUID) bool {
	return b.ProfessionalID == professionalID &&
		b.Status != booking.StatusCancelled &&
		b.Validate() == nil
}

// Conflicts returns the bookings of professionalID that overlap
// [start, start+durationMinutes).
func Conflicts(professionalID uuid.UUID, start time.Time, durationMinutes int, bookings []Booking) []Booking {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	var out []Booking
	for _, b := range bookings {
		if !occupies(b, professionalID) {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			out = append(out, b)
		}
	}
	return out
}

// IsSlotAvailable reports whether no existing non-cancelled booking of the
// professional overlaps the candidate. Blocks and breaks are not consulted.
func IsSlotAvailable(professionalID uuid.UUID, start time.Time, durationMinutes int, bookings []Booking) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, b := range bookings {
		if occupies(b, professionalID) && Overlaps(start, end, b.Start, b.End) {
			return false
		}
	}
	return true
}
