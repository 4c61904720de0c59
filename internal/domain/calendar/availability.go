package calendar

import (
	"time"

	"github.com/google/uuid"
)

// IsSlotBlocked reports whether an availability block covers slot ("HH:mm")
// on date for the professional. Malformed blocks are ignored.
func IsSlotBlocked(blocks []AvailabilityBlock, professionalID uuid.UUID, date time.Time, slot string) bool {
	at, err := ParseTimeOfDay(slot)
	if err != nil {
		return false
	}
	return isBlockedAt(blocks, professionalID, date, at)
}

func isBlockedAt(blocks []AvailabilityBlock, professionalID uuid.UUID, date time.Time, at TimeOfDay) bool {
	day := date.Format(DateLayout)

	for _, b := range blocks {
		if b.ProfessionalID != professionalID || b.Date != day {
			continue
		}
		if b.Validate() != nil {
			continue
		}
		if b.WholeDay() {
			return true
		}

		start, end, _ := parseRange(*b.StartTime, *b.EndTime)
		if at >= start && at < end {
			return true
		}
	}
	return false
}

// HasBreak reports whether a break of the professional recurring on date's
// weekday covers slot ("HH:mm").
func HasBreak(breaks []Break, professionalID uuid.UUID, date time.Time, slot string) bool {
	at, err := ParseTimeOfDay(slot)
	if err != nil {
		return false
	}
	return hasBreakAt(breaks, professionalID, date, at)
}

func hasBreakAt(breaks []Break, professionalID uuid.UUID, date time.Time, at TimeOfDay) bool {
	day := MondayIndex(date)

	for _, br := range breaks {
		if br.ProfessionalID != professionalID || !br.AppliesTo(day) {
			continue
		}

		start, end, err := parseRange(br.StartTime, br.EndTime)
		if err != nil || br.Validate() != nil {
			continue
		}
		if at >= start && at < end {
			return true
		}
	}
	return false
}

// ===============================
// Slot state
// ===============================

type SlotState string

const (
	SlotFree    SlotState = "free"
	SlotBlocked SlotState = "blocked"
	SlotBreak   SlotState = "break"
	SlotBooked  SlotState = "booked"
)

// Schedule is one snapshot of the records a professional's calendar is
// computed from.
type Schedule struct {
	Bookings []Booking
	Blocks   []AvailabilityBlock
	Breaks   []Break
}

// StateAt classifies the half-hour cell starting at at.
// Precedence: blocked, break, booked, free.
func (s Schedule) StateAt(professionalID uuid.UUID, at time.Time) SlotState {
	tod := TimeOfDayOf(at)

	switch {
	case isBlockedAt(s.Blocks, professionalID, at, tod):
		return SlotBlocked
	case hasBreakAt(s.Breaks, professionalID, at, tod):
		return SlotBreak
	case !IsSlotAvailable(professionalID, at, SlotMinutes, s.Bookings):
		return SlotBooked
	}
	return SlotFree
}

// CanBook combines every check a new booking of duration must pass and
// returns SlotFree or the first state that rejects the range. Block and break
// windows are tested as intervals, so a 12:15-12:45 break still rejects a
// booking starting at 12:30.
func (s Schedule) CanBook(professionalID uuid.UUID, start time.Time, duration time.Duration) SlotState {
	end := start.Add(duration)

	if s.blocksRange(professionalID, start, end) {
		return SlotBlocked
	}
	if s.breaksRange(professionalID, start, end) {
		return SlotBreak
	}
	if !IsSlotAvailable(professionalID, start, int(duration/time.Minute), s.Bookings) {
		return SlotBooked
	}
	return SlotFree
}

func (s Schedule) blocksRange(professionalID uuid.UUID, start, end time.Time) bool {
	for _, b := range s.Blocks {
		if b.ProfessionalID != professionalID || b.Validate() != nil {
			continue
		}

		day, err := time.ParseInLocation(DateLayout, b.Date, start.Location())
		if err != nil {
			continue
		}

		from, to := day, day.AddDate(0, 0, 1)
		if !b.WholeDay() {
			bs, be, _ := parseRange(*b.StartTime, *b.EndTime)
			from, to = bs.On(day), be.On(day)
		}
		if Overlaps(start, end, from, to) {
			return true
		}
	}
	return false
}

func (s Schedule) breaksRange(professionalID uuid.UUID, start, end time.Time) bool {
	for day := dateOf(start); day.Before(end); day = day.AddDate(0, 0, 1) {
		for _, br := range s.Breaks {
			if br.ProfessionalID != professionalID || !br.AppliesTo(MondayIndex(day)) {
				continue
			}

			bs, be, err := parseRange(br.StartTime, br.EndTime)
			if err != nil || br.Validate() != nil {
				continue
			}
			if Overlaps(start, end, bs.On(day), be.On(day)) {
				return true
			}
		}
	}
	return false
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
