// Package calendar holds the pure week-calendar model: the half-hour grid,
// booking and break placement, availability resolution and conflict detection.
// Nothing here reads the wall clock or touches storage; callers hand in
// snapshots and an explicit location.
package calendar

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
)

const (
	SlotMinutes = 30
	SlotHeight  = 40.0

	DateLayout = "2006-01-02"
	DaysInWeek = 7
)

var (
	ErrInvalidTimeRange = errors.New("calendar: end must be after start")
	ErrMissingTimestamp = errors.New("calendar: missing timestamp")
	ErrOutsideWeek      = errors.New("calendar: outside displayed week")
	ErrInvalidBlock     = errors.New("calendar: invalid availability block")
	ErrInvalidBreak     = errors.New("calendar: invalid break")
	ErrInvalidDayOffset = errors.New("calendar: day offset outside week")
)

type Booking struct {
	ID             uuid.UUID              `json:"id"`
	ProfessionalID uuid.UUID              `json:"professional_id"`
	ClientID       uuid.UUID              `json:"client_id"`
	ServiceID      uuid.UUID              `json:"service_id"`
	Start          time.Time              `json:"start_time"`
	End            time.Time              `json:"end_time"`
	Status         booking.Status         `json:"status"`
	PaymentStatus  *booking.PaymentStatus `json:"payment_status,omitempty"`
	Notes          string                 `json:"notes,omitempty"`
}

func (b Booking) Validate() error {
	if b.Start.IsZero() || b.End.IsZero() {
		return ErrMissingTimestamp
	}
	if !b.End.After(b.Start) {
		return ErrInvalidTimeRange
	}
	return nil
}

// AvailabilityBlock without StartTime/EndTime blocks the whole Date.
type AvailabilityBlock struct {
	ID             uuid.UUID `json:"id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	Date           string    `json:"date"`
	StartTime      *string   `json:"start_time,omitempty"`
	EndTime        *string   `json:"end_time,omitempty"`
	Reason         string    `json:"reason,omitempty"`
}

func (b AvailabilityBlock) WholeDay() bool {
	return b.StartTime == nil && b.EndTime == nil
}

func (b AvailabilityBlock) Validate() error {
	if _, err := time.Parse(DateLayout, b.Date); err != nil {
		return ErrInvalidBlock
	}
	if b.WholeDay() {
		return nil
	}
	if b.StartTime == nil || b.EndTime == nil {
		return ErrInvalidBlock
	}
	if _, _, err := parseRange(*b.StartTime, *b.EndTime); err != nil {
		return ErrInvalidBlock
	}
	return nil
}

// Break is a daily recurring window. DayOfWeek uses the grid numbering
// (0 = Monday … 6 = Sunday); nil applies to every day.
type Break struct {
	ID             uuid.UUID `json:"id"`
	ProfessionalID uuid.UUID `json:"professional_id"`
	DayOfWeek      *int      `json:"day_of_week"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Label          string    `json:"label"`
}

func (b Break) Validate() error {
	if b.DayOfWeek != nil && (*b.DayOfWeek < 0 || *b.DayOfWeek >= DaysInWeek) {
		return ErrInvalidBreak
	}
	if _, _, err := parseRange(b.StartTime, b.EndTime); err != nil {
		return ErrInvalidBreak
	}
	return nil
}

func (b Break) AppliesTo(dayIndex int) bool {
	return b.DayOfWeek == nil || *b.DayOfWeek == dayIndex
}

func parseRange(start, end string) (TimeOfDay, TimeOfDay, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return 0, 0, err
	}
	if e <= s {
		return 0, 0, ErrInvalidTimeRange
	}
	return s, e, nil
}
