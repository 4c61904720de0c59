package calendar

import (
	"time"

	"github.com/google/uuid"
)

type Placement struct {
	DayOffset int     `json:"day_offset"`
	Top       float64 `json:"top"`
	Height    float64 `json:"height"`
}

type BookingPlacement struct {
	Booking Booking `json:"booking"`
	Placement
}

type BreakPlacement struct {
	BreakID uuid.UUID `json:"break_id"`
	Label   string    `json:"label"`
	Placement
}

func heightFor(minutes float64) float64 {
	h := minutes / SlotMinutes * SlotHeight
	if h < SlotHeight {
		return SlotHeight
	}
	return h
}

// PlaceBooking positions a booking on the week that starts at weekStart.
// Sub-slot starts keep their exact fraction so back-to-back bookings never
// share pixels. Bookings shorter than a slot are drawn one slot tall.
func PlaceBooking(start, end, weekStart time.Time, g Grid) (Placement, error) {
	if start.IsZero() || end.IsZero() {
		return Placement{}, ErrMissingTimestamp
	}
	if !end.After(start) {
		return Placement{}, ErrInvalidTimeRange
	}

	start = start.In(weekStart.Location())

	offset := DayOffset(start, weekStart)
	if offset < 0 || offset >= DaysInWeek {
		return Placement{}, ErrOutsideWeek
	}

	minuteOfDay := float64(start.Hour()*60+start.Minute()) + float64(start.Second())/60
	top := (minuteOfDay - float64(g.Start())) / SlotMinutes * SlotHeight

	return Placement{
		DayOffset: offset,
		Top:       top,
		Height:    heightFor(end.Sub(start).Minutes()),
	}, nil
}

// PlaceBookingISO is PlaceBooking over raw ISO-8601 strings.
func PlaceBookingISO(startISO, endISO string, weekStart time.Time, g Grid) (Placement, error) {
	loc := weekStart.Location()

	start, err := ParseTimestamp(startISO, loc)
	if err != nil {
		return Placement{}, err
	}
	end, err := ParseTimestamp(endISO, loc)
	if err != nil {
		return Placement{}, err
	}

	return PlaceBooking(start, end, weekStart, g)
}

// PlaceBreak returns one placement per day column the break recurs on.
// Malformed breaks produce none.
func PlaceBreak(br Break, g Grid) []Placement {
	start, end, err := parseRange(br.StartTime, br.EndTime)
	if err != nil || br.Validate() != nil {
		return nil
	}

	top := g.Offset(start)
	height := heightFor(float64(end - start))

	out := make([]Placement, 0, DaysInWeek)
	for day := 0; day < DaysInWeek; day++ {
		if !br.AppliesTo(day) {
			continue
		}
		out = append(out, Placement{DayOffset: day, Top: top, Height: height})
	}
	return out
}
