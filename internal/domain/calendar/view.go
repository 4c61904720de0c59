package calendar

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

type WeekInput struct {
	ProfessionalID uuid.UUID
	Reference      time.Time
	Now            time.Time
	Location       *time.Location
	Grid           Grid
	Schedule       Schedule
}

type Day struct {
	Date    string `json:"date"`
	Offset  int    `json:"day_offset"`
	IsToday bool   `json:"is_today"`
}

type SkippedRecord struct {
	Kind   string    `json:"kind"`
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

type WeekView struct {
	ProfessionalID uuid.UUID          `json:"professional_id"`
	WeekStart      string             `json:"week_start"`
	Grid           Grid               `json:"grid"`
	Days           []Day              `json:"days"`
	Slots          []TimeSlot         `json:"slots"`
	Bookings       []BookingPlacement `json:"bookings"`
	Breaks         []BreakPlacement   `json:"breaks"`
	// Cells[day][i] is the state of the half hour starting at Slots[i].
	Cells   [][]SlotState   `json:"cells"`
	Skipped []SkippedRecord `json:"skipped"`
}

// BuildWeek computes the full render model of one professional's week.
// Records that cannot be drawn are listed in Skipped; records of other weeks
// are dropped without a trace.
func BuildWeek(in WeekInput) WeekView {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	ref := in.Reference.In(loc)
	now := in.Now.In(loc)
	weekStart := WeekStart(ref)
	days := WeekDays(ref)

	view := WeekView{
		ProfessionalID: in.ProfessionalID,
		WeekStart:      weekStart.Format(DateLayout),
		Grid:           in.Grid,
		Days:           make([]Day, 0, DaysInWeek),
		Slots:          in.Grid.Slots(),
		Bookings:       []BookingPlacement{},
		Breaks:         []BreakPlacement{},
		Skipped:        []SkippedRecord{},
	}

	for i, d := range days {
		view.Days = append(view.Days, Day{
			Date:    d.Format(DateLayout),
			Offset:  i,
			IsToday: !in.Now.IsZero() && SameDate(d, now),
		})
	}

	for _, b := range in.Schedule.Bookings {
		if b.ProfessionalID != in.ProfessionalID {
			continue
		}

		p, err := PlaceBooking(b.Start, b.End, weekStart, in.Grid)
		switch {
		case errors.Is(err, ErrOutsideWeek):
			continue
		case err != nil:
			view.Skipped = append(view.Skipped, SkippedRecord{Kind: "booking", ID: b.ID, Reason: err.Error()})
			continue
		}

		view.Bookings = append(view.Bookings, BookingPlacement{Booking: b, Placement: p})
	}

	sort.SliceStable(view.Bookings, func(i, j int) bool {
		a, b := view.Bookings[i], view.Bookings[j]
		if a.DayOffset != b.DayOffset {
			return a.DayOffset < b.DayOffset
		}
		return a.Top < b.Top
	})

	for _, br := range in.Schedule.Breaks {
		if br.ProfessionalID != in.ProfessionalID {
			continue
		}
		if err := br.Validate(); err != nil {
			view.Skipped = append(view.Skipped, SkippedRecord{Kind: "break", ID: br.ID, Reason: err.Error()})
			continue
		}

		for _, p := range PlaceBreak(br, in.Grid) {
			view.Breaks = append(view.Breaks, BreakPlacement{BreakID: br.ID, Label: br.Label, Placement: p})
		}
	}

	for _, bl := range in.Schedule.Blocks {
		if bl.ProfessionalID != in.ProfessionalID {
			continue
		}
		if err := bl.Validate(); err != nil {
			view.Skipped = append(view.Skipped, SkippedRecord{Kind: "block", ID: bl.ID, Reason: err.Error()})
		}
	}

	// the last slot only closes the grid
	cellsPerDay := len(view.Slots) - 1
	if cellsPerDay < 0 {
		cellsPerDay = 0
	}
	view.Cells = make([][]SlotState, DaysInWeek)
	for i, d := range days {
		row := make([]SlotState, 0, cellsPerDay)
		for s := 0; s < cellsPerDay; s++ {
			at := (in.Grid.Start() + TimeOfDay(s*SlotMinutes)).On(d)
			row = append(row, in.Schedule.StateAt(in.ProfessionalID, at))
		}
		view.Cells[i] = row
	}

	return view
}
