package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"

	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  ScheduleReader
	clock timezone.Clock
	loc   *time.Location
}

func NewGetAvailability(
	repo ScheduleReader,
	clock timezone.Clock,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock, loc: loc}
}

type AvailabilityInput struct {
	ProfessionalID  uuid.UUID
	Date            time.Time
	DurationMinutes int
	Grid            cal.Grid
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Execute lists every half-hour start on Date where a booking of
// DurationMinutes fits inside the grid without hitting a block, a break or
// another booking. Starts already in the past are left out.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]TimeSlot, error) {

	day := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, uc.loc)

	schedule, err := LoadSchedule(ctx, uc.repo, in.ProfessionalID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	duration := time.Duration(in.DurationMinutes) * time.Minute
	dayEnd := in.Grid.End().On(day)
	now := uc.clock.Now()

	slots := []TimeSlot{}
	for cur := in.Grid.Start().On(day); !cur.Add(duration).After(dayEnd); cur = cur.Add(cal.SlotMinutes * time.Minute) {
		if cur.Before(now) {
			continue
		}
		if schedule.CanBook(in.ProfessionalID, cur, duration) != cal.SlotFree {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: cur.Format("15:04"),
			End:   cur.Add(duration).Format("15:04"),
		})
	}

	return slots, nil
}
