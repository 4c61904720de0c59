package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"

	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
)

type ResolveSlot struct {
	repo ScheduleReader
	loc  *time.Location
}

func NewResolveSlot(repo ScheduleReader, loc *time.Location) *ResolveSlot {
	return &ResolveSlot{repo: repo, loc: loc}
}

type SlotResolution struct {
	ProfessionalID uuid.UUID     `json:"professional_id"`
	Start          time.Time     `json:"start"`
	End            time.Time     `json:"end"`
	State          cal.SlotState `json:"state"`
}

// Execute maps a clicked cell of the week containing weekOf to its instant
// and reports what currently occupies it.
func (uc *ResolveSlot) Execute(
	ctx context.Context,
	professionalID uuid.UUID,
	weekOf time.Time,
	click cal.SlotClick,
) (*SlotResolution, error) {

	weekStart := cal.WeekStart(weekOf.In(uc.loc))

	start, err := cal.ResolveSlot(weekStart, click)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, uc.loc)
	schedule, err := LoadSchedule(ctx, uc.repo, professionalID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &SlotResolution{
		ProfessionalID: professionalID,
		Start:          start,
		End:            start.Add(cal.SlotMinutes * time.Minute),
		State:          schedule.StateAt(professionalID, start),
	}, nil
}
