package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/spa-scheduler/internal/converter"
	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
)

// ScheduleReader is the read side of the booking repository the calendar
// needs.
type ScheduleReader interface {
	ListBookingsForPeriod(ctx context.Context, professionalID uuid.UUID, start, end time.Time) ([]models.Booking, error)
	ListBlocksForPeriod(ctx context.Context, professionalID uuid.UUID, fromDate, toDate string) ([]models.AvailabilityBlock, error)
	ListBreaks(ctx context.Context, professionalID uuid.UUID) ([]models.Break, error)
}

// LoadSchedule fetches one professional's bookings, blocks and breaks
// touching [from, to).
func LoadSchedule(
	ctx context.Context,
	repo ScheduleReader,
	professionalID uuid.UUID,
	from time.Time,
	to time.Time,
) (cal.Schedule, error) {

	bookings, err := repo.ListBookingsForPeriod(ctx, professionalID, from, to)
	if err != nil {
		return cal.Schedule{}, fmt.Errorf("list bookings: %w", err)
	}

	lastDay := to.Add(-time.Nanosecond)
	blocks, err := repo.ListBlocksForPeriod(
		ctx,
		professionalID,
		from.Format(cal.DateLayout),
		lastDay.Format(cal.DateLayout),
	)
	if err != nil {
		return cal.Schedule{}, fmt.Errorf("list blocks: %w", err)
	}

	breaks, err := repo.ListBreaks(ctx, professionalID)
	if err != nil {
		return cal.Schedule{}, fmt.Errorf("list breaks: %w", err)
	}

	return cal.Schedule{
		Bookings: converter.BookingsToCalendar(bookings),
		Blocks:   converter.BlocksToCalendar(blocks),
		Breaks:   converter.BreaksToCalendar(breaks),
	}, nil
}
