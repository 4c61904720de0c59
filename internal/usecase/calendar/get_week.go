package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/timezone"
)

type GetWeek struct {
	repo  ScheduleReader
	clock timezone.Clock
	loc   *time.Location
	log   *zap.Logger
}

func NewGetWeek(
	repo ScheduleReader,
	clock timezone.Clock,
	loc *time.Location,
	log *zap.Logger,
) *GetWeek {
	return &GetWeek{
		repo:  repo,
		clock: clock,
		loc:   loc,
		log:   log,
	}
}

type GetWeekInput struct {
	Reference       time.Time
	ProfessionalIDs []uuid.UUID
	Grid            cal.Grid
}

// Execute loads every professional's week concurrently and returns the views
// in the order the ids were given.
func (uc *GetWeek) Execute(
	ctx context.Context,
	in GetWeekInput,
) ([]cal.WeekView, error) {

	weekStart := cal.WeekStart(in.Reference.In(uc.loc))
	weekEnd := weekStart.AddDate(0, 0, cal.DaysInWeek)
	now := uc.clock.Now()

	views := make([]cal.WeekView, len(in.ProfessionalIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range in.ProfessionalIDs {
		g.Go(func() error {
			schedule, err := LoadSchedule(gctx, uc.repo, id, weekStart, weekEnd)
			if err != nil {
				return err
			}

			views[i] = cal.BuildWeek(cal.WeekInput{
				ProfessionalID: id,
				Reference:      weekStart,
				Now:            now,
				Location:       uc.loc,
				Grid:           in.Grid,
				Schedule:       schedule,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, v := range views {
		for _, s := range v.Skipped {
			uc.log.Warn("calendar record skipped",
				zap.String("professional_id", v.ProfessionalID.String()),
				zap.String("kind", s.Kind),
				zap.String("id", s.ID.String()),
				zap.String("reason", s.Reason),
			)
		}
	}

	return views, nil
}
