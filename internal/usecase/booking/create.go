package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/spa-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
	"github.com/BruksfildServices01/spa-scheduler/internal/timezone"
	ucCalendar "github.com/BruksfildServices01/spa-scheduler/internal/usecase/calendar"
)

// Locker serialises booking writes per professional.
type Locker interface {
	Acquire(ctx context.Context, professionalID uuid.UUID) (release func(), ok bool, err error)
}

// Auditor receives domain events; *audit.Dispatcher in production.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ProfessionalID uuid.UUID
	ClientID       uuid.UUID
	ServiceID      uuid.UUID

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	locker Locker
	audit  Auditor
	clock  timezone.Clock
	loc    *time.Location
	grid   cal.Grid
	log    *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	locker Locker,
	audit Auditor,
	clock timezone.Clock,
	loc *time.Location,
	grid cal.Grid,
	log *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		audit:  audit,
		clock:  clock,
		loc:    loc,
		grid:   grid,
		log:    log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Start instant in the spa's timezone
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		uc.loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(uc.clock.Now()) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// References
	// --------------------------------------------------
	pro, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !pro.Active {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)
	if !end.After(start) {
		return nil, httperr.ErrBusiness("invalid_service_duration")
	}

	// the grid window is the spa's opening hours
	if start.Before(uc.grid.Start().On(start)) || end.After(uc.grid.End().On(start)) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Per-professional lock
	// --------------------------------------------------
	release, ok, err := uc.locker.Acquire(ctx, pro.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("booking_locked")
	}
	defer release()

	// --------------------------------------------------
	// Blocks, breaks and bookings
	// --------------------------------------------------
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, uc.loc)
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, uc.loc).AddDate(0, 0, 1)

	schedule, err := ucCalendar.LoadSchedule(ctx, uc.repo, pro.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	switch schedule.CanBook(pro.ID, start, end.Sub(start)) {
	case cal.SlotBlocked:
		return nil, httperr.ErrBusiness("slot_blocked")
	case cal.SlotBreak:
		return nil, httperr.ErrBusiness("slot_on_break")
	case cal.SlotBooked:
		uc.audit.Dispatch(audit.Event{
			Action: "booking_conflict",
			Entity: "booking",
			Metadata: map[string]any{
				"professional_id": pro.ID,
				"start":           start,
				"end":             end,
			},
		})
		return nil, httperr.ErrBusiness("time_conflict")
	}

	// --------------------------------------------------
	// Create (re-checked inside the transaction)
	// --------------------------------------------------
	unpaid := string(domain.PaymentUnpaid)
	b := &models.Booking{
		ProfessionalID: pro.ID,
		ClientID:       in.ClientID,
		ServiceID:      svc.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		PaymentStatus:  &unpaid,
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.log.Info("booking created",
		zap.String("booking_id", b.ID.String()),
		zap.String("professional_id", pro.ID.String()),
		zap.Time("start", start),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
