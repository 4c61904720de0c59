package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/spa-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
	"github.com/BruksfildServices01/spa-scheduler/internal/timezone"
)

type ChangeBookingStatus struct {
	repo  domain.Repository
	audit Auditor
	clock timezone.Clock
}

func NewChangeBookingStatus(
	repo domain.Repository,
	audit Auditor,
	clock timezone.Clock,
) *ChangeBookingStatus {
	return &ChangeBookingStatus{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *ChangeBookingStatus) Execute(
	ctx context.Context,
	bookingID uuid.UUID,
	to domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	from := b.Status
	if err := domain.Transition(b, to, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{
			"from": from,
			"to":   string(to),
		},
	})

	return b, nil
}
