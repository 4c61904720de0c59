package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/spa-scheduler/internal/converter"
	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/dto"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute answers a booking click: the full record plus how to draw it and
// which statuses it may move to next.
func (uc *GetBooking) Execute(
	ctx context.Context,
	id uuid.UUID,
) (*dto.BookingDetailsDTO, error) {

	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	cb := converter.BookingToCalendar(*b)

	// a stored status outside the enumeration cannot move anywhere
	next := []domain.Status{}
	if _, err := domain.ParseStatus(b.Status); err == nil {
		for _, st := range domain.AllStatuses() {
			if domain.CanTransition(cb.Status, st) {
				next = append(next, st)
			}
		}
	}

	return &dto.BookingDetailsDTO{
		Booking:          cb,
		Display:          cb.Status.Display(),
		ProfessionalName: b.Professional.Name,
		ClientName:       b.Client.Name,
		ServiceName:      b.Service.Name,
		AllowedNext:      next,
	}, nil
}
