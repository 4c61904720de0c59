package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/spa-scheduler/internal/models"
)

type Repository interface {
	// -------- References --------
	GetProfessional(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Professional, error)

	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	GetClient(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingIfFree re-checks conflicts inside a locking transaction
	// and inserts b only when the range is still free.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Calendar data --------
	ListBookingsForPeriod(
		ctx context.Context,
		professionalID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBlocksForPeriod(
		ctx context.Context,
		professionalID uuid.UUID,
		fromDate string,
		toDate string,
	) ([]models.AvailabilityBlock, error)

	ListBreaks(
		ctx context.Context,
		professionalID uuid.UUID,
	) ([]models.Break, error)
}
