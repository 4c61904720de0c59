package booking

import (
	"time"

	"github.com/BruksfildServices01/spa-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves b to the target status and stamps the lifecycle timestamps.
func Transition(b *models.Booking, to Status, now time.Time) error {
	from, err := ParseStatus(b.Status)
	if err != nil {
		return err
	}

	if err := ValidateTransition(from, to); err != nil {
		return err
	}

	b.Status = string(to)

	switch to {
	case StatusCancelled:
		b.CancelledAt = &now
	case StatusCompleted:
		b.CompletedAt = &now
	}

	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	return Transition(b, StatusCancelled, now)
}

func Complete(b *models.Booking, now time.Time) error {
	return Transition(b, StatusCompleted, now)
}
