package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/spa-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
)

type fakeRepo struct {
	professionals map[uuid.UUID]models.Professional
	services      map[uuid.UUID]models.Service
	clients       map[uuid.UUID]models.Client
	bookings      []models.Booking
	blocks        []models.AvailabilityBlock
	breaks        []models.Break
	updates       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		professionals: map[uuid.UUID]models.Professional{},
		services:      map[uuid.UUID]models.Service{},
		clients:       map[uuid.UUID]models.Client{},
	}
}

func (r *fakeRepo) GetProfessional(_ context.Context, id uuid.UUID) (*models.Professional, error) {
	p, ok := r.professionals[id]
	if !ok {
		return nil, httperr.ErrBusiness("professional_not_found")
	}
	return &p, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &s, nil
}

func (r *fakeRepo) GetClient(_ context.Context, id uuid.UUID) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return &c, nil
}

func (r *fakeRepo) CreateBookingIfFree(_ context.Context, b *models.Booking) error {
	for _, ex := range r.bookings {
		if ex.ProfessionalID == b.ProfessionalID &&
			ex.Status != string(domain.StatusCancelled) &&
			ex.StartTime.Before(b.EndTime) && ex.EndTime.After(b.StartTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i := range r.bookings {
		if r.bookings[i].ID == b.ID {
			r.bookings[i] = *b
			r.updates++
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) ListBookingsForPeriod(_ context.Context, id uuid.UUID, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID == id && b.StartTime.Before(end) && b.EndTime.After(start) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBlocksForPeriod(_ context.Context, id uuid.UUID, from, to string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range r.blocks {
		if b.ProfessionalID == id && b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBreaks(_ context.Context, id uuid.UUID) ([]models.Break, error) {
	var out []models.Break
	for _, b := range r.breaks {
		if b.ProfessionalID == id {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeLocker struct {
	mu       sync.Mutex
	held     map[uuid.UUID]bool
	released int
}

func (l *fakeLocker) Acquire(_ context.Context, id uuid.UUID) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held == nil {
		l.held = map[uuid.UUID]bool{}
	}
	if l.held[id] {
		return func() {}, false, nil
	}
	l.held[id] = true

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, id)
		l.released++
	}, true, nil
}

type recordingAuditor struct {
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

func (a *recordingAuditor) actions() []string {
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}
