package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
	"github.com/BruksfildServices01/spa-scheduler/internal/timezone"
)

type createFixture struct {
	repo    *fakeRepo
	locker  *fakeLocker
	auditor *recordingAuditor
	uc      *CreateBooking
	pro     models.Professional
	massage models.Service
	client  models.Client
}

func newCreateFixture(t *testing.T) *createFixture {
	t.Helper()

	repo := newFakeRepo()
	pro := models.Professional{ID: uuid.New(), Name: "Ana", Role: models.RoleMasseur, Active: true}
	massage := models.Service{ID: uuid.New(), Name: "Massage", DurationMin: 60, Active: true}
	repo.professionals[pro.ID] = pro
	client := models.Client{ID: uuid.New(), Name: "Marta"}
	repo.services[massage.ID] = massage
	repo.clients[client.ID] = client

	locker := &fakeLocker{}
	auditor := &recordingAuditor{}
	clock := timezone.FixedClock{At: time.Date(2026, 10, 12, 7, 0, 0, 0, time.UTC)}
	grid := cal.Grid{StartHour: 8, EndHour: 20}

	return &createFixture{
		repo:    repo,
		locker:  locker,
		auditor: auditor,
		uc:      NewCreateBooking(repo, locker, auditor, clock, time.UTC, grid, zap.NewNop()),
		pro:     pro,
		massage: massage,
		client:  client,
	}
}

func (f *createFixture) input(date, hm string) CreateBookingInput {
	return CreateBookingInput{
		ProfessionalID: f.pro.ID,
		ClientID:       f.client.ID,
		ServiceID:      f.massage.ID,
		Date:           date,
		Time:           hm,
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	f := newCreateFixture(t)

	b, err := f.uc.Execute(context.Background(), f.input("2026-10-13", "09:00"))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if b.Status != string(domain.StatusPending) {
		t.Fatalf("status = %s, want PENDING", b.Status)
	}
	if b.EndTime.Sub(b.StartTime) != time.Hour {
		t.Fatalf("duration = %s, want 1h", b.EndTime.Sub(b.StartTime))
	}
	if b.PaymentStatus == nil || *b.PaymentStatus != string(domain.PaymentUnpaid) {
		t.Fatalf("payment status = %v", b.PaymentStatus)
	}
	if f.locker.released != 1 {
		t.Fatalf("lock released %d times, want 1", f.locker.released)
	}
	if got := f.auditor.actions(); len(got) != 1 || got[0] != "booking_created" {
		t.Fatalf("audit actions = %v", got)
	}
}

func TestCreateBookingRejections(t *testing.T) {
	cases := []struct {
		name  string
		setup func(f *createFixture)
		date  string
		hm    string
		code  string
	}{
		{
			name: "in the past",
			date: "2026-10-12", hm: "06:00",
			code: "too_soon",
		},
		{
			name: "bad time",
			date: "2026-10-13", hm: "9h",
			code: "invalid_date_or_time",
		},
		{
			name: "whole day block",
			setup: func(f *createFixture) {
				f.repo.blocks = append(f.repo.blocks, models.AvailabilityBlock{ProfessionalID: f.pro.ID, Date: "2026-10-13"})
			},
			date: "2026-10-13", hm: "09:00",
			code: "slot_blocked",
		},
		{
			name: "lunch break",
			setup: func(f *createFixture) {
				f.repo.breaks = append(f.repo.breaks, models.Break{ProfessionalID: f.pro.ID, StartTime: "12:00", EndTime: "13:00"})
			},
			date: "2026-10-13", hm: "11:30",
			code: "slot_on_break",
		},
		{
			name: "existing booking",
			setup: func(f *createFixture) {
				f.repo.bookings = append(f.repo.bookings, models.Booking{
					ID:             uuid.New(),
					ProfessionalID: f.pro.ID,
					StartTime:      time.Date(2026, 10, 13, 9, 30, 0, 0, time.UTC),
					EndTime:        time.Date(2026, 10, 13, 10, 0, 0, 0, time.UTC),
					Status:         string(domain.StatusConfirmed),
				})
			},
			date: "2026-10-13", hm: "09:00",
			code: "time_conflict",
		},
		{
			name: "lock held",
			setup: func(f *createFixture) {
				f.locker.Acquire(context.Background(), f.pro.ID)
			},
			date: "2026-10-13", hm: "09:00",
			code: "booking_locked",
		},
		{
			name: "before opening",
			date: "2026-10-13", hm: "02:00",
			code: "outside_working_hours",
		},
		{
			name: "runs past closing",
			date: "2026-10-13", hm: "19:30",
			code: "outside_working_hours",
		},
		{
			name: "crosses midnight",
			date: "2026-10-13", hm: "23:30",
			code: "outside_working_hours",
		},
		{
			name: "unknown client",
			setup: func(f *createFixture) {
				delete(f.repo.clients, f.client.ID)
			},
			date: "2026-10-13", hm: "09:00",
			code: "client_not_found",
		},
		{
			name: "inactive professional",
			setup: func(f *createFixture) {
				p := f.pro
				p.Active = false
				f.repo.professionals[p.ID] = p
			},
			date: "2026-10-13", hm: "09:00",
			code: "professional_not_found",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			f := newCreateFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.uc.Execute(context.Background(), f.input(tt.date, tt.hm))
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCreateBookingOverCancelled(t *testing.T) {
	f := newCreateFixture(t)
	f.repo.bookings = append(f.repo.bookings, models.Booking{
		ID:             uuid.New(),
		ProfessionalID: f.pro.ID,
		StartTime:      time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2026, 10, 13, 10, 0, 0, 0, time.UTC),
		Status:         string(domain.StatusCancelled),
	})

	if _, err := f.uc.Execute(context.Background(), f.input("2026-10-13", "09:00")); err != nil {
		t.Fatalf("cancelled booking must not block the slot: %v", err)
	}
}

func TestCreateBookingBackToBack(t *testing.T) {
	f := newCreateFixture(t)

	if _, err := f.uc.Execute(context.Background(), f.input("2026-10-13", "09:00")); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := f.uc.Execute(context.Background(), f.input("2026-10-13", "10:00")); err != nil {
		t.Fatalf("adjacent booking: %v", err)
	}
	if _, err := f.uc.Execute(context.Background(), f.input("2026-10-13", "09:30")); !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("overlapping booking: err=%v, want time_conflict", err)
	}
}

func TestCreateBookingLastSlotOfTheDay(t *testing.T) {
	f := newCreateFixture(t)

	b, err := f.uc.Execute(context.Background(), f.input("2026-10-13", "19:00"))
	if err != nil {
		t.Fatalf("booking ending at closing time: %v", err)
	}
	if b.EndTime.Hour() != 20 || b.EndTime.Minute() != 0 {
		t.Fatalf("end = %s, want 20:00", b.EndTime)
	}
}
