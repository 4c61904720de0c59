package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  Status
		to    Status
		valid bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusArrived, true},
		{StatusArrived, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusPending, StatusArrived, false},
		{StatusConfirmed, StatusCompleted, false},
		{StatusInProgress, StatusConfirmed, false},
		{StatusPending, StatusCancelled, true},
		{StatusArrived, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusInProgress, StatusNoShow, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusCancelled, false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%s, %s)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"PENDING", StatusPending, true},
		{"in_progress", StatusInProgress, true},
		{" confirmed ", StatusConfirmed, true},
		{"CLIENT_ARRIVED", StatusArrived, true},
		{"ARRIVED", StatusArrived, true},
		{"scheduled", "", false},
		{"", "", false},
	}

	for _, tt := range cases {
		got, err := ParseStatus(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseStatus(%q) err=%v, want ok=%v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Fatalf("ParseStatus(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayCoversEveryStatus(t *testing.T) {
	seen := map[string]Status{}

	for _, s := range AllStatuses() {
		d := s.Display()
		if d.Label == string(s) || d.Color == "" || d.Background == "" {
			t.Fatalf("status %s has no display entry: %+v", s, d)
		}
		if prev, dup := seen[d.Background]; dup {
			t.Fatalf("statuses %s and %s share background %s", prev, s, d.Background)
		}
		seen[d.Background] = s
	}
}

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	b := &models.Booking{Status: string(StatusInProgress)}
	if err := Complete(b, now); err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if b.Status != string(StatusCompleted) || b.CompletedAt == nil || !b.CompletedAt.Equal(now) {
		t.Fatalf("unexpected booking after complete: %+v", b)
	}

	c := &models.Booking{Status: string(StatusPending)}
	if err := Cancel(c, now); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if c.CancelledAt == nil {
		t.Fatalf("cancelled_at not set")
	}

	if err := Cancel(c, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("cancelling twice: err=%v, want invalid_state", err)
	}

	d := &models.Booking{Status: string(StatusPending)}
	if err := Complete(d, now); !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("completing pending: err=%v, want invalid_transition", err)
	}
	if d.Status != string(StatusPending) || d.CompletedAt != nil {
		t.Fatalf("rejected transition mutated booking: %+v", d)
	}
}
