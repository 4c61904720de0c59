package booking

import (
	"strings"

	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusArrived    Status = "ARRIVED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusNoShow     Status = "NO_SHOW"
)

// legacy spelling still sent by older front ends
const statusClientArrived = "CLIENT_ARRIVED"

// AllStatuses lists every member of the enumeration in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusArrived,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
		StatusNoShow,
	}
}

func ParseStatus(raw string) (Status, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == statusClientArrived {
		return StatusArrived, nil
	}

	for _, st := range AllStatuses() {
		if string(st) == s {
			return st, nil
		}
	}

	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

var forward = map[Status]Status{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusArrived,
	StatusArrived:    StatusInProgress,
	StatusInProgress: StatusCompleted,
}

// CanTransition reports whether a booking may move from one status to another.
// CANCELLED and NO_SHOW are reachable from every non-terminal status.
func CanTransition(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}

	if to == StatusCancelled || to == StatusNoShow {
		return true
	}

	next, ok := forward[from]
	return ok && next == to
}

// ValidateTransition returns a business error when the move is not allowed.
func ValidateTransition(from, to Status) error {
	if from.IsTerminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	if !CanTransition(from, to) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Display
// ===============================

type Display struct {
	Color      string `json:"color"`
	Background string `json:"background"`
	Label      string `json:"label"`
}

// Display is the single status → color/label table used by every view.
func (s Status) Display() Display {
	switch s {
	case StatusPending:
		return Display{Color: "#92400E", Background: "#FEF3C7", Label: "Pending"}
	case StatusConfirmed:
		return Display{Color: "#1E40AF", Background: "#DBEAFE", Label: "Confirmed"}
	case StatusArrived:
		return Display{Color: "#5B21B6", Background: "#EDE9FE", Label: "Client arrived"}
	case StatusInProgress:
		return Display{Color: "#065F46", Background: "#D1FAE5", Label: "In progress"}
	case StatusCompleted:
		return Display{Color: "#374151", Background: "#E5E7EB", Label: "Completed"}
	case StatusCancelled:
		return Display{Color: "#991B1B", Background: "#FEE2E2", Label: "Cancelled"}
	case StatusNoShow:
		return Display{Color: "#9A3412", Background: "#FFEDD5", Label: "No-show"}
	}
	return Display{Color: "#374151", Background: "#F3F4F6", Label: string(s)}
}

// ===============================
// Payment
// ===============================

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}
