package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// ======================================================
// BUSINESS → HTTP
// ======================================================

var businessStatus = map[string]int{
	"booking_not_found":      http.StatusNotFound,
	"professional_not_found": http.StatusNotFound,
	"service_not_found":      http.StatusNotFound,
	"client_not_found":       http.StatusNotFound,
	"block_not_found":        http.StatusNotFound,
	"break_not_found":        http.StatusNotFound,
	"time_conflict":          http.StatusConflict,
	"slot_blocked":           http.StatusConflict,
	"slot_on_break":          http.StatusConflict,
	"booking_locked":         http.StatusConflict,
	"outside_working_hours":  http.StatusBadRequest,
}

var businessMessage = map[string]string{
	"booking_not_found":        "Booking not found.",
	"professional_not_found":   "Professional not found.",
	"service_not_found":        "Service not found.",
	"client_not_found":         "Client not found.",
	"block_not_found":          "Availability block not found.",
	"break_not_found":          "Break not found.",
	"time_conflict":            "The professional already has a booking at this time.",
	"slot_blocked":             "The professional is unavailable at this time.",
	"slot_on_break":            "The professional is on a break at this time.",
	"booking_locked":           "Another booking for this professional is being saved. Try again.",
	"invalid_state":            "Booking can no longer change status.",
	"invalid_transition":       "Status change not allowed.",
	"invalid_status":           "Unknown status.",
	"invalid_block":            "Invalid availability block.",
	"invalid_break":            "Invalid break.",
	"invalid_date_or_time":     "Invalid date or time.",
	"too_soon":                 "Bookings cannot start in the past.",
	"outside_working_hours":    "Outside the spa's opening hours.",
	"invalid_service_duration": "Service has no duration.",
}

// FromError writes a business error with its mapped status, or a 500 with
// fallbackCode for anything else.
func FromError(c *gin.Context, err error, fallbackCode string) {
	code, ok := BusinessCode(err)
	if !ok {
		Internal(c, fallbackCode, "Unexpected error.")
		return
	}

	status, found := businessStatus[code]
	if !found {
		status = http.StatusBadRequest
	}

	msg, found := businessMessage[code]
	if !found {
		msg = code
	}

	Write(c, status, code, msg)
}
