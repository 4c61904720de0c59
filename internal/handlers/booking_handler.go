package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/spa-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/spa-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	changeStatus *ucBooking.ChangeBookingStatus
	get          *ucBooking.GetBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	changeStatus *ucBooking.ChangeBookingStatus,
	get *ucBooking.GetBooking,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		changeStatus: changeStatus,
		get:          get,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	ClientID       string `json:"client_id" binding:"required"`
	ServiceID      string `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	proID, err1 := uuid.Parse(req.ProfessionalID)
	clientID, err2 := uuid.Parse(req.ClientID)
	serviceID, err3 := uuid.Parse(req.ServiceID)
	if err1 != nil || err2 != nil || err3 != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid id.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ProfessionalID: proID,
		ClientID:       clientID,
		ServiceID:      serviceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_booking")
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// GET (booking click)
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	details, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_booking")
		return
	}

	httpresp.OK(c, details)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	to, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.FromError(c, err, "invalid_status")
		return
	}

	b, err := h.changeStatus.Execute(c.Request.Context(), id, to)
	if err != nil {
		httperr.FromError(c, err, "failed_to_change_status")
		return
	}

	httpresp.OK(c, b)
}
