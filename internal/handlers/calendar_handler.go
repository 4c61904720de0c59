package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/spa-scheduler/internal/timezone"
	ucCalendar "github.com/BruksfildServices01/spa-scheduler/internal/usecase/calendar"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	getWeek         *ucCalendar.GetWeek
	resolveSlot     *ucCalendar.ResolveSlot
	getAvailability *ucCalendar.GetAvailability

	grid  cal.Grid
	loc   *time.Location
	clock timezone.Clock
}

func NewCalendarHandler(
	getWeek *ucCalendar.GetWeek,
	resolveSlot *ucCalendar.ResolveSlot,
	getAvailability *ucCalendar.GetAvailability,
	grid cal.Grid,
	loc *time.Location,
	clock timezone.Clock,
) *CalendarHandler {
	return &CalendarHandler{
		getWeek:         getWeek,
		resolveSlot:     resolveSlot,
		getAvailability: getAvailability,
		grid:            grid,
		loc:             loc,
		clock:           clock,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SlotClickRequest struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	WeekOf         string `json:"week_of"`
	cal.SlotClick
}

// ======================================================
// GRID
// ======================================================

func (h *CalendarHandler) Grid(c *gin.Context) {
	grid, ok := gridFromQuery(c, h.grid)
	if !ok {
		httperr.BadRequest(c, "invalid_grid", "Invalid calendar hours.")
		return
	}

	httpresp.OK(c, gin.H{
		"grid":         grid,
		"slots":        grid.Slots(),
		"slot_minutes": cal.SlotMinutes,
		"slot_height":  cal.SlotHeight,
	})
}

// ======================================================
// WEEK
// ======================================================

func (h *CalendarHandler) Week(c *gin.Context) {
	ref, err := dateOrToday(h.loc, h.clock.Now(), c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	raw := c.QueryArray("professional_id")
	if len(raw) == 0 {
		httperr.BadRequest(c, "missing_professional_id", "At least one professional is required.")
		return
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_professional_id", "Invalid professional id.")
			return
		}
		ids = append(ids, id)
	}

	grid, ok := gridFromQuery(c, h.grid)
	if !ok {
		httperr.BadRequest(c, "invalid_grid", "Invalid calendar hours.")
		return
	}

	views, err := h.getWeek.Execute(c.Request.Context(), ucCalendar.GetWeekInput{
		Reference:       ref,
		ProfessionalIDs: ids,
		Grid:            grid,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_week")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// SLOT CLICK
// ======================================================

func (h *CalendarHandler) SlotClick(c *gin.Context) {
	var req SlotClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	proID, err := uuid.Parse(req.ProfessionalID)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Invalid professional id.")
		return
	}

	weekOf, err := dateOrToday(h.loc, h.clock.Now(), req.WeekOf)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	res, err := h.resolveSlot.Execute(c.Request.Context(), proID, weekOf, req.SlotClick)
	if err != nil {
		httperr.FromError(c, err, "failed_to_resolve_slot")
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *CalendarHandler) Availability(c *gin.Context) {
	proID, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_professional_id", "Invalid professional id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDateIn(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration", strconv.Itoa(cal.SlotMinutes)))
	if err != nil || duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Invalid duration.")
		return
	}

	grid, ok := gridFromQuery(c, h.grid)
	if !ok {
		httperr.BadRequest(c, "invalid_grid", "Invalid calendar hours.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), ucCalendar.AvailabilityInput{
		ProfessionalID:  proID,
		Date:            date,
		DurationMinutes: duration,
		Grid:            grid,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_availability")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
