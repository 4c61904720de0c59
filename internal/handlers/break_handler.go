package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/spa-scheduler/internal/audit"
	"github.com/BruksfildServices01/spa-scheduler/internal/converter"
	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/spa-scheduler/internal/httperr"
	"github.com/BruksfildServices01/spa-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/spa-scheduler/internal/models"
)

type BreakHandler struct {
	db    *gorm.DB
	audit auditor
}

func NewBreakHandler(db *gorm.DB, audit auditor) *BreakHandler {
	return &BreakHandler{db: db, audit: audit}
}

type CreateBreakRequest struct {
	DayOfWeek *int   `json:"day_of_week"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Label     string `json:"label"`
}

func newBreak(professionalID uuid.UUID, req CreateBreakRequest) (models.Break, error) {
	br := models.Break{
		ProfessionalID: professionalID,
		DayOfWeek:      req.DayOfWeek,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Label:          req.Label,
	}

	if err := converter.BreakToCalendar(br).Validate(); err != nil {
		return br, httperr.ErrBusiness("invalid_break")
	}

	start, _ := cal.ParseTimeOfDay(br.StartTime)
	end, _ := cal.ParseTimeOfDay(br.EndTime)
	br.StartTime, br.EndTime = start.String(), end.String()

	return br, nil
}

func (h *BreakHandler) List(c *gin.Context) {
	proID, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_professional_id", "Invalid professional id.")
		return
	}

	var breaks []models.Break
	if err := h.db.
		Where("professional_id = ?", proID).
		Order("day_of_week ASC NULLS FIRST, start_time ASC").
		Find(&breaks).Error; err != nil {

		httperr.Internal(c, "failed_to_list_breaks", "Could not list breaks.")
		return
	}

	httpresp.List(c, breaks)
}

func (h *BreakHandler) Create(c *gin.Context) {
	proID, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_professional_id", "Invalid professional id.")
		return
	}

	var req CreateBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	br, err := newBreak(proID, req)
	if err != nil {
		httperr.FromError(c, err, "invalid_break")
		return
	}

	if err := professionalExists(h.db, proID); err != nil {
		httperr.FromError(c, err, "failed_to_create_break")
		return
	}

	if err := h.db.Create(&br).Error; err != nil {
		httperr.Internal(c, "failed_to_create_break", "Could not create break.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "break_created",
		Entity:   "break",
		EntityID: &br.ID,
	})

	httpresp.Created(c, br)
}

func (h *BreakHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.NotFound(c, "break_not_found", "Break not found.")
		return
	}

	res := h.db.Where("id = ?", id).Delete(&models.Break{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_break", "Could not delete break.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "break_not_found", "Break not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "break_deleted",
		Entity:   "break",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}
