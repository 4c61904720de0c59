package handlers

import (
	"errors"

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

type auditor interface {
	Dispatch(ev audit.Event)
}

// ======================================================
// HANDLER
// ======================================================

type BlockHandler struct {
	db    *gorm.DB
	audit auditor
}

func NewBlockHandler(db *gorm.DB, audit auditor) *BlockHandler {
	return &BlockHandler{db: db, audit: audit}
}

type CreateBlockRequest struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Reason    string  `json:"reason"`
}

// newBlock validates the request and normalises its times to "HH:mm".
func newBlock(professionalID uuid.UUID, req CreateBlockRequest) (models.AvailabilityBlock, error) {
	b := models.AvailabilityBlock{
		ProfessionalID: professionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Reason:         req.Reason,
	}

	if err := converter.BlockToCalendar(b).Validate(); err != nil {
		return b, httperr.ErrBusiness("invalid_block")
	}

	if b.StartTime != nil {
		start, _ := cal.ParseTimeOfDay(*b.StartTime)
		end, _ := cal.ParseTimeOfDay(*b.EndTime)
		s, e := start.String(), end.String()
		b.StartTime, b.EndTime = &s, &e
	}

	return b, nil
}

func professionalExists(db *gorm.DB, id uuid.UUID) error {
	var pro models.Professional
	err := db.Select("id").Where("id = ?", id).First(&pro).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness("professional_not_found")
	}
	return err
}

// ======================================================
// LIST
// ======================================================

func (h *BlockHandler) List(c *gin.Context) {
	proID, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_professional_id", "Invalid professional id.")
		return
	}

	q := h.db.Where("professional_id = ?", proID)
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var blocks []models.AvailabilityBlock
	if err := q.Order("date ASC, start_time ASC").Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocks", "Could not list blocks.")
		return
	}

	httpresp.List(c, blocks)
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockHandler) Create(c *gin.Context) {
	proID, ok := uuidParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_professional_id", "Invalid professional id.")
		return
	}

	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	block, err := newBlock(proID, req)
	if err != nil {
		httperr.FromError(c, err, "invalid_block")
		return
	}

	if err := professionalExists(h.db, proID); err != nil {
		httperr.FromError(c, err, "failed_to_create_block")
		return
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Could not create block.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "block_created",
		Entity:   "availability_block",
		EntityID: &block.ID,
		Metadata: map[string]any{"date": block.Date, "whole_day": block.StartTime == nil},
	})

	httpresp.Created(c, block)
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		httperr.NotFound(c, "block_not_found", "Availability block not found.")
		return
	}

	res := h.db.Where("id = ?", id).Delete(&models.AvailabilityBlock{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_block", "Could not delete block.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "block_not_found", "Availability block not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "block_deleted",
		Entity:   "availability_block",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}
