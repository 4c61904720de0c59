package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cal "github.com/BruksfildServices01/spa-scheduler/internal/domain/calendar"
)

// --------------------------------------------------
// Dates are always read in the spa's timezone
// --------------------------------------------------

func parseDateIn(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation(cal.DateLayout, dateStr, loc)
}

// dateOrToday falls back to today in loc when dateStr is empty.
func dateOrToday(loc *time.Location, now time.Time, dateStr string) (time.Time, error) {
	if dateStr == "" {
		n := now.In(loc)
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc), nil
	}
	return parseDateIn(loc, dateStr)
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// gridFromQuery overrides the configured grid with start_hour / end_hour
// when both are valid.
func gridFromQuery(c *gin.Context, def cal.Grid) (cal.Grid, bool) {
	g := def

	if v := c.Query("start_hour"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return def, false
		}
		g.StartHour = h
	}

	if v := c.Query("end_hour"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return def, false
		}
		g.EndHour = h
	}

	if g.Validate() != nil {
		return def, false
	}
	return g, true
}
