package calendar

import (
	"time"
)

// SlotClick is what the grid emits when a cell is clicked or long-pressed.
// The host decides whether it means "book here" or "block here".
type SlotClick struct {
	Time      string `json:"time_slot" binding:"required"`
	DayOffset int    `json:"day_offset" binding:"min=0,max=6"`
}

// ResolveSlot turns a clicked cell into the absolute instant it stands for.
func ResolveSlot(weekStart time.Time, click SlotClick) (time.Time, error) {
	if click.DayOffset < 0 || click.DayOffset >= DaysInWeek {
		return time.Time{}, ErrInvalidDayOffset
	}

	tod, err := ParseTimeOfDay(click.Time)
	if err != nil {
		return time.Time{}, err
	}

	day := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day()+click.DayOffset, 0, 0, 0, 0, weekStart.Location())
	return tod.On(day), nil
}
