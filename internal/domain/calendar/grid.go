package calendar

import (
	"fmt"
	"time"
)

// ===============================
// Time grid
// ===============================

type Grid struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

func (g Grid) Validate() error {
	if g.StartHour < 0 || g.EndHour > 24 || g.StartHour >= g.EndHour {
		return fmt.Errorf("calendar: invalid grid %02d:00-%02d:00", g.StartHour, g.EndHour)
	}
	return nil
}

func (g Grid) Start() TimeOfDay { return TimeOfDay(g.StartHour * 60) }
func (g Grid) End() TimeOfDay   { return TimeOfDay(g.EndHour * 60) }

// Offset is the pixel distance of t from the top of the grid.
func (g Grid) Offset(t TimeOfDay) float64 {
	return float64(t-g.Start()) / SlotMinutes * SlotHeight
}

type TimeSlot struct {
	Label  string `json:"label"`
	IsHour bool   `json:"is_hour"`
}

// GenerateTimeSlots returns 2*(endHour-startHour)+1 half-hour markers from
// startHour:00 through endHour:00.
func GenerateTimeSlots(startHour, endHour int) []TimeSlot {
	if endHour < startHour {
		return []TimeSlot{}
	}

	slots := make([]TimeSlot, 0, 2*(endHour-startHour)+1)
	for t := TimeOfDay(startHour * 60); t <= TimeOfDay(endHour*60); t += SlotMinutes {
		slots = append(slots, TimeSlot{
			Label:  t.String(),
			IsHour: t.Minute() == 0,
		})
	}
	return slots
}

func (g Grid) Slots() []TimeSlot {
	return GenerateTimeSlots(g.StartHour, g.EndHour)
}

// ===============================
// Week
// ===============================

// MondayIndex maps t's weekday to 0 = Monday … 6 = Sunday.
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekStart returns midnight of the Monday of ref's ISO week, in ref's location.
func WeekStart(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day()-MondayIndex(ref), 0, 0, 0, 0, ref.Location())
}

func WeekDays(ref time.Time) [DaysInWeek]time.Time {
	monday := WeekStart(ref)

	var days [DaysInWeek]time.Time
	for i := range days {
		days[i] = time.Date(monday.Year(), monday.Month(), monday.Day()+i, 0, 0, 0, 0, monday.Location())
	}
	return days
}

// DayOffset is the whole calendar-day difference between t and weekStart,
// measured on the dates in weekStart's location.
func DayOffset(t, weekStart time.Time) int {
	t = t.In(weekStart.Location())
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}

func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
