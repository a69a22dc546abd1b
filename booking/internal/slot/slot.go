// Package slot maps calendar days onto the institution-wide period grid.
package slot

import (
	"fmt"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/model"
)

type window struct {
	startHour, endHour int
	// viewCutoff hides a period of today from availability views.
	viewCutoff int
	// createCutoff rejects new bookings of today's period.
	createCutoff int
}

var grid = map[model.Period]window{
	model.PeriodMorning:   {startHour: 8, endHour: 12, viewCutoff: 12, createCutoff: 12},
	model.PeriodAfternoon: {startHour: 13, endHour: 17, viewCutoff: 18, createCutoff: 18},
	model.PeriodEvening:   {startHour: 19, endHour: 23, viewCutoff: 21, createCutoff: 22},
}

var ordered = []model.Period{model.PeriodMorning, model.PeriodAfternoon, model.PeriodEvening}

// Periods returns the daily grid in chronological order.
func Periods() []model.Period {
	out := make([]model.Period, len(ordered))
	copy(out, ordered)
	return out
}

func ParsePeriod(s string) (model.Period, error) {
	p := model.Period(s)
	if _, ok := grid[p]; !ok {
		return "", fmt.Errorf("unknown period %q", s)
	}
	return p, nil
}

func Valid(p model.Period) bool {
	_, ok := grid[p]
	return ok
}

type Calendar struct {
	loc *time.Location
}

// New returns a Calendar in loc, nil means UTC.
func New(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc}
}

// Day truncates t to its civil date. Dates are carried as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the civil date of now in the calendar's zone.
func (c *Calendar) Today(now time.Time) time.Time {
	return Day(now.In(c.loc))
}

// IntervalFor returns the [start, end) of period p on date in local time.
// Unknown periods yield a zero interval.
func (c *Calendar) IntervalFor(date time.Time, p model.Period) (start, end time.Time) {
	w, ok := grid[p]
	if !ok {
		return time.Time{}, time.Time{}
	}
	y, m, d := date.Date()
	start = time.Date(y, m, d, w.startHour, 0, 0, 0, c.loc)
	end = time.Date(y, m, d, w.endHour, 0, 0, 0, c.loc)
	return start, end
}

// IsPeriodExpired uses the viewing cutoff.
func (c *Calendar) IsPeriodExpired(date time.Time, p model.Period, now time.Time) bool {
	return c.expired(date, grid[p].viewCutoff, now)
}

// IsCreationExpired uses the creation cutoff, one hour later than viewing for the evening.
func (c *Calendar) IsCreationExpired(date time.Time, p model.Period, now time.Time) bool {
	return c.expired(date, grid[p].createCutoff, now)
}

func (c *Calendar) IsPast(date, now time.Time) bool {
	return Day(date).Before(c.Today(now))
}

func (c *Calendar) expired(date time.Time, cutoff int, now time.Time) bool {
	day, today := Day(date), c.Today(now)
	switch {
	case day.Before(today):
		return true
	case day.After(today):
		return false
	default:
		return now.In(c.loc).Hour() >= cutoff
	}
}

func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
