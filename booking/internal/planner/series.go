// Package planner turns a booking request into the set of slots to persist.
package planner

import (
	"strings"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
	"github.com/google/uuid"
)

type Request struct {
	RoomID    int64
	StartDate time.Time
	// EndDate before StartDate is treated as StartDate.
	EndDate   time.Time
	Periods   []model.Period
	Note      string
	Subject   string
	Requester model.User
}

type Plan struct {
	Candidates []model.NewBooking
	Skipped    []model.SkippedSlot
	// SeriesCode is set only when more than one candidate was produced.
	SeriesCode *string
}

type Expander struct {
	cal     *slot.Calendar
	newCode func() string
}

func NewExpander(cal *slot.Calendar) *Expander {
	return &Expander{
		cal:     cal,
		newCode: func() string { return uuid.NewString() },
	}
}

// Expand walks every weekday of the request range and keeps the selected
// periods that are still bookable and free in the existing snapshot.
func (e *Expander) Expand(req Request, existing []model.Booking, now time.Time) (Plan, error) {
	start, end := slot.Day(req.StartDate), slot.Day(req.EndDate)
	if end.Before(start) {
		end = start
	}
	selected := make(map[model.Period]bool, len(req.Periods))
	for _, p := range req.Periods {
		selected[p] = true
	}
	occupied := NewOccupancy(existing)
	status := model.InitialStatus(req.Requester)
	note, subject := optional(req.Note), optional(req.Subject)

	var plan Plan
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for _, p := range slot.Periods() {
			if !selected[p] {
				continue
			}
			if reason, skip := e.skipReason(req.RoomID, day, p, occupied, now); skip {
				plan.Skipped = append(plan.Skipped, model.SkippedSlot{Date: model.Date{Time: day}, Period: p, Reason: reason})
				continue
			}
			startAt, endAt := e.cal.IntervalFor(day, p)
			plan.Candidates = append(plan.Candidates, model.NewBooking{
				RoomID:      req.RoomID,
				RequesterID: req.Requester.ID,
				Date:        day,
				Period:      p,
				StartAt:     startAt,
				EndAt:       endAt,
				Status:      status,
				Note:        note,
				Subject:     subject,
			})
		}
	}

	if len(plan.Candidates) == 0 {
		return plan, errs.ErrNoSlotsAvailable
	}
	if len(plan.Candidates) > 1 {
		code := e.newCode()
		plan.SeriesCode = &code
		for i := range plan.Candidates {
			plan.Candidates[i].SeriesCode = &code
		}
	}
	return plan, nil
}

func (e *Expander) skipReason(roomID int64, day time.Time, p model.Period, occupied Occupancy, now time.Time) (model.SkipReason, bool) {
	switch {
	case slot.IsWeekend(day):
		return model.SkipWeekend, true
	case e.cal.IsPast(day, now):
		return model.SkipPast, true
	case e.cal.IsCreationExpired(day, p, now):
		return model.SkipExpired, true
	case occupied.Taken(roomID, day, p):
		return model.SkipConflict, true
	default:
		return "", false
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
