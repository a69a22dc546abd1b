package model

import (
	"time"
)

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
)

// CanTransitionTo reports whether a booking may move from s to next.
// Re-entering the same state is allowed so that approvals stay idempotent.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPending || next == StatusConfirmed
	case StatusConfirmed:
		return next == StatusConfirmed || next == StatusCompleted
	case StatusCompleted:
		return next == StatusCompleted
	default:
		return false
	}
}

// Deletable reports whether a booking in status s may be rejected or removed.
func (s Status) Deletable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// InitialStatus is confirmed for admin requesters, pending otherwise.
func InitialStatus(requester User) Status {
	if requester.IsAdmin() {
		return StatusConfirmed
	}
	return StatusPending
}

type Scope string

const (
	ScopeSingle Scope = "single"
	ScopeSeries Scope = "series"
)

type Booking struct {
	ID            int64     `json:"id" db:"id"`
	RoomID        int64     `json:"roomId" db:"room_id"`
	RoomName      string    `json:"roomName" db:"room_name"`
	RequesterID   int64     `json:"requesterId" db:"requester_id"`
	RequesterName string    `json:"requesterName" db:"requester_name"`
	SeriesCode    *string   `json:"seriesCode,omitempty" db:"series_code"`
	Date          time.Time `json:"date" db:"booking_date"`
	Period        Period    `json:"period" db:"period"`
	StartAt       time.Time `json:"startAt" db:"start_at"`
	EndAt         time.Time `json:"endAt" db:"end_at"`
	Status        Status    `json:"status" db:"status"`
	Note          *string   `json:"note,omitempty" db:"note"`
	Subject       *string   `json:"subject,omitempty" db:"subject"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// NewBooking is a candidate row produced by the series planner.
type NewBooking struct {
	RoomID      int64
	RequesterID int64
	SeriesCode  *string
	Date        time.Time
	Period      Period
	StartAt     time.Time
	EndAt       time.Time
	Status      Status
	Note        *string
	Subject     *string
}

type CreateSeriesRequest struct {
	RoomID    int64    `json:"roomId" validate:"required,gt=0"`
	StartDate Date     `json:"startDate"`
	EndDate   *Date    `json:"endDate,omitempty"`
	Periods   []Period `json:"periods" validate:"required,min=1,max=3,unique,dive,period"`
	Note      string   `json:"note" validate:"max=500"`
	Subject   string   `json:"subject" validate:"max=120"`
}

type SkipReason string

const (
	SkipWeekend  SkipReason = "weekend"
	SkipPast     SkipReason = "past"
	SkipExpired  SkipReason = "expired"
	SkipConflict SkipReason = "conflict"
)

type SkippedSlot struct {
	Date   Date       `json:"date"`
	Period Period     `json:"period"`
	Reason SkipReason `json:"reason"`
}

type CreateSeriesResponse struct {
	CreatedCount int           `json:"createdCount"`
	SeriesCode   *string       `json:"seriesCode,omitempty"`
	Bookings     []Booking     `json:"bookings"`
	Skipped      []SkippedSlot `json:"skipped"`
}

type ApproveRequest struct {
	Scope Scope `json:"scope" validate:"required,oneof=single series"`
}

type RejectRequest struct {
	Scope  Scope  `json:"scope" validate:"required,oneof=single series"`
	Status Status `json:"status" validate:"omitempty,oneof=pending confirmed"`
}

type MutationResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Affected int    `json:"affected"`
}

type SlotAvailability struct {
	Period    Period    `json:"period"`
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Available bool      `json:"available"`
	Expired   bool      `json:"expired"`
	BookingID *int64    `json:"bookingId,omitempty"`
	Status    *Status   `json:"status,omitempty"`
}

type RoomAvailability struct {
	RoomID int64              `json:"roomId"`
	Date   Date               `json:"date"`
	Slots  []SlotAvailability `json:"slots"`
}

type Dashboard struct {
	Bookings       []Booking `json:"bookings"`
	PendingQueue   []Booking `json:"pendingQueue"`
	PendingReports []Booking `json:"pendingReports"`
}

type NoSlotsResponse struct {
	Message string        `json:"message"`
	Skipped []SkippedSlot `json:"skipped"`
}

type ObligationResponse struct {
	Message        string    `json:"message"`
	Redirect       string    `json:"redirect"`
	PendingReports []Booking `json:"pendingReports"`
}

// BookingFilter narrows booking listings, zero values are ignored.
type BookingFilter struct {
	RequesterID *int64
	RoomID      int64
	SeriesCode  string
	Statuses    []Status
	From        *time.Time
	To          *time.Time
}
