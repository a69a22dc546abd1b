package model

import (
	"time"
)

type Conformance string

const (
	ConformanceAll        Conformance = "all"
	ConformanceConform    Conformance = "conform"
	ConformanceNonConform Conformance = "nonconform"
)

const (
	EquipmentStatusOK     = "ok"
	ChecklistPendingRoute = "/api/v1/checklists/pending"
)

type SubmitChecklistRequest struct {
	BookingID     int64  `json:"bookingId" validate:"omitempty,gt=0"`
	SeriesCode    string `json:"seriesCode" validate:"omitempty,uuid"`
	MaterialOK    *bool  `json:"materialOk" validate:"required"`
	CleanlinessOK *bool  `json:"cleanlinessOk" validate:"required"`
	Note          string `json:"note" validate:"max=1000"`
}

type SubmitChecklistResponse struct {
	Completed  int     `json:"completed"`
	BookingIDs []int64 `json:"bookingIds"`
}

type ChecklistSummary struct {
	ID            int64     `json:"id" db:"id"`
	BookingID     int64     `json:"bookingId" db:"booking_id"`
	RoomID        int64     `json:"roomId" db:"room_id"`
	RoomName      string    `json:"roomName" db:"room_name"`
	RequesterName string    `json:"requesterName" db:"requester_name"`
	AuthorName    string    `json:"authorName" db:"author_name"`
	SeriesCode    *string   `json:"seriesCode,omitempty" db:"series_code"`
	Period        Period    `json:"period" db:"period"`
	StartAt       time.Time `json:"startAt" db:"start_at"`
	MaterialOK    bool      `json:"materialOk" db:"material_ok"`
	CleanlinessOK bool      `json:"cleanlinessOk" db:"cleanliness_ok"`
	Note          string    `json:"note" db:"note"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

func (c ChecklistSummary) Conform() bool {
	return c.MaterialOK && c.CleanlinessOK
}

type EquipmentStatus struct {
	Equipment `json:",inline"`
	Status    string `json:"status"`
}

// ChecklistDetail lists the room's current inventory, per item condition is not stored.
type ChecklistDetail struct {
	ChecklistSummary `json:",inline"`
	Equipment        []EquipmentStatus `json:"equipment"`
}

type HistoryFilter struct {
	Search      string
	RoomID      int64
	Date        *time.Time
	Conformance Conformance
	Page        int
	Size        int
}

type ListChecklists struct {
	Paging `json:",inline"`
	Items  []ChecklistSummary `json:"items"`
}

// ChecklistSubmission targets either one booking or the eligible members of a series.
type ChecklistSubmission struct {
	BookingID     int64
	SeriesCode    string
	AuthorID      int64
	MaterialOK    bool
	CleanlinessOK bool
	Note          string
	Now           time.Time
}
