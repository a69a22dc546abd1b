package planner

import (
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
)

type slotKey struct {
	roomID int64
	date   time.Time
	period model.Period
}

func keyOf(roomID int64, date time.Time, p model.Period) slotKey {
	return slotKey{roomID: roomID, date: slot.Day(date), period: p}
}

// Occupancy indexes active bookings by (room, date, period).
// Status is ignored, every stored booking holds its slot.
type Occupancy map[slotKey]struct{}

func NewOccupancy(existing []model.Booking) Occupancy {
	o := make(Occupancy, len(existing))
	for _, b := range existing {
		o.add(b.RoomID, b.Date, b.Period)
	}
	return o
}

func (o Occupancy) Taken(roomID int64, date time.Time, p model.Period) bool {
	_, ok := o[keyOf(roomID, date, p)]
	return ok
}

func (o Occupancy) add(roomID int64, date time.Time, p model.Period) {
	o[keyOf(roomID, date, p)] = struct{}{}
}

// IsAvailable reports whether no booking in existing holds the same slot of roomID.
func IsAvailable(existing []model.Booking, roomID int64, date time.Time, p model.Period) bool {
	for _, b := range existing {
		if b.RoomID == roomID && b.Period == p && slot.Day(b.Date).Equal(slot.Day(date)) {
			return false
		}
	}
	return true
}
