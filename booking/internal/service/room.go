package service

import (
	"context"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/planner"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
)

func (s *Service) ListRooms(ctx context.Context, page, size int) (model.ListRooms, error) {
	page, size = normalizePaging(page, size)
	return s.repo.ListRooms(ctx, page, size)
}

func (s *Service) RoomEquipment(ctx context.Context, roomID int64) ([]model.Equipment, error) {
	if _, err := s.repo.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.repo.ListEquipment(ctx, roomID)
}

// RoomAvailability shows every period of date for roomID. Periods of today
// past the viewing cutoff are reported as expired.
func (s *Service) RoomAvailability(ctx context.Context, roomID int64, date time.Time) (model.RoomAvailability, error) {
	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return model.RoomAvailability{}, err
	}
	day := slot.Day(date)
	booked, err := s.repo.ListBookings(ctx, model.BookingFilter{RoomID: room.ID, From: &day, To: &day})
	if err != nil {
		return model.RoomAvailability{}, wrap(err, "bookings")
	}
	now := s.now()

	out := model.RoomAvailability{RoomID: room.ID, Date: model.Date{Time: day}}
	for _, p := range slot.Periods() {
		start, end := s.cal.IntervalFor(day, p)
		sa := model.SlotAvailability{
			Period:  p,
			StartAt: start,
			EndAt:   end,
			Expired: s.cal.IsPeriodExpired(day, p, now),
		}
		for i := range booked {
			if booked[i].Period == p {
				sa.BookingID = &booked[i].ID
				sa.Status = &booked[i].Status
				break
			}
		}
		sa.Available = room.Active && !sa.Expired && planner.IsAvailable(booked, room.ID, day, p)
		out.Slots = append(out.Slots, sa)
	}
	return out, nil
}
