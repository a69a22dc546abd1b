package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/lab-booking/booking/internal/cache"
	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/planner"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (s *Service) ListBookings(ctx context.Context) ([]model.Booking, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return nil, err
	}
	return cache.GetOrLoad(s.cache, cache.KeyAllBookings, func() ([]model.Booking, error) {
		return s.repo.ListBookings(ctx, model.BookingFilter{})
	})
}

// MyBookings filters by requester id, never by display name.
func (s *Service) MyBookings(ctx context.Context) ([]model.Booking, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.myBookings(ctx, u)
}

func (s *Service) myBookings(ctx context.Context, u model.User) ([]model.Booking, error) {
	return cache.GetOrLoad(s.cache, cache.KeyMine(u.ID), func() ([]model.Booking, error) {
		return s.repo.ListBookings(ctx, model.BookingFilter{RequesterID: &u.ID})
	})
}

func (s *Service) PendingQueue(ctx context.Context) ([]model.Booking, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.pendingQueue(ctx)
}

func (s *Service) pendingQueue(ctx context.Context) ([]model.Booking, error) {
	return cache.GetOrLoad(s.cache, cache.KeyPending, func() ([]model.Booking, error) {
		return s.repo.ListBookings(ctx, model.BookingFilter{Statuses: []model.Status{model.StatusPending}})
	})
}

// Dashboard loads the caller's bookings, the approval queue for admins and
// the caller's pending checklist reports concurrently.
func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return model.Dashboard{}, err
	}
	var d model.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if u.IsAdmin() {
			d.Bookings, err = cache.GetOrLoad(s.cache, cache.KeyAllBookings, func() ([]model.Booking, error) {
				return s.repo.ListBookings(gctx, model.BookingFilter{})
			})
			return err
		}
		d.Bookings, err = s.myBookings(gctx, u)
		return err
	})
	if u.IsAdmin() {
		g.Go(func() (err error) {
			d.PendingQueue, err = s.pendingQueue(gctx)
			return err
		})
	}
	g.Go(func() (err error) {
		d.PendingReports, err = s.pendingReports(gctx, u)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, wrap(err, "dashboard")
	}
	return d, nil
}

func (s *Service) validateSeries(req model.CreateSeriesRequest) error {
	vErr := &errs.ValidationError{}
	if req.RoomID <= 0 {
		vErr.Add("roomId", "required")
	}
	if req.StartDate.IsZero() {
		vErr.Add("startDate", "required")
	}
	if req.EndDate != nil && !req.EndDate.IsZero() && !req.StartDate.IsZero() {
		switch {
		case req.EndDate.Before(req.StartDate.Time):
			vErr.Add("endDate", "must not be before startDate")
		case req.EndDate.Sub(req.StartDate.Time).Hours()/24 >= float64(s.maxSeriesDays):
			vErr.Add("endDate", fmt.Sprintf("range is limited to %d days", s.maxSeriesDays))
		}
	}
	if len(req.Periods) == 0 {
		vErr.Add("periods", "at least one period is required")
	}
	for _, p := range req.Periods {
		if !slot.Valid(p) {
			vErr.Add("periods", fmt.Sprintf("unknown period %q", p))
		}
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// CreateBookingSeries expands the request into slots, drops the unavailable
// ones and persists the rest atomically.
func (s *Service) CreateBookingSeries(ctx context.Context, req model.CreateSeriesRequest) (model.CreateSeriesResponse, error) {
	if err := s.validateSeries(req); err != nil {
		return model.CreateSeriesResponse{}, err
	}
	u, err := s.currentUser(ctx)
	if err != nil {
		return model.CreateSeriesResponse{}, err
	}
	now := s.now()

	reports, err := s.repo.PendingReports(ctx, now, &u.ID)
	if err != nil {
		return model.CreateSeriesResponse{}, wrap(err, "pending reports")
	}
	if len(reports) > 0 {
		return model.CreateSeriesResponse{}, &ObligationError{PendingReports: reports}
	}

	room, err := s.repo.GetRoom(ctx, req.RoomID)
	if err != nil {
		return model.CreateSeriesResponse{}, wrap(err, "room")
	}
	if !room.Active {
		return model.CreateSeriesResponse{}, errs.ErrRoomInactive
	}

	start := slot.Day(req.StartDate.Time)
	end := start
	if req.EndDate != nil && !req.EndDate.IsZero() {
		end = slot.Day(req.EndDate.Time)
	}
	existing, err := s.repo.ListBookings(ctx, model.BookingFilter{RoomID: room.ID, From: &start, To: &end})
	if err != nil {
		return model.CreateSeriesResponse{}, wrap(err, "existing bookings")
	}

	plan, err := s.expander.Expand(planner.Request{
		RoomID:    room.ID,
		StartDate: start,
		EndDate:   end,
		Periods:   req.Periods,
		Note:      req.Note,
		Subject:   req.Subject,
		Requester: u,
	}, existing, now)
	if errors.Is(err, errs.ErrNoSlotsAvailable) {
		return model.CreateSeriesResponse{}, &NoSlotsError{Skipped: plan.Skipped}
	}
	if err != nil {
		return model.CreateSeriesResponse{}, err
	}

	created, err := s.repo.CreateBookings(ctx, plan.Candidates)
	if err != nil {
		return model.CreateSeriesResponse{}, err
	}

	resp := model.CreateSeriesResponse{
		CreatedCount: len(created),
		SeriesCode:   created[0].SeriesCode,
		Bookings:     created,
		Skipped:      append(plan.Skipped, lostToConcurrency(plan.Candidates, created)...),
	}
	if resp.Skipped == nil {
		resp.Skipped = []model.SkippedSlot{}
	}
	s.log.Info("bookings created",
		zap.Int64("room", room.ID), zap.Int64("requester", u.ID),
		zap.Int("created", resp.CreatedCount), zap.Int("skipped", len(resp.Skipped)))

	s.afterMutation(ctx, kafka.EventBooking{
		EventType:  kafka.EventCreated,
		BookingIDs: bookingIDs(created),
		SeriesCode: seriesCode(created[0]),
		RoomID:     room.ID,
		ActorID:    u.ID,
	})
	return resp, nil
}

// lostToConcurrency reports candidates that another request booked between
// the snapshot read and the insert.
func lostToConcurrency(candidates []model.NewBooking, created []model.Booking) []model.SkippedSlot {
	kept := planner.NewOccupancy(created)
	var lost []model.SkippedSlot
	for _, c := range candidates {
		if !kept.Taken(c.RoomID, c.Date, c.Period) {
			lost = append(lost, model.SkippedSlot{
				Date:   model.Date{Time: slot.Day(c.Date)},
				Period: c.Period,
				Reason: model.SkipConflict,
			})
		}
	}
	return lost
}

// ApproveBooking confirms one booking or every pending member of its series.
// Approving an already confirmed booking succeeds without changes.
func (s *Service) ApproveBooking(ctx context.Context, id int64, scope model.Scope) (model.MutationResult, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return model.MutationResult{}, err
	}
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.MutationResult{}, err
	}

	var ids []int64
	if scope == model.ScopeSeries && b.SeriesCode != nil {
		ids, err = s.repo.ConfirmSeries(ctx, *b.SeriesCode)
		if err != nil {
			return model.MutationResult{}, wrap(err, "confirm series")
		}
	} else {
		if !b.Status.CanTransitionTo(model.StatusConfirmed) {
			return model.MutationResult{}, errs.ErrInvalidTransition
		}
		if b.Status == model.StatusPending {
			ok, err := s.repo.ConfirmBooking(ctx, id)
			if err != nil {
				return model.MutationResult{}, wrap(err, "confirm booking")
			}
			if ok {
				ids = []int64{id}
			} else if err := s.recheckConfirmed(ctx, id); err != nil {
				return model.MutationResult{}, err
			}
		}
	}

	s.afterMutation(ctx, kafka.EventBooking{
		EventType:  kafka.EventApproved,
		BookingIDs: ids,
		SeriesCode: seriesCode(b),
		RoomID:     b.RoomID,
		ActorID:    admin.ID,
	})
	msg := fmt.Sprintf("%d booking(s) confirmed", len(ids))
	if len(ids) == 0 {
		msg = "already confirmed"
	}
	return model.MutationResult{Success: true, Message: msg, Affected: len(ids)}, nil
}

// recheckConfirmed handles a booking whose status changed after it was read.
func (s *Service) recheckConfirmed(ctx context.Context, id int64) error {
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if b.Status != model.StatusConfirmed {
		return errs.ErrInvalidTransition
	}
	return nil
}

// RejectBooking deletes one booking, or with series scope every member of
// its series whose status equals statusSnapshot. An empty snapshot means the
// current status of the targeted booking.
func (s *Service) RejectBooking(ctx context.Context, id int64, scope model.Scope, statusSnapshot model.Status) (model.MutationResult, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return model.MutationResult{}, err
	}
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.MutationResult{}, err
	}
	if statusSnapshot == "" {
		statusSnapshot = b.Status
	}

	var ids []int64
	if scope == model.ScopeSeries && b.SeriesCode != nil {
		if !statusSnapshot.Deletable() {
			return model.MutationResult{}, errs.ErrInvalidTransition
		}
		ids, err = s.repo.DeleteSeries(ctx, *b.SeriesCode, statusSnapshot)
		if err != nil {
			return model.MutationResult{}, wrap(err, "delete series")
		}
	} else {
		if !b.Status.Deletable() {
			return model.MutationResult{}, errs.ErrInvalidTransition
		}
		ok, err := s.repo.DeleteBooking(ctx, id)
		if err != nil {
			return model.MutationResult{}, wrap(err, "delete booking")
		}
		if !ok {
			return model.MutationResult{}, errs.ErrNotFound
		}
		ids = []int64{id}
	}

	s.afterMutation(ctx, kafka.EventBooking{
		EventType:  kafka.EventRejected,
		BookingIDs: ids,
		SeriesCode: seriesCode(b),
		RoomID:     b.RoomID,
		ActorID:    admin.ID,
	})
	return model.MutationResult{
		Success:  true,
		Message:  fmt.Sprintf("%d booking(s) removed", len(ids)),
		Affected: len(ids),
	}, nil
}

func bookingIDs(items []model.Booking) []int64 {
	ids := make([]int64, 0, len(items))
	for _, b := range items {
		ids = append(ids, b.ID)
	}
	return ids
}
