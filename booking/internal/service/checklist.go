package service

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/cache"
	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"go.uber.org/zap"
)

// PendingReports lists confirmed bookings that already started and still
// lack a checklist. Admins see everyone's, other users their own.
func (s *Service) PendingReports(ctx context.Context) ([]model.Booking, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.pendingReports(ctx, u)
}

func (s *Service) pendingReports(ctx context.Context, u model.User) ([]model.Booking, error) {
	var requesterID *int64
	if !u.IsAdmin() {
		requesterID = &u.ID
	}
	// start times pass without any mutation, only the TTL refreshes this entry
	return cache.GetOrLoad(s.cache, cache.KeyReports(u.ID), func() ([]model.Booking, error) {
		return s.repo.PendingReports(ctx, s.now(), requesterID)
	})
}

func validateChecklist(req model.SubmitChecklistRequest) error {
	vErr := &errs.ValidationError{}
	hasBooking, hasSeries := req.BookingID > 0, strings.TrimSpace(req.SeriesCode) != ""
	if hasBooking == hasSeries {
		vErr.Add("bookingId", "exactly one of bookingId and seriesCode is required")
	}
	if req.MaterialOK == nil {
		vErr.Add("materialOk", "required")
	}
	if req.CleanlinessOK == nil {
		vErr.Add("cleanlinessOk", "required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// SubmitChecklist records the post-use checklist for a booking and completes
// it. When the booking belongs to a series, or a series code is given, every
// eligible member of the series gets the same checklist.
func (s *Service) SubmitChecklist(ctx context.Context, req model.SubmitChecklistRequest) (model.SubmitChecklistResponse, error) {
	if err := validateChecklist(req); err != nil {
		return model.SubmitChecklistResponse{}, err
	}
	u, err := s.currentUser(ctx)
	if err != nil {
		return model.SubmitChecklistResponse{}, err
	}
	now := s.now()

	target, err := s.checklistTarget(ctx, req, now)
	if err != nil {
		return model.SubmitChecklistResponse{}, err
	}
	if !u.IsAdmin() && target.RequesterID != u.ID {
		return model.SubmitChecklistResponse{}, errs.ErrForbidden
	}
	// a series member closes out every eligible member of its series
	code := strings.TrimSpace(req.SeriesCode)
	if code == "" {
		code = seriesCode(target)
	}

	ids, err := s.repo.SubmitChecklist(ctx, model.ChecklistSubmission{
		BookingID:     req.BookingID,
		SeriesCode:    code,
		AuthorID:      u.ID,
		MaterialOK:    *req.MaterialOK,
		CleanlinessOK: *req.CleanlinessOK,
		Note:          strings.TrimSpace(req.Note),
		Now:           now,
	})
	if err != nil {
		return model.SubmitChecklistResponse{}, err
	}
	s.log.Info("checklist submitted", zap.Int64("author", u.ID), zap.Int64s("bookings", ids))

	s.afterMutation(ctx, kafka.EventBooking{
		EventType:  kafka.EventCompleted,
		BookingIDs: ids,
		SeriesCode: code,
		RoomID:     target.RoomID,
		ActorID:    u.ID,
	})
	return model.SubmitChecklistResponse{Completed: len(ids), BookingIDs: ids}, nil
}

// checklistTarget returns the booking a submission is about. For a series it
// is the first member, all members share room and requester.
func (s *Service) checklistTarget(ctx context.Context, req model.SubmitChecklistRequest, now time.Time) (model.Booking, error) {
	if req.BookingID > 0 {
		b, err := s.repo.GetBooking(ctx, req.BookingID)
		if err != nil {
			return model.Booking{}, err
		}
		switch {
		case b.Status == model.StatusCompleted:
			return model.Booking{}, errs.ErrChecklistExists
		case b.Status != model.StatusConfirmed, b.StartAt.After(now):
			return model.Booking{}, errs.ErrNotEligible
		}
		return b, nil
	}
	members, err := s.repo.ListBookings(ctx, model.BookingFilter{SeriesCode: strings.TrimSpace(req.SeriesCode)})
	if err != nil {
		return model.Booking{}, err
	}
	if len(members) == 0 {
		return model.Booking{}, errs.ErrNotFound
	}
	return members[0], nil
}

func (s *Service) ChecklistHistory(ctx context.Context, filter model.HistoryFilter) (model.ListChecklists, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return model.ListChecklists{}, err
	}
	filter.Page, filter.Size = normalizePaging(filter.Page, filter.Size)
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Conformance == "" {
		filter.Conformance = model.ConformanceAll
	}
	return s.repo.ChecklistHistory(ctx, filter)
}

// ChecklistDetail reports the room's current inventory with every item ok,
// per item condition is not recorded.
func (s *Service) ChecklistDetail(ctx context.Context, id int64) (model.ChecklistDetail, error) {
	if _, err := s.currentUser(ctx); err != nil {
		return model.ChecklistDetail{}, err
	}
	c, err := s.repo.GetChecklist(ctx, id)
	if err != nil {
		return model.ChecklistDetail{}, err
	}
	items, err := s.repo.ListEquipment(ctx, c.RoomID)
	if err != nil {
		return model.ChecklistDetail{}, wrap(err, "equipment")
	}
	detail := model.ChecklistDetail{ChecklistSummary: c, Equipment: make([]model.EquipmentStatus, 0, len(items))}
	for _, e := range items {
		detail.Equipment = append(detail.Equipment, model.EquipmentStatus{Equipment: e, Status: model.EquipmentStatusOK})
	}
	return detail, nil
}
