package service

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	repo_mocks "github.com/Astemirdum/lab-booking/booking/internal/repository/mocks"
)

func boolPtr(b bool) *bool { return &b }

func TestService_SubmitChecklist(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 2, 13, 0, 0, 0, loc)
	code := "series-9"
	started := model.Booking{
		ID: 30, RoomID: lab.ID, RequesterID: ana.ID, Status: model.StatusConfirmed,
		StartAt: time.Date(2025, 6, 2, 8, 0, 0, 0, loc),
	}

	tests := []struct {
		name         string
		user         model.User
		req          model.SubmitChecklistRequest
		mockBehavior func(r *repo_mocks.MockRepository)
		wantIDs      []int64
		wantErr      error
	}{
		{
			name: "owner completes a started booking",
			user: ana,
			req:  model.SubmitChecklistRequest{BookingID: started.ID, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(false), Note: " dusty bench "},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
				r.EXPECT().GetBooking(gomock.Any(), started.ID).Return(started, nil)
				r.EXPECT().SubmitChecklist(gomock.Any(), model.ChecklistSubmission{
					BookingID: started.ID, AuthorID: ana.ID, MaterialOK: true, CleanlinessOK: false,
					Note: "dusty bench", Now: now,
				}).Return([]int64{started.ID}, nil)
			},
			wantIDs: []int64{started.ID},
		},
		{
			name: "admin completes every eligible member of a series",
			user: root,
			req:  model.SubmitChecklistRequest{SeriesCode: code, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				first := started
				first.SeriesCode = &code
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				r.EXPECT().ListBookings(gomock.Any(), model.BookingFilter{SeriesCode: code}).Return([]model.Booking{first}, nil)
				r.EXPECT().SubmitChecklist(gomock.Any(), model.ChecklistSubmission{
					SeriesCode: code, AuthorID: root.ID, MaterialOK: true, CleanlinessOK: true, Now: now,
				}).Return([]int64{30, 31}, nil)
			},
			wantIDs: []int64{30, 31},
		},
		{
			name: "booking of a series completes its eligible siblings",
			user: ana,
			req:  model.SubmitChecklistRequest{BookingID: started.ID, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				member := started
				member.SeriesCode = &code
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
				r.EXPECT().GetBooking(gomock.Any(), started.ID).Return(member, nil)
				r.EXPECT().SubmitChecklist(gomock.Any(), model.ChecklistSubmission{
					BookingID: started.ID, SeriesCode: code, AuthorID: ana.ID, MaterialOK: true, CleanlinessOK: true, Now: now,
				}).Return([]int64{30, 31, 32}, nil)
			},
			wantIDs: []int64{30, 31, 32},
		},
		{
			name: "someone else's booking",
			user: bruno,
			req:  model.SubmitChecklistRequest{BookingID: started.ID, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), bruno.Subject).Return(bruno, nil)
				r.EXPECT().GetBooking(gomock.Any(), started.ID).Return(started, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "already completed",
			user: ana,
			req:  model.SubmitChecklistRequest{BookingID: started.ID, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := started
				b.Status = model.StatusCompleted
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
				r.EXPECT().GetBooking(gomock.Any(), started.ID).Return(b, nil)
			},
			wantErr: errs.ErrChecklistExists,
		},
		{
			name: "not started yet",
			user: ana,
			req:  model.SubmitChecklistRequest{BookingID: started.ID, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := started
				b.StartAt = time.Date(2025, 6, 2, 19, 0, 0, 0, loc)
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
				r.EXPECT().GetBooking(gomock.Any(), started.ID).Return(b, nil)
			},
			wantErr: errs.ErrNotEligible,
		},
		{
			name: "still pending",
			user: ana,
			req:  model.SubmitChecklistRequest{BookingID: started.ID, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := started
				b.Status = model.StatusPending
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
				r.EXPECT().GetBooking(gomock.Any(), started.ID).Return(b, nil)
			},
			wantErr: errs.ErrNotEligible,
		},
		{
			name: "lost a race with another submission",
			user: ana,
			req:  model.SubmitChecklistRequest{BookingID: started.ID, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
				r.EXPECT().GetBooking(gomock.Any(), started.ID).Return(started, nil)
				r.EXPECT().SubmitChecklist(gomock.Any(), gomock.Any()).Return(nil, errs.ErrChecklistExists)
			},
			wantErr: errs.ErrChecklistExists,
		},
		{
			name: "unknown series",
			user: ana,
			req:  model.SubmitChecklistRequest{SeriesCode: code, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
				r.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, rec := newTestService(t, now)
			tt.mockBehavior(repo)

			resp, err := svc.SubmitChecklist(ctxAs(tt.user), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, rec.types())
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tt.wantIDs), resp.Completed)
			require.Equal(t, tt.wantIDs, resp.BookingIDs)
			require.Equal(t, []kafka.EventType{kafka.EventCompleted}, rec.types())
		})
	}
}

func TestService_SubmitChecklist_Validation(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t, time.Now())
	tests := []struct {
		name  string
		req   model.SubmitChecklistRequest
		field string
	}{
		{"neither target", model.SubmitChecklistRequest{MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)}, "bookingId"},
		{"both targets", model.SubmitChecklistRequest{BookingID: 1, SeriesCode: "x", MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true)}, "bookingId"},
		{"material missing", model.SubmitChecklistRequest{BookingID: 1, CleanlinessOK: boolPtr(true)}, "materialOk"},
		{"cleanliness missing", model.SubmitChecklistRequest{BookingID: 1, MaterialOK: boolPtr(false)}, "cleanlinessOk"},
	}
	for _, tt := range tests {
		_, err := svc.SubmitChecklist(ctxAs(ana), tt.req)
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr, tt.name)
		require.Contains(t, vErr.FieldErrors, tt.field, tt.name)
	}
}

// A single booking goes from request to approval to checklist and leaves the
// pending reports afterwards.
func TestService_SingleBookingLifecycle(t *testing.T) {
	t.Parallel()
	submittedAt := time.Date(2025, 5, 30, 9, 0, 0, 0, loc)
	svc, repo, rec := newTestService(t, submittedAt)

	var stored model.Booking
	repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil).AnyTimes()
	repo.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil).AnyTimes()
	repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
	repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().CreateBookings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, items []model.NewBooking) ([]model.Booking, error) {
			created, err := persist(1)(ctx, items)
			stored = created[0]
			return created, err
		})
	repo.EXPECT().GetBooking(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) (model.Booking, error) { return stored, nil }).AnyTimes()
	repo.EXPECT().ConfirmBooking(gomock.Any(), int64(1)).DoAndReturn(
		func(context.Context, int64) (bool, error) {
			stored.Status = model.StatusConfirmed
			return true, nil
		})
	repo.EXPECT().SubmitChecklist(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sub model.ChecklistSubmission) ([]int64, error) {
			stored.Status = model.StatusCompleted
			return []int64{sub.BookingID}, nil
		})
	repo.EXPECT().PendingReports(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, now time.Time, _ *int64) ([]model.Booking, error) {
			if stored.Status == model.StatusConfirmed && !stored.StartAt.After(now) {
				return []model.Booking{stored}, nil
			}
			return nil, nil
		}).AnyTimes()

	resp, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(2, 2, model.PeriodMorning))
	require.NoError(t, err)
	require.Equal(t, 1, resp.CreatedCount)
	require.Nil(t, resp.SeriesCode)
	require.Equal(t, model.StatusPending, stored.Status)

	_, err = svc.ApproveBooking(ctxAs(root), 1, model.ScopeSingle)
	require.NoError(t, err)
	require.Equal(t, model.StatusConfirmed, stored.Status)

	// the morning period has started
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 9, 30, 0, 0, loc) }
	svc.Cache().Invalidate()
	reports, err := svc.PendingReports(ctxAs(ana))
	require.NoError(t, err)
	require.Len(t, reports, 1)

	_, err = svc.SubmitChecklist(ctxAs(ana), model.SubmitChecklistRequest{
		BookingID: 1, MaterialOK: boolPtr(true), CleanlinessOK: boolPtr(true),
	})
	require.NoError(t, err)
	require.Equal(t, model.StatusCompleted, stored.Status)

	reports, err = svc.PendingReports(ctxAs(ana))
	require.NoError(t, err)
	require.Empty(t, reports)
	require.Equal(t, []kafka.EventType{kafka.EventCreated, kafka.EventApproved, kafka.EventCompleted}, rec.types())
}

func TestService_ChecklistDetail(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t, time.Now())
	summary := model.ChecklistSummary{ID: 3, BookingID: 30, RoomID: lab.ID, MaterialOK: true, CleanlinessOK: true}
	items := []model.Equipment{{ID: 1, RoomID: lab.ID, Name: "Fume hood"}, {ID: 2, RoomID: lab.ID, Name: "Balance"}}

	repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
	repo.EXPECT().GetChecklist(gomock.Any(), int64(3)).Return(summary, nil)
	repo.EXPECT().ListEquipment(gomock.Any(), lab.ID).Return(items, nil)

	d, err := svc.ChecklistDetail(ctxAs(ana), 3)
	require.NoError(t, err)
	require.Equal(t, summary, d.ChecklistSummary)
	require.Len(t, d.Equipment, 2)
	for _, e := range d.Equipment {
		require.Equal(t, model.EquipmentStatusOK, e.Status)
	}
}

func TestService_ChecklistHistoryDefaults(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t, time.Now())
	repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
	repo.EXPECT().ChecklistHistory(gomock.Any(), model.HistoryFilter{
		Search: "chem", Conformance: model.ConformanceAll, Page: 1, Size: 100,
	}).Return(model.ListChecklists{}, nil)

	_, err := svc.ChecklistHistory(ctxAs(ana), model.HistoryFilter{Search: "  chem ", Size: 500})
	require.NoError(t, err)
}
