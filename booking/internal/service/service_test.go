package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/cache"
	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
	"github.com/Astemirdum/lab-booking/pkg/auth"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/Astemirdum/lab-booking/booking/internal/repository/mocks"
)

var (
	loc   = time.FixedZone("BRT", -3*60*60)
	ana   = model.User{ID: 7, Subject: "ana", Name: "Ana", Role: model.RoleStandard}
	bruno = model.User{ID: 8, Subject: "bruno", Name: "Bruno", Role: model.RoleStandard}
	root  = model.User{ID: 1, Subject: "root", Name: "Root", Role: model.RoleAdmin}
	lab   = model.Room{ID: 1, Name: "Chemistry Lab 101", Active: true}
)

type recorder struct {
	mu     sync.Mutex
	events []kafka.EventBooking
}

func (r *recorder) Publish(_ context.Context, e kafka.EventBooking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []kafka.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]kafka.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.EventType)
	}
	return out
}

func newTestService(t *testing.T, now time.Time) (*Service, *repo_mocks.MockRepository, *recorder) {
	ctrl := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(ctrl)
	rec := &recorder{}
	svc := NewService(repo, slot.New(loc), zap.NewNop(),
		WithClock(func() time.Time { return now }),
		WithPublisher(rec, "test"),
		WithCache(cache.New(16, time.Minute)),
	)
	return svc, repo, rec
}

func ctxAs(u model.User) context.Context {
	return auth.SetAuthContext(context.Background(), u.Subject, u.Name)
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func persist(firstID int64) func(context.Context, []model.NewBooking) ([]model.Booking, error) {
	return func(_ context.Context, items []model.NewBooking) ([]model.Booking, error) {
		out := make([]model.Booking, 0, len(items))
		for i, nb := range items {
			out = append(out, model.Booking{
				ID: firstID + int64(i), RoomID: nb.RoomID, RequesterID: nb.RequesterID,
				SeriesCode: nb.SeriesCode, Date: nb.Date, Period: nb.Period,
				StartAt: nb.StartAt, EndAt: nb.EndAt, Status: nb.Status,
				Note: nb.Note, Subject: nb.Subject,
			})
		}
		return out, nil
	}
}

func seriesReq(start, end int, periods ...model.Period) model.CreateSeriesRequest {
	endDate := model.Date{Time: day(end)}
	return model.CreateSeriesRequest{
		RoomID:    lab.ID,
		StartDate: model.Date{Time: day(start)},
		EndDate:   &endDate,
		Periods:   periods,
	}
}

func TestService_CreateBookingSeries(t *testing.T) {
	t.Parallel()
	sunday := time.Date(2025, 6, 1, 10, 0, 0, 0, loc)

	t.Run("three weekdays become one pending series", func(t *testing.T) {
		t.Parallel()
		svc, repo, rec := newTestService(t, sunday)
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &ana.ID).Return(nil, nil)
		repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
		repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().CreateBookings(gomock.Any(), gomock.Any()).DoAndReturn(persist(10))

		resp, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(2, 4, model.PeriodMorning))
		require.NoError(t, err)
		require.Equal(t, 3, resp.CreatedCount)
		require.NotNil(t, resp.SeriesCode)
		for _, b := range resp.Bookings {
			require.Equal(t, model.StatusPending, b.Status)
			require.Equal(t, *resp.SeriesCode, *b.SeriesCode)
		}
		require.Empty(t, resp.Skipped)
		require.Equal(t, []kafka.EventType{kafka.EventCreated}, rec.types())
	})

	t.Run("occupied day is skipped and reported", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, sunday)
		taken := model.Booking{ID: 3, RoomID: lab.ID, RequesterID: bruno.ID, Date: day(3), Period: model.PeriodMorning, Status: model.StatusConfirmed}
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &ana.ID).Return(nil, nil)
		repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
		repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return([]model.Booking{taken}, nil)
		repo.EXPECT().CreateBookings(gomock.Any(), gomock.Any()).DoAndReturn(persist(10))

		resp, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(2, 4, model.PeriodMorning))
		require.NoError(t, err)
		require.Equal(t, 2, resp.CreatedCount)
		require.Equal(t, day(2), resp.Bookings[0].Date)
		require.Equal(t, day(4), resp.Bookings[1].Date)
		require.Equal(t, *resp.Bookings[0].SeriesCode, *resp.Bookings[1].SeriesCode)
		require.Equal(t, []model.SkippedSlot{
			{Date: model.Date{Time: day(3)}, Period: model.PeriodMorning, Reason: model.SkipConflict},
		}, resp.Skipped)
	})

	t.Run("admin bookings are confirmed", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, sunday)
		repo.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &root.ID).Return(nil, nil)
		repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
		repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().CreateBookings(gomock.Any(), gomock.Any()).DoAndReturn(persist(10))

		resp, err := svc.CreateBookingSeries(ctxAs(root), seriesReq(2, 2, model.PeriodEvening))
		require.NoError(t, err)
		require.Equal(t, 1, resp.CreatedCount)
		require.Nil(t, resp.SeriesCode)
		require.Equal(t, model.StatusConfirmed, resp.Bookings[0].Status)
	})

	t.Run("slot lost to a concurrent request", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, sunday)
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &ana.ID).Return(nil, nil)
		repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
		repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().CreateBookings(gomock.Any(), gomock.Any()).Return(nil, errs.ErrSlotConflict)

		_, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(10, 10, model.PeriodAfternoon))
		require.ErrorIs(t, err, errs.ErrSlotConflict)
	})

	t.Run("series partly lost to a concurrent request", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, sunday)
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &ana.ID).Return(nil, nil)
		repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
		repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().CreateBookings(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, items []model.NewBooking) ([]model.Booking, error) {
				require.Len(t, items, 2)
				created, _ := persist(20)(ctx, items[:1])
				created[0].SeriesCode = nil
				return created, nil
			})

		resp, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(2, 3, model.PeriodMorning))
		require.NoError(t, err)
		require.Equal(t, 1, resp.CreatedCount)
		require.Nil(t, resp.SeriesCode)
		require.Equal(t, []model.SkippedSlot{
			{Date: model.Date{Time: day(3)}, Period: model.PeriodMorning, Reason: model.SkipConflict},
		}, resp.Skipped)
	})

	t.Run("pending checklist blocks new bookings", func(t *testing.T) {
		t.Parallel()
		svc, repo, rec := newTestService(t, sunday)
		overdue := model.Booking{ID: 2, RoomID: lab.ID, RequesterID: ana.ID, Status: model.StatusConfirmed}
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &ana.ID).Return([]model.Booking{overdue}, nil)

		_, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(2, 4, model.PeriodMorning))
		require.ErrorIs(t, err, errs.ErrChecklistPending)
		var oErr *ObligationError
		require.ErrorAs(t, err, &oErr)
		require.Equal(t, []model.Booking{overdue}, oErr.PendingReports)
		require.Empty(t, rec.types())
	})

	t.Run("inactive room", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, sunday)
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &ana.ID).Return(nil, nil)
		repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(model.Room{ID: lab.ID}, nil)

		_, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(2, 4, model.PeriodMorning))
		require.ErrorIs(t, err, errs.ErrRoomInactive)
	})

	t.Run("nothing bookable", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, sunday)
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		repo.EXPECT().PendingReports(gomock.Any(), sunday, &ana.ID).Return(nil, nil)
		repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
		repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(7, 8, model.PeriodMorning))
		require.ErrorIs(t, err, errs.ErrNoSlotsAvailable)
		var noSlots *NoSlotsError
		require.ErrorAs(t, err, &noSlots)
		require.Equal(t, []model.SkippedSlot{
			{Date: model.Date{Time: day(7)}, Period: model.PeriodMorning, Reason: model.SkipWeekend},
			{Date: model.Date{Time: day(8)}, Period: model.PeriodMorning, Reason: model.SkipWeekend},
		}, noSlots.Skipped)
	})

	t.Run("invalid range is rejected before any lookup", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t, sunday)
		_, err := svc.CreateBookingSeries(ctxAs(ana), seriesReq(4, 2, model.PeriodMorning))
		var vErr *errs.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.FieldErrors, "endDate")

		_, err = svc.CreateBookingSeries(ctxAs(ana), model.CreateSeriesRequest{RoomID: 1, Periods: []model.Period{"night"}})
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.FieldErrors, "startDate")
		require.Contains(t, vErr.FieldErrors, "periods")
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, sunday)
		repo.EXPECT().GetUserBySubject(gomock.Any(), "ghost").Return(model.User{}, errs.ErrUnauthorized)

		_, err := svc.CreateBookingSeries(ctxAs(model.User{Subject: "ghost"}), seriesReq(2, 4, model.PeriodMorning))
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestService_ApproveBooking(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, loc)
	code := "series-1"
	pending := model.Booking{ID: 5, RoomID: lab.ID, RequesterID: ana.ID, Status: model.StatusPending}

	tests := []struct {
		name         string
		user         model.User
		scope        model.Scope
		mockBehavior func(r *repo_mocks.MockRepository)
		wantAffected int
		wantErr      error
		wantEvent    bool
	}{
		{
			name:  "non admin",
			user:  ana,
			scope: model.ScopeSingle,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:  "pending single",
			user:  root,
			scope: model.ScopeSingle,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(pending, nil)
				r.EXPECT().ConfirmBooking(gomock.Any(), pending.ID).Return(true, nil)
			},
			wantAffected: 1,
			wantEvent:    true,
		},
		{
			name:  "already confirmed is a no-op",
			user:  root,
			scope: model.ScopeSingle,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := pending
				b.Status = model.StatusConfirmed
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(b, nil)
			},
		},
		{
			name:  "confirmed concurrently",
			user:  root,
			scope: model.ScopeSingle,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := pending
				b.Status = model.StatusConfirmed
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				gomock.InOrder(
					r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(pending, nil),
					r.EXPECT().ConfirmBooking(gomock.Any(), pending.ID).Return(false, nil),
					r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(b, nil),
				)
			},
		},
		{
			name:  "completed cannot go back",
			user:  root,
			scope: model.ScopeSingle,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := pending
				b.Status = model.StatusCompleted
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(b, nil)
			},
			wantErr: errs.ErrInvalidTransition,
		},
		{
			name:  "series confirms pending members",
			user:  root,
			scope: model.ScopeSeries,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := pending
				b.SeriesCode = &code
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(b, nil)
				r.EXPECT().ConfirmSeries(gomock.Any(), code).Return([]int64{5, 6, 7}, nil)
			},
			wantAffected: 3,
			wantEvent:    true,
		},
		{
			name:  "series scope without series code",
			user:  root,
			scope: model.ScopeSeries,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(pending, nil)
				r.EXPECT().ConfirmBooking(gomock.Any(), pending.ID).Return(true, nil)
			},
			wantAffected: 1,
			wantEvent:    true,
		},
		{
			name:  "missing booking",
			user:  root,
			scope: model.ScopeSingle,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
				r.EXPECT().GetBooking(gomock.Any(), pending.ID).Return(model.Booking{}, errs.ErrNotFound)
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

			res, err := svc.ApproveBooking(ctxAs(tt.user), pending.ID, tt.scope)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, rec.types())
				return
			}
			require.NoError(t, err)
			require.True(t, res.Success)
			require.Equal(t, tt.wantAffected, res.Affected)
			if tt.wantEvent {
				require.Equal(t, []kafka.EventType{kafka.EventApproved}, rec.types())
			} else {
				require.Empty(t, rec.types())
			}
		})
	}
}

func TestService_RejectBooking(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, loc)
	code := "series-4"
	member := model.Booking{ID: 12, RoomID: lab.ID, RequesterID: ana.ID, SeriesCode: &code, Status: model.StatusPending}

	tests := []struct {
		name         string
		user         model.User
		scope        model.Scope
		snapshot     model.Status
		target       model.Booking
		mockBehavior func(r *repo_mocks.MockRepository)
		wantAffected int
		wantErr      error
	}{
		{
			name:     "series removes only members in the snapshot status",
			user:     root,
			scope:    model.ScopeSeries,
			snapshot: model.StatusPending,
			target:   member,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().DeleteSeries(gomock.Any(), code, model.StatusPending).Return([]int64{12, 13}, nil)
			},
			wantAffected: 2,
		},
		{
			name:   "empty snapshot uses the target status",
			user:   root,
			scope:  model.ScopeSeries,
			target: func() model.Booking { b := member; b.Status = model.StatusConfirmed; return b }(),
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().DeleteSeries(gomock.Any(), code, model.StatusConfirmed).Return([]int64{10, 11}, nil)
			},
			wantAffected: 2,
		},
		{
			name:     "series snapshot of completed bookings",
			user:     root,
			scope:    model.ScopeSeries,
			snapshot: model.StatusCompleted,
			target:   member,
			wantErr:  errs.ErrInvalidTransition,
		},
		{
			name:   "single",
			user:   root,
			scope:  model.ScopeSingle,
			target: member,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().DeleteBooking(gomock.Any(), member.ID).Return(true, nil)
			},
			wantAffected: 1,
		},
		{
			name:    "completed single is kept",
			user:    root,
			scope:   model.ScopeSingle,
			target:  func() model.Booking { b := member; b.Status = model.StatusCompleted; return b }(),
			wantErr: errs.ErrInvalidTransition,
		},
		{
			name:   "single removed concurrently",
			user:   root,
			scope:  model.ScopeSingle,
			target: member,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().DeleteBooking(gomock.Any(), member.ID).Return(false, nil)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, rec := newTestService(t, now)
			repo.EXPECT().GetUserBySubject(gomock.Any(), tt.user.Subject).Return(tt.user, nil)
			repo.EXPECT().GetBooking(gomock.Any(), member.ID).Return(tt.target, nil)
			if tt.mockBehavior != nil {
				tt.mockBehavior(repo)
			}

			res, err := svc.RejectBooking(ctxAs(tt.user), member.ID, tt.scope, tt.snapshot)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantAffected, res.Affected)
			require.Equal(t, []kafka.EventType{kafka.EventRejected}, rec.types())
		})
	}

	t.Run("non admin", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newTestService(t, now)
		repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
		_, err := svc.RejectBooking(ctxAs(ana), member.ID, model.ScopeSeries, model.StatusPending)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)
	all := []model.Booking{{ID: 1}, {ID: 2}}
	queue := []model.Booking{{ID: 2, Status: model.StatusPending}}
	reports := []model.Booking{{ID: 1, Status: model.StatusConfirmed}}

	svc, repo, _ := newTestService(t, now)
	repo.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil)
	repo.EXPECT().ListBookings(gomock.Any(), model.BookingFilter{}).Return(all, nil)
	repo.EXPECT().ListBookings(gomock.Any(), model.BookingFilter{Statuses: []model.Status{model.StatusPending}}).Return(queue, nil)
	repo.EXPECT().PendingReports(gomock.Any(), now, (*int64)(nil)).Return(reports, nil)

	d, err := svc.Dashboard(ctxAs(root))
	require.NoError(t, err)
	require.Equal(t, all, d.Bookings)
	require.Equal(t, queue, d.PendingQueue)
	require.Equal(t, reports, d.PendingReports)
}

func TestService_ListingCacheIsInvalidatedByMutations(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, loc)
	svc, repo, _ := newTestService(t, now)
	b := model.Booking{ID: 4, RoomID: lab.ID, Status: model.StatusPending}

	repo.EXPECT().GetUserBySubject(gomock.Any(), root.Subject).Return(root, nil).AnyTimes()
	repo.EXPECT().ListBookings(gomock.Any(), model.BookingFilter{}).Return([]model.Booking{b}, nil).Times(2)
	repo.EXPECT().GetBooking(gomock.Any(), b.ID).Return(b, nil)
	repo.EXPECT().ConfirmBooking(gomock.Any(), b.ID).Return(true, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.ListBookings(ctxAs(root))
		require.NoError(t, err)
	}
	_, err := svc.ApproveBooking(ctxAs(root), b.ID, model.ScopeSingle)
	require.NoError(t, err)
	_, err = svc.ListBookings(ctxAs(root))
	require.NoError(t, err)
}

func TestService_MyBookingsFiltersByRequesterID(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newTestService(t, time.Now())
	repo.EXPECT().GetUserBySubject(gomock.Any(), ana.Subject).Return(ana, nil)
	repo.EXPECT().ListBookings(gomock.Any(), model.BookingFilter{RequesterID: &ana.ID}).Return(nil, nil)

	_, err := svc.MyBookings(ctxAs(ana))
	require.NoError(t, err)
}

func TestService_RoomAvailability(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 2, 12, 30, 0, 0, loc)
	svc, repo, _ := newTestService(t, now)
	booked := model.Booking{ID: 9, RoomID: lab.ID, Date: day(2), Period: model.PeriodAfternoon, Status: model.StatusPending}
	repo.EXPECT().GetRoom(gomock.Any(), lab.ID).Return(lab, nil)
	repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return([]model.Booking{booked}, nil)

	av, err := svc.RoomAvailability(context.Background(), lab.ID, day(2))
	require.NoError(t, err)
	require.Len(t, av.Slots, 3)

	morning, afternoon, evening := av.Slots[0], av.Slots[1], av.Slots[2]
	require.True(t, morning.Expired)
	require.False(t, morning.Available)
	require.False(t, afternoon.Available)
	require.Equal(t, booked.ID, *afternoon.BookingID)
	require.True(t, evening.Available)
	require.Equal(t, time.Date(2025, 6, 2, 19, 0, 0, 0, loc), evening.StartAt)
}
