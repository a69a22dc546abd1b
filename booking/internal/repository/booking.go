package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookingColumns = []string{
	"b.id", "b.room_id", "r.name as room_name", "b.requester_id", "u.name as requester_name",
	"b.series_code", "b.booking_date", "b.period", "b.start_at", "b.end_at", "b.status",
	"b.note", "b.subject", "b.created_at",
}

func bookingsFrom(table string) sq.SelectBuilder {
	return qb.Select(bookingColumns...).
		From(table + " b").
		Join(roomsTableName + " r on r.id = b.room_id").
		Join(usersTableName + " u on u.id = b.requester_id")
}

func listBookingsQuery(f model.BookingFilter) sq.SelectBuilder {
	q := bookingsFrom(bookingsTableName)
	if f.RequesterID != nil {
		q = q.Where(sq.Eq{"b.requester_id": *f.RequesterID})
	}
	if f.RoomID != 0 {
		q = q.Where(sq.Eq{"b.room_id": f.RoomID})
	}
	if f.SeriesCode != "" {
		q = q.Where(sq.Eq{"b.series_code": f.SeriesCode})
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where(sq.Eq{"b.status": statuses})
	}
	if f.From != nil {
		q = q.Where(sq.GtOrEq{"b.booking_date": *f.From})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{"b.booking_date": *f.To})
	}
	return q.OrderBy("b.booking_date", "b.start_at", "b.id")
}

func (r *repository) ListBookings(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	query, args, err := listBookingsQuery(filter).ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectBookings(ctx, r.db, query, args...)
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	query, args, err := bookingsFrom(bookingsTableName).Where(sq.Eq{"b.id": id}).Limit(1).ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Booking{}, err
	}
	b, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		return model.Booking{}, mapErr(err)
	}
	return b, nil
}

func (r *repository) collectBookings(ctx context.Context, db querier, query string, args ...any) ([]model.Booking, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("collectBookings", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, mapErr(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

// insertBookingsQuery inserts every candidate, silently dropping those whose
// slot was taken meanwhile, and returns the survivors with their display names.
func insertBookingsQuery(items []model.NewBooking) (string, []any, error) {
	ins := qb.Insert(bookingsTableName).
		Columns("room_id", "requester_id", "series_code", "booking_date", "period",
			"start_at", "end_at", "status", "note", "subject")
	for _, b := range items {
		ins = ins.Values(b.RoomID, b.RequesterID, b.SeriesCode, b.Date, string(b.Period),
			b.StartAt, b.EndAt, string(b.Status), b.Note, b.Subject)
	}
	insSQL, args, err := ins.
		Suffix("on conflict (room_id, booking_date, period) do nothing returning *").
		ToSql()
	if err != nil {
		return "", nil, err
	}
	sel, _, err := bookingsFrom("ins").OrderBy("b.booking_date", "b.start_at").ToSql()
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("with ins as (%s) %s", insSQL, sel), args, nil
}

// CreateBookings persists the candidates in one transaction. Rows lost to a
// concurrent booking are omitted from the result; when none survive the
// call fails with errs.ErrSlotConflict. A series reduced to one row loses
// its series code.
func (r *repository) CreateBookings(ctx context.Context, items []model.NewBooking) ([]model.Booking, error) {
	if len(items) == 0 {
		return nil, errs.ErrNoSlotsAvailable
	}
	query, args, err := insertBookingsQuery(items)
	if err != nil {
		return nil, err
	}

	var created []model.Booking
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := r.collectBookings(ctx, tx, query, args...)
		if err != nil {
			return err
		}
		created = rows
		if len(created) == 0 {
			return errs.ErrSlotConflict
		}
		if len(created) == 1 && created[0].SeriesCode != nil {
			if _, err := tx.Exec(ctx, `update bookings set series_code = null where id = $1`, created[0].ID); err != nil {
				return errors.Wrap(err, "clear series code")
			}
			created[0].SeriesCode = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *repository) ConfirmBooking(ctx context.Context, id int64) (bool, error) {
	q := `
update bookings
	set status = @confirmed
where id = @id and status = @pending`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":        id,
		"confirmed": string(model.StatusConfirmed),
		"pending":   string(model.StatusPending),
	})
	if err != nil {
		return false, mapErr(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repository) ConfirmSeries(ctx context.Context, seriesCode string) ([]int64, error) {
	q := `
update bookings
	set status = @confirmed
where series_code = @code and status = @pending
returning id`
	return r.collectIDs(ctx, q, pgx.NamedArgs{
		"code":      seriesCode,
		"confirmed": string(model.StatusConfirmed),
		"pending":   string(model.StatusPending),
	})
}

func (r *repository) DeleteBooking(ctx context.Context, id int64) (bool, error) {
	q := `delete from bookings where id = @id and status = any(@deletable)`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":        id,
		"deletable": deletableStatuses(),
	})
	if err != nil {
		return false, mapErr(err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteSeries removes only the members whose status equals status.
func (r *repository) DeleteSeries(ctx context.Context, seriesCode string, status model.Status) ([]int64, error) {
	if !status.Deletable() {
		return nil, errs.ErrInvalidTransition
	}
	q := `delete from bookings where series_code = @code and status = @status returning id`
	return r.collectIDs(ctx, q, pgx.NamedArgs{
		"code":   seriesCode,
		"status": string(status),
	})
}

func (r *repository) collectIDs(ctx context.Context, q string, args pgx.NamedArgs) ([]int64, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, mapErr(err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, mapErr(err)
	}
	return ids, nil
}

func deletableStatuses() []string {
	return []string{string(model.StatusPending), string(model.StatusConfirmed)}
}

func pendingReportsQuery(now time.Time, requesterID *int64) sq.SelectBuilder {
	q := bookingsFrom(bookingsTableName).
		Where(sq.Eq{"b.status": string(model.StatusConfirmed)}).
		Where(sq.LtOrEq{"b.start_at": now}).
		Where(fmt.Sprintf("not exists (select 1 from %s c where c.booking_id = b.id)", checklistsTableName))
	if requesterID != nil {
		q = q.Where(sq.Eq{"b.requester_id": *requesterID})
	}
	return q.OrderBy("b.start_at")
}

func (r *repository) PendingReports(ctx context.Context, now time.Time, requesterID *int64) ([]model.Booking, error) {
	query, args, err := pendingReportsQuery(now, requesterID).ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectBookings(ctx, r.db, query, args...)
}
