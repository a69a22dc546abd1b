package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetUserBySubject(ctx context.Context, subject string) (model.User, error)

	ListRooms(ctx context.Context, page, size int) (model.ListRooms, error)
	GetRoom(ctx context.Context, id int64) (model.Room, error)
	ListEquipment(ctx context.Context, roomID int64) ([]model.Equipment, error)

	ListBookings(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	CreateBookings(ctx context.Context, items []model.NewBooking) ([]model.Booking, error)
	ConfirmBooking(ctx context.Context, id int64) (bool, error)
	ConfirmSeries(ctx context.Context, seriesCode string) ([]int64, error)
	DeleteBooking(ctx context.Context, id int64) (bool, error)
	DeleteSeries(ctx context.Context, seriesCode string, status model.Status) ([]int64, error)

	PendingReports(ctx context.Context, now time.Time, requesterID *int64) ([]model.Booking, error)
	SubmitChecklist(ctx context.Context, sub model.ChecklistSubmission) ([]int64, error)
	ChecklistHistory(ctx context.Context, filter model.HistoryFilter) (model.ListChecklists, error)
	GetChecklist(ctx context.Context, id int64) (model.ChecklistSummary, error)
}

type repository struct {
	db  DB
	log *zap.Logger
}

func NewRepository(db DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName      = `users`
	unitsTableName      = `units`
	roomsTableName      = `rooms`
	equipmentTableName  = `equipment`
	bookingsTableName   = `bookings`
	checklistsTableName = `checklists`

	slotConstraint      = `bookings_slot_key`
	checklistConstraint = `checklists_booking_key`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// mapErr turns constraint violations into domain errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case slotConstraint:
			return errs.ErrSlotConflict
		case checklistConstraint:
			return errs.ErrChecklistExists
		}
	case pgerrcode.ForeignKeyViolation:
		return errors.Wrap(errs.ErrNotFound, pgErr.ConstraintName)
	case pgerrcode.CheckViolation:
		vErr := &errs.ValidationError{}
		vErr.Add(pgErr.ConstraintName, "constraint violated")
		return vErr
	}
	return err
}

func (r *repository) GetUserBySubject(ctx context.Context, subject string) (model.User, error) {
	q, args, err := qb.Select("id", "subject", "name", "email", "role", "unit_id").
		From(usersTableName).
		Where(sq.Eq{"subject": subject}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.User{}, err
	}
	u, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUnauthorized
		}
		return model.User{}, err
	}
	return u, nil
}

func roomsQuery() sq.SelectBuilder {
	return qb.Select("r.id", "r.name", "r.capacity", "r.area", "r.unit_id", "un.name as unit_name", "r.active").
		From(roomsTableName + " r").
		Join(unitsTableName + " un on un.id = r.unit_id")
}

func (r *repository) ListRooms(ctx context.Context, page, size int) (model.ListRooms, error) {
	q := roomsQuery().Where(sq.Eq{"r.active": true}).OrderBy("r.name")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListRooms{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListRooms{}, err
	}
	rooms, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Room])
	if err != nil {
		return model.ListRooms{}, err
	}

	var total int
	countQ, countArgs, err := qb.Select("count(*)").From(roomsTableName).Where(sq.Eq{"active": true}).ToSql()
	if err != nil {
		return model.ListRooms{}, err
	}
	if err := r.db.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return model.ListRooms{}, err
	}

	return model.ListRooms{
		Paging: model.Paging{Page: page, PageSize: size, TotalElements: total},
		Items:  rooms,
	}, nil
}

func (r *repository) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	query, args, err := roomsQuery().Where(sq.Eq{"r.id": id}).Limit(1).ToSql()
	if err != nil {
		return model.Room{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Room{}, err
	}
	room, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Room])
	if err != nil {
		return model.Room{}, mapErr(err)
	}
	return room, nil
}

func (r *repository) ListEquipment(ctx context.Context, roomID int64) ([]model.Equipment, error) {
	query, args, err := qb.Select("id", "room_id", "name", "asset_tag", "quantity").
		From(equipmentTableName).
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Equipment])
}
