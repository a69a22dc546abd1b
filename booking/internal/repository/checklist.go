package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var checklistColumns = []string{
	"c.id", "c.booking_id", "b.room_id", "r.name as room_name", "u.name as requester_name",
	"a.name as author_name", "b.series_code", "b.period", "b.start_at",
	"c.material_ok", "c.cleanliness_ok", "c.note", "c.created_at",
}

func checklistsFrom(columns ...string) sq.SelectBuilder {
	return qb.Select(columns...).
		From(checklistsTableName + " c").
		Join(bookingsTableName + " b on b.id = c.booking_id").
		Join(roomsTableName + " r on r.id = b.room_id").
		Join(usersTableName + " u on u.id = b.requester_id").
		Join(usersTableName + " a on a.id = c.author_id")
}

func applyHistoryFilter(q sq.SelectBuilder, f model.HistoryFilter) sq.SelectBuilder {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where(sq.Or{
			sq.ILike{"r.name": like},
			sq.ILike{"u.name": like},
			sq.ILike{"a.name": like},
			sq.ILike{"c.note": like},
		})
	}
	if f.RoomID != 0 {
		q = q.Where(sq.Eq{"b.room_id": f.RoomID})
	}
	if f.Date != nil {
		q = q.Where(sq.Eq{"b.booking_date": *f.Date})
	}
	switch f.Conformance {
	case model.ConformanceConform:
		q = q.Where("c.material_ok and c.cleanliness_ok")
	case model.ConformanceNonConform:
		q = q.Where("not (c.material_ok and c.cleanliness_ok)")
	}
	return q
}

func historyQuery(f model.HistoryFilter) sq.SelectBuilder {
	q := applyHistoryFilter(checklistsFrom(checklistColumns...), f).
		OrderBy("c.created_at desc", "c.id desc")
	if f.Page != 0 && f.Size != 0 {
		q = q.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}
	return q
}

func (r *repository) ChecklistHistory(ctx context.Context, filter model.HistoryFilter) (model.ListChecklists, error) {
	query, args, err := historyQuery(filter).ToSql()
	if err != nil {
		return model.ListChecklists{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListChecklists{}, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ChecklistSummary])
	if err != nil {
		return model.ListChecklists{}, err
	}

	countQ, countArgs, err := applyHistoryFilter(checklistsFrom("count(*)"), filter).ToSql()
	if err != nil {
		return model.ListChecklists{}, err
	}
	var total int
	if err := r.db.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return model.ListChecklists{}, err
	}

	return model.ListChecklists{
		Paging: model.Paging{Page: filter.Page, PageSize: filter.Size, TotalElements: total},
		Items:  items,
	}, nil
}

func (r *repository) GetChecklist(ctx context.Context, id int64) (model.ChecklistSummary, error) {
	query, args, err := checklistsFrom(checklistColumns...).Where(sq.Eq{"c.id": id}).Limit(1).ToSql()
	if err != nil {
		return model.ChecklistSummary{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ChecklistSummary{}, err
	}
	c, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ChecklistSummary])
	if err != nil {
		return model.ChecklistSummary{}, mapErr(err)
	}
	return c, nil
}

// eligibleQuery locks the bookings a submission may complete: confirmed,
// already started and still without a checklist.
func eligibleQuery(sub model.ChecklistSubmission) sq.SelectBuilder {
	q := qb.Select("b.id").
		From(bookingsTableName + " b").
		Where(sq.Eq{"b.status": string(model.StatusConfirmed)}).
		Where(sq.LtOrEq{"b.start_at": sub.Now}).
		Where(fmt.Sprintf("not exists (select 1 from %s c where c.booking_id = b.id)", checklistsTableName))
	if sub.SeriesCode != "" {
		q = q.Where(sq.Eq{"b.series_code": sub.SeriesCode})
	} else {
		q = q.Where(sq.Eq{"b.id": sub.BookingID})
	}
	return q.OrderBy("b.id").Suffix("for update of b")
}

// SubmitChecklist stores one checklist per eligible booking and completes
// those bookings, all in one transaction.
func (r *repository) SubmitChecklist(ctx context.Context, sub model.ChecklistSubmission) ([]int64, error) {
	lockQ, lockArgs, err := eligibleQuery(sub).ToSql()
	if err != nil {
		return nil, err
	}

	var completed []int64
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, lockQ, lockArgs...)
		if err != nil {
			return err
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return errs.ErrNotEligible
		}

		ins := qb.Insert(checklistsTableName).
			Columns("booking_id", "author_id", "material_ok", "cleanliness_ok", "note", "created_at")
		for _, id := range ids {
			ins = ins.Values(id, sub.AuthorID, sub.MaterialOK, sub.CleanlinessOK, sub.Note, sub.Now)
		}
		insQ, insArgs, err := ins.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insQ, insArgs...); err != nil {
			return mapErr(err)
		}

		updQ, updArgs, err := qb.Update(bookingsTableName).
			Set("status", string(model.StatusCompleted)).
			Where(sq.Eq{"id": ids}).
			ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, updQ, updArgs...)
		if err != nil {
			return mapErr(err)
		}
		if int(tag.RowsAffected()) != len(ids) {
			return errors.Errorf("completed %d of %d bookings", tag.RowsAffected(), len(ids))
		}
		completed = ids
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}
