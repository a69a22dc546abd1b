package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	ListBookings(ctx context.Context) ([]model.Booking, error)
	MyBookings(ctx context.Context) ([]model.Booking, error)
	PendingQueue(ctx context.Context) ([]model.Booking, error)
	Dashboard(ctx context.Context) (model.Dashboard, error)
	CreateBookingSeries(ctx context.Context, req model.CreateSeriesRequest) (model.CreateSeriesResponse, error)
	ApproveBooking(ctx context.Context, id int64, scope model.Scope) (model.MutationResult, error)
	RejectBooking(ctx context.Context, id int64, scope model.Scope, statusSnapshot model.Status) (model.MutationResult, error)
}

type ChecklistService interface {
	PendingReports(ctx context.Context) ([]model.Booking, error)
	SubmitChecklist(ctx context.Context, req model.SubmitChecklistRequest) (model.SubmitChecklistResponse, error)
	ChecklistHistory(ctx context.Context, filter model.HistoryFilter) (model.ListChecklists, error)
	ChecklistDetail(ctx context.Context, id int64) (model.ChecklistDetail, error)
}

type RoomService interface {
	ListRooms(ctx context.Context, page, size int) (model.ListRooms, error)
	RoomEquipment(ctx context.Context, roomID int64) ([]model.Equipment, error)
	RoomAvailability(ctx context.Context, roomID int64, date time.Time) (model.RoomAvailability, error)
}

var (
	_ BookingService   = (*service.Service)(nil)
	_ ChecklistService = (*service.Service)(nil)
	_ RoomService      = (*service.Service)(nil)
)
