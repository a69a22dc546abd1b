package service

import (
	"context"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/cache"
	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/events"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/planner"
	"github.com/Astemirdum/lab-booking/booking/internal/repository"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
	"github.com/Astemirdum/lab-booking/pkg/auth"
	"github.com/Astemirdum/lab-booking/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultMaxSeriesDays = 180
	defaultPageSize      = 20
	maxPageSize          = 100
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	cal      *slot.Calendar
	expander *planner.Expander
	cache    *cache.Cache
	pub      events.Publisher

	now           func() time.Time
	source        string
	maxSeriesDays int
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithCache(c *cache.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithPublisher sets the event sink; source identifies this instance in events.
func WithPublisher(p events.Publisher, source string) Option {
	return func(s *Service) {
		s.pub = p
		s.source = source
	}
}

func WithMaxSeriesDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.maxSeriesDays = days
		}
	}
}

func NewService(repo repository.Repository, cal *slot.Calendar, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:           log.Named("service"),
		repo:          repo,
		cal:           cal,
		expander:      planner.NewExpander(cal),
		pub:           events.Noop(),
		now:           time.Now,
		maxSeriesDays: defaultMaxSeriesDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache exposes the listing cache to the event consumer.
func (s *Service) Cache() *cache.Cache {
	return s.cache
}

// currentUser resolves the caller by subject. Roles always come from storage.
func (s *Service) currentUser(ctx context.Context) (model.User, error) {
	subject, err := auth.GetSubject(ctx)
	if err != nil {
		return model.User{}, errs.ErrUnauthorized
	}
	return s.repo.GetUserBySubject(ctx, subject)
}

func (s *Service) requireAdmin(ctx context.Context) (model.User, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return model.User{}, err
	}
	if !u.IsAdmin() {
		return model.User{}, errs.ErrForbidden
	}
	return u, nil
}

// afterMutation runs once a mutation is committed. Publishing is best effort.
func (s *Service) afterMutation(ctx context.Context, event kafka.EventBooking) {
	if s.cache != nil {
		s.cache.Invalidate()
	}
	if len(event.BookingIDs) == 0 {
		return
	}
	event.Timestamp = s.now().UTC()
	event.Source = s.source
	if err := s.pub.Publish(ctx, event); err != nil {
		s.log.Warn("publish booking event", zap.String("type", string(event.EventType)), zap.Error(err))
	}
}

func normalizePaging(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// ObligationError blocks booking creation until the listed bookings get a checklist.
type ObligationError struct {
	PendingReports []model.Booking
}

func (e *ObligationError) Error() string {
	return errs.ErrChecklistPending.Error()
}

func (e *ObligationError) Unwrap() error {
	return errs.ErrChecklistPending
}

// NoSlotsError rejects a request whose every slot was skipped, Skipped says why.
type NoSlotsError struct {
	Skipped []model.SkippedSlot
}

func (e *NoSlotsError) Error() string {
	return errs.ErrNoSlotsAvailable.Error()
}

func (e *NoSlotsError) Unwrap() error {
	return errs.ErrNoSlotsAvailable
}

func seriesCode(b model.Booking) string {
	if b.SeriesCode == nil {
		return ""
	}
	return *b.SeriesCode
}

func wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, op)
}
