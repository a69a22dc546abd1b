package handler

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/Astemirdum/lab-booking/booking/internal/errs"
	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/Astemirdum/lab-booking/booking/internal/service"
	"github.com/Astemirdum/lab-booking/booking/internal/slot"
	mw "github.com/Astemirdum/lab-booking/pkg/middleware"
	"github.com/Astemirdum/lab-booking/pkg/validate"
	_ "github.com/Astemirdum/lab-booking/swagger"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	bookingSvc   BookingService
	checklistSvc ChecklistService
	roomSvc      RoomService
	log          *zap.Logger
}

func New(bookingSvc BookingService, checklistSvc ChecklistService, roomSvc RoomService, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc:   bookingSvc,
		checklistSvc: checklistSvc,
		roomSvc:      roomSvc,
		log:          log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator(RegisterValidations)
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.AuthContext,
	)

	api.GET("/dashboard", h.Dashboard)

	api.GET("/bookings", h.ListBookings)
	api.GET("/bookings/mine", h.MyBookings)
	api.GET("/bookings/pending", h.PendingQueue)
	api.POST("/bookings", h.CreateBookingSeries)
	api.POST("/bookings/:id/approve", h.ApproveBooking)
	api.POST("/bookings/:id/reject", h.RejectBooking)

	api.GET("/checklists/pending", h.PendingReports)
	api.GET("/checklists", h.ChecklistHistory)
	api.GET("/checklists/:id", h.ChecklistDetail)
	api.POST("/checklists", h.SubmitChecklist)

	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/:roomId/equipment", h.RoomEquipment)
	api.GET("/rooms/:roomId/availability", h.RoomAvailability)

	return e
}

// RegisterValidations adds the custom tags used by request models and
// reports fields by their json names.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		_, err := slot.ParsePeriod(fl.Field().String())
		return err == nil
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

const internalMessage = "something went wrong, please try again"

// fail maps domain errors onto HTTP responses. Unexpected errors are logged
// and answered with a generic message.
func (h *Handler) fail(c echo.Context, err error) error {
	var (
		vErr *errs.ValidationError
		oErr *service.ObligationError
		nErr *service.NoSlotsError
	)
	switch {
	case errors.As(err, &nErr):
		skipped := nErr.Skipped
		if skipped == nil {
			skipped = []model.SkippedSlot{}
		}
		return c.JSON(http.StatusConflict, model.NoSlotsResponse{Message: nErr.Error(), Skipped: skipped})
	case errors.As(err, &oErr):
		return c.JSON(http.StatusConflict, model.ObligationResponse{
			Message:        oErr.Error(),
			Redirect:       model.ChecklistPendingRoute,
			PendingReports: oErr.PendingReports,
		})
	case errors.As(err, &vErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation failed", "errors": vErr.FieldErrors})
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrUnauthorized.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrForbidden.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	case errs.Kind(err) == "availability", errs.Kind(err) == "state", errs.Kind(err) == "obligation":
		return echo.NewHTTPError(http.StatusConflict, errors.Cause(err).Error())
	default:
		h.log.Error("request failed",
			zap.String("path", c.Path()), zap.String("kind", errs.Kind(err)), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, internalMessage)
	}
}

// invalid answers a request that failed binding or struct validation.
// Field problems get the same shape as service side validation errors.
func (h *Handler) invalid(c echo.Context, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	vErr := &errs.ValidationError{}
	for _, fe := range fieldErrs {
		msg := "failed on the '" + fe.Tag() + "' tag"
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		vErr.Add(fe.Field(), msg)
	}
	return h.fail(c, vErr)
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid size")
		}
	}
	return page, size, nil
}
