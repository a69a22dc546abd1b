package handler

import (
	"net/http"

	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/labstack/echo/v4"
)

// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Success 200 {array} model.Booking
// @Failure 401
// @Failure 500
// @Router /bookings [get]
func (h *Handler) ListBookings(c echo.Context) error {
	items, err := h.bookingSvc.ListBookings(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Success 200 {array} model.Booking
// @Failure 401
// @Failure 500
// @Router /bookings/mine [get]
func (h *Handler) MyBookings(c echo.Context) error {
	items, err := h.bookingSvc.MyBookings(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary List bookings awaiting approval
// @Tags bookings
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Success 200 {array} model.Booking
// @Failure 401
// @Failure 403
// @Failure 500
// @Router /bookings/pending [get]
func (h *Handler) PendingQueue(c echo.Context) error {
	items, err := h.bookingSvc.PendingQueue(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary Bookings, approval queue and pending checklists of the caller
// @Tags bookings
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Success 200 {object} model.Dashboard
// @Failure 401
// @Failure 500
// @Router /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.bookingSvc.Dashboard(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// @Summary Create a booking series
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param request body model.CreateSeriesRequest true "request"
// @Success 201 {object} model.CreateSeriesResponse
// @Failure 400
// @Failure 401
// @Failure 409 {object} model.NoSlotsResponse
// @Failure 500
// @Router /bookings [post]
func (h *Handler) CreateBookingSeries(c echo.Context) error {
	var req model.CreateSeriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return h.invalid(c, err)
	}
	resp, err := h.bookingSvc.CreateBookingSeries(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// @Summary Approve a booking or its series
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param id path int true "id"
// @Param request body model.ApproveRequest true "request"
// @Success 200 {object} model.MutationResult
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /bookings/{id}/approve [post]
func (h *Handler) ApproveBooking(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.ApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Scope == "" {
		req.Scope = model.ScopeSingle
	}
	if err := c.Validate(req); err != nil {
		return h.invalid(c, err)
	}
	res, err := h.bookingSvc.ApproveBooking(c.Request().Context(), id, req.Scope)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// @Summary Reject a booking or its series
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param id path int true "id"
// @Param request body model.RejectRequest true "request"
// @Success 200 {object} model.MutationResult
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /bookings/{id}/reject [post]
func (h *Handler) RejectBooking(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.RejectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Scope == "" {
		req.Scope = model.ScopeSingle
	}
	if err := c.Validate(req); err != nil {
		return h.invalid(c, err)
	}
	res, err := h.bookingSvc.RejectBooking(c.Request().Context(), id, req.Scope, req.Status)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
