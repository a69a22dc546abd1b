package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/lab-booking/booking/internal/model"
	"github.com/labstack/echo/v4"
)

// @Summary Bookings awaiting a checklist
// @Tags checklists
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Success 200 {array} model.Booking
// @Failure 401
// @Failure 500
// @Router /checklists/pending [get]
func (h *Handler) PendingReports(c echo.Context) error {
	items, err := h.checklistSvc.PendingReports(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary Submit a checklist
// @Tags checklists
// @Accept json
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param request body model.SubmitChecklistRequest true "request"
// @Success 201 {object} model.SubmitChecklistResponse
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /checklists [post]
func (h *Handler) SubmitChecklist(c echo.Context) error {
	var req model.SubmitChecklistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return h.invalid(c, err)
	}
	resp, err := h.checklistSvc.SubmitChecklist(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// @Summary Checklist history
// @Tags checklists
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param search query string false "search"
// @Param roomId query int false "roomId"
// @Param date query string false "YYYY-MM-DD"
// @Param conformance query string false "all, conform or nonconform"
// @Param page query int false "page"
// @Param size query int false "size"
// @Success 200 {object} model.ListChecklists
// @Failure 400
// @Failure 401
// @Failure 500
// @Router /checklists [get]
func (h *Handler) ChecklistHistory(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	filter := model.HistoryFilter{
		Search:      c.QueryParam("search"),
		Conformance: model.Conformance(c.QueryParam("conformance")),
		Page:        page,
		Size:        size,
	}
	switch filter.Conformance {
	case "", model.ConformanceAll, model.ConformanceConform, model.ConformanceNonConform:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "invalid conformance")
	}
	if roomParam := c.QueryParam("roomId"); roomParam != "" {
		if filter.RoomID, err = strconv.ParseInt(roomParam, 10, 64); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid roomId")
		}
	}
	if dateParam := c.QueryParam("date"); dateParam != "" {
		date, err := time.Parse(time.DateOnly, dateParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
		}
		filter.Date = &date
	}

	list, err := h.checklistSvc.ChecklistHistory(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// @Summary Checklist detail
// @Tags checklists
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param id path int true "id"
// @Success 200 {object} model.ChecklistDetail
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 500
// @Router /checklists/{id} [get]
func (h *Handler) ChecklistDetail(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	d, err := h.checklistSvc.ChecklistDetail(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}
