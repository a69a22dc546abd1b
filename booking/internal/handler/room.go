package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param page query int false "page"
// @Param size query int false "size"
// @Success 200 {object} model.ListRooms
// @Failure 400
// @Failure 401
// @Failure 500
// @Router /rooms [get]
func (h *Handler) ListRooms(c echo.Context) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	rooms, err := h.roomSvc.ListRooms(c.Request().Context(), page, size)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// @Summary Room equipment
// @Tags rooms
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param roomId path int true "roomId"
// @Success 200 {array} model.Equipment
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 500
// @Router /rooms/{roomId}/equipment [get]
func (h *Handler) RoomEquipment(c echo.Context) error {
	roomID, err := paramID(c, "roomId")
	if err != nil {
		return err
	}
	items, err := h.roomSvc.RoomEquipment(c.Request().Context(), roomID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// @Summary Slot availability of a room on a date
// @Tags rooms
// @Produce json
// @Param X-User-Subject header string true "identity forwarded by the gateway"
// @Param roomId path int true "roomId"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} model.RoomAvailability
// @Failure 400
// @Failure 401
// @Failure 404
// @Failure 500
// @Router /rooms/{roomId}/availability [get]
func (h *Handler) RoomAvailability(c echo.Context) error {
	roomID, err := paramID(c, "roomId")
	if err != nil {
		return err
	}
	dateParam := c.QueryParam("date")
	if dateParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty date")
	}
	date, err := time.Parse(time.DateOnly, dateParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}
	av, err := h.roomSvc.RoomAvailability(c.Request().Context(), roomID, date)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, av)
}
