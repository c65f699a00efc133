package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hrflow/internal/service"
)

const dateLayout = "2006-01-02"

// AttendanceHandler handles check-in/check-out and attendance views.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckIn godoc
// @Summary Open a new attendance record for today
// @Tags attendance
// @Produce json
// @Success 201 {object} model.AttendanceRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.attendanceService.CheckIn(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// CheckOut godoc
// @Summary Close the latest open attendance record for today
// @Tags attendance
// @Produce json
// @Success 200 {object} model.AttendanceRecord
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.attendanceService.CheckOut(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Today godoc
// @Summary Latest attendance record for today
// @Tags attendance
// @Produce json
// @Success 200 {object} model.AttendanceRecord
// @Failure 401 {object} errors.ErrorResponse
// @Router /attendance/today [get]
func (h *AttendanceHandler) Today(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	record, err := h.attendanceService.Today(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Overview godoc
// @Summary Recent records and current-month aggregates
// @Tags attendance
// @Produce json
// @Success 200 {object} service.AttendanceOverview
// @Failure 401 {object} errors.ErrorResponse
// @Router /attendance [get]
func (h *AttendanceHandler) Overview(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	overview, err := h.attendanceService.Overview(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, overview)
}

// AllForDay godoc
// @Summary All employees' records for one day (admin)
// @Tags attendance
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} repository.DayAttendanceRow
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /attendance/all [get]
func (h *AttendanceHandler) AllForDay(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var date time.Time
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
		}
		date = parsed
	}

	rows, err := h.attendanceService.AllForDay(c.Request().Context(), ident, date)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
