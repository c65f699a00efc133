package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrflow/internal/service"
)

// DashboardHandler serves the role-dependent landing payload.
type DashboardHandler struct {
	statsService      service.StatsService
	attendanceService service.AttendanceService
	leaveService      service.LeaveService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(
	statsService service.StatsService,
	attendanceService service.AttendanceService,
	leaveService service.LeaveService,
) *DashboardHandler {
	return &DashboardHandler{
		statsService:      statsService,
		attendanceService: attendanceService,
		leaveService:      leaveService,
	}
}

// EmployeeDashboard is the employee landing payload.
type EmployeeDashboard struct {
	Today   interface{} `json:"today"`
	Balance interface{} `json:"leave_balance"`
}

// Home godoc
// @Summary Role-dependent dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router / [get]
func (h *DashboardHandler) Home(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if ident.Admin() {
		stats, err := h.statsService.AdminStats(c.Request().Context(), ident)
		if err != nil {
			return domainError(err)
		}
		return c.JSON(http.StatusOK, stats)
	}

	today, err := h.attendanceService.Today(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	overview, err := h.leaveService.Overview(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, EmployeeDashboard{
		Today:   today,
		Balance: overview.Balance,
	})
}
