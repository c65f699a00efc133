package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hrflow/internal/service"
)

// LeaveHandler handles leave submission and decisions.
type LeaveHandler struct {
	leaveService service.LeaveService
}

// NewLeaveHandler creates a new leave handler.
func NewLeaveHandler(leaveService service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// SubmitLeaveRequest represents a leave submission.
type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,max=100"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"omitempty,max=2000"`
}

// DecideLeaveRequest represents an admin decision.
type DecideLeaveRequest struct {
	Status  string `json:"status" validate:"required,oneof=Approved Rejected"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// Submit godoc
// @Summary File a leave request
// @Tags leave
// @Accept json
// @Produce json
// @Param request body SubmitLeaveRequest true "Leave data"
// @Success 201 {object} model.LeaveRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /leave [post]
func (h *LeaveHandler) Submit(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req SubmitLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, _ := time.ParseInLocation(dateLayout, req.StartDate, time.Local)
	end, _ := time.ParseInLocation(dateLayout, req.EndDate, time.Local)

	request, err := h.leaveService.Submit(c.Request().Context(), ident, req.LeaveType, start, end, req.Reason)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, request)
}

// Overview godoc
// @Summary Own leave requests and balance
// @Tags leave
// @Produce json
// @Success 200 {object} service.LeaveOverview
// @Failure 401 {object} errors.ErrorResponse
// @Router /leave [get]
func (h *LeaveHandler) Overview(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	overview, err := h.leaveService.Overview(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, overview)
}

// ListAll godoc
// @Summary All leave requests (admin)
// @Tags leave
// @Produce json
// @Success 200 {array} repository.LeaveRow
// @Failure 401 {object} errors.ErrorResponse
// @Router /leave/all [get]
func (h *LeaveHandler) ListAll(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	rows, err := h.leaveService.ListAll(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Decide godoc
// @Summary Approve or reject a pending request (admin)
// @Tags leave
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID"
// @Param request body DecideLeaveRequest true "Decision"
// @Success 200 {object} model.LeaveRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /leave/{id}/decision [post]
func (h *LeaveHandler) Decide(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid leave request id")
	}

	var req DecideLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.leaveService.Decide(c.Request().Context(), ident, requestID, req.Status, req.Comment)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, request)
}
