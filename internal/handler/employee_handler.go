package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hrflow/internal/model"
	"hrflow/internal/service"
)

// EmployeeHandler handles the admin employee directory.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployeeRequest represents an admin employee creation.
type CreateEmployeeRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	FullName   string `json:"full_name" validate:"required,min=2,max=255"`
	Role       string `json:"role" validate:"omitempty,oneof=admin employee"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Department string `json:"department" validate:"omitempty,max=255"`
}

// UpdateEmployeeRequest represents an admin employee update. Omitted
// sub-records stay untouched; a non-empty password resets the credential.
type UpdateEmployeeRequest struct {
	Email      string               `json:"email" validate:"required,email"`
	FullName   string               `json:"full_name" validate:"required,min=2,max=255"`
	Role       string               `json:"role" validate:"required,oneof=admin employee"`
	Phone      string               `json:"phone" validate:"omitempty,max=50"`
	Password   string               `json:"password" validate:"omitempty,min=6"`
	Department string               `json:"department" validate:"omitempty,max=255"`
	Personal   *PersonalInfoRequest `json:"personal" validate:"omitempty"`
	Banking    *BankingInfoRequest  `json:"banking" validate:"omitempty"`
	Salary     *SalaryInfoRequest   `json:"salary" validate:"omitempty"`
}

// Create godoc
// @Summary Create an employee (admin)
// @Tags employees
// @Accept json
// @Produce json
// @Param request body CreateEmployeeRequest true "Employee data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.CreateEmployeeInput{
		Email:      req.Email,
		Password:   req.Password,
		FullName:   req.FullName,
		Role:       req.Role,
		Phone:      req.Phone,
		Department: req.Department,
	}
	user, err := h.employeeService.Create(c.Request().Context(), ident, input)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// List godoc
// @Summary Employee directory (admin)
// @Tags employees
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	users, err := h.employeeService.List(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Employee with every dependent record (admin)
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} service.EmployeeRecord
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	record, err := h.employeeService.Get(c.Request().Context(), ident, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Update godoc
// @Summary Update an employee and its sub-records (admin)
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.UpdateEmployeeInput{
		Email:      req.Email,
		FullName:   req.FullName,
		Role:       req.Role,
		Phone:      req.Phone,
		Password:   req.Password,
		Department: req.Department,
	}
	var (
		personal *model.PersonalInfo
		banking  *model.BankingInfo
		salary   *model.SalaryInfo
	)
	if req.Personal != nil {
		personal = req.Personal.toModel()
	}
	if req.Banking != nil {
		banking = req.Banking.toModel()
	}
	if req.Salary != nil {
		salary = req.Salary.toModel()
	}
	input.Personal = personal
	input.Banking = banking
	input.Salary = salary

	user, err := h.employeeService.Update(c.Request().Context(), ident, id, input)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete an employee and every dependent row (admin)
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	if err := h.employeeService.Delete(c.Request().Context(), ident, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "employee deleted"})
}
