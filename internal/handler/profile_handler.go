package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hrflow/internal/model"
	"hrflow/internal/service"
)

// ProfileHandler handles the employee's own profile and payroll views.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest represents a profile update.
type UpdateProfileRequest struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=255"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	Location  string `json:"location" validate:"omitempty,max=255"`
	About     string `json:"about" validate:"omitempty,max=5000"`
}

// PersonalInfoRequest represents a personal info upsert.
type PersonalInfoRequest struct {
	DateOfBirth     string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Nationality     string `json:"nationality" validate:"omitempty,max=100"`
	Gender          string `json:"gender" validate:"omitempty,max=50"`
	MaritalStatus   string `json:"marital_status" validate:"omitempty,max=50"`
	PersonalEmail   string `json:"personal_email" validate:"omitempty,email"`
	ResidingAddress string `json:"residing_address" validate:"omitempty,max=2000"`
}

// BankingInfoRequest represents a banking info upsert.
type BankingInfoRequest struct {
	BankName      string `json:"bank_name" validate:"required,max=255"`
	AccountNumber string `json:"account_number" validate:"required,max=64"`
	IFSCCode      string `json:"ifsc_code" validate:"omitempty,max=32"`
}

// SalaryInfoRequest represents a salary structure upsert. Amounts travel as
// decimal strings.
type SalaryInfoRequest struct {
	BasicSalary       string `json:"basic_salary" validate:"omitempty,numeric"`
	HRA               string `json:"hra" validate:"omitempty,numeric"`
	StandardAllowance string `json:"standard_allowance" validate:"omitempty,numeric"`
	PerformanceBonus  string `json:"performance_bonus" validate:"omitempty,numeric"`
	LTA               string `json:"lta" validate:"omitempty,numeric"`
	FixedAllowance    string `json:"fixed_allowance" validate:"omitempty,numeric"`
	EmployeePF        string `json:"employee_pf" validate:"omitempty,numeric"`
	EmployerPF        string `json:"employer_pf" validate:"omitempty,numeric"`
	ProfessionalTax   string `json:"professional_tax" validate:"omitempty,numeric"`
	GrossSalary       string `json:"gross_salary" validate:"omitempty,numeric"`
	NetSalary         string `json:"net_salary" validate:"omitempty,numeric"`
	CTC               string `json:"ctc" validate:"omitempty,numeric"`
	EffectiveFrom     string `json:"effective_from" validate:"omitempty,datetime=2006-01-02"`
}

// AddSkillRequest represents a skill addition.
type AddSkillRequest struct {
	SkillName        string `json:"skill_name" validate:"required,min=1,max=255"`
	ProficiencyLevel string `json:"proficiency_level" validate:"omitempty,max=50"`
}

func (r *PersonalInfoRequest) toModel() *model.PersonalInfo {
	info := &model.PersonalInfo{
		Nationality:     r.Nationality,
		Gender:          r.Gender,
		MaritalStatus:   r.MaritalStatus,
		PersonalEmail:   r.PersonalEmail,
		ResidingAddress: r.ResidingAddress,
	}
	if r.DateOfBirth != "" {
		if dob, err := time.ParseInLocation(dateLayout, r.DateOfBirth, time.Local); err == nil {
			info.DateOfBirth = &dob
		}
	}
	return info
}

func (r *BankingInfoRequest) toModel() *model.BankingInfo {
	return &model.BankingInfo{
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
		IFSCCode:      r.IFSCCode,
	}
}

func (r *SalaryInfoRequest) toModel() *model.SalaryInfo {
	info := &model.SalaryInfo{
		BasicSalary:       parseAmount(r.BasicSalary),
		HRA:               parseAmount(r.HRA),
		StandardAllowance: parseAmount(r.StandardAllowance),
		PerformanceBonus:  parseAmount(r.PerformanceBonus),
		LTA:               parseAmount(r.LTA),
		FixedAllowance:    parseAmount(r.FixedAllowance),
		EmployeePF:        parseAmount(r.EmployeePF),
		EmployerPF:        parseAmount(r.EmployerPF),
		ProfessionalTax:   parseAmount(r.ProfessionalTax),
		GrossSalary:       parseAmount(r.GrossSalary),
		NetSalary:         parseAmount(r.NetSalary),
		CTC:               parseAmount(r.CTC),
	}
	if r.EffectiveFrom != "" {
		if from, err := time.ParseInLocation(dateLayout, r.EffectiveFrom, time.Local); err == nil {
			info.EffectiveFrom = &from
		}
	}
	return info
}

// parseAmount turns a validated decimal string into a Decimal, zero when
// empty.
func parseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Get godoc
// @Summary Full profile data
// @Tags profile
// @Produce json
// @Success 200 {object} service.FullProfile
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	full, err := h.profileService.FullProfile(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, full)
}

// Update godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.UpdateProfileInput{
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Location:  req.Location,
		About:     req.About,
	}
	if err := h.profileService.UpdateProfile(c.Request().Context(), ident, input); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}

// UpdatePersonal godoc
// @Summary Upsert own personal info
// @Tags profile
// @Accept json
// @Produce json
// @Param request body PersonalInfoRequest true "Personal info"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/personal [put]
func (h *ProfileHandler) UpdatePersonal(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req PersonalInfoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profileService.UpdatePersonal(c.Request().Context(), ident, req.toModel()); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "personal info updated"})
}

// UpdateBanking godoc
// @Summary Upsert own banking info
// @Tags profile
// @Accept json
// @Produce json
// @Param request body BankingInfoRequest true "Banking info"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/banking [put]
func (h *ProfileHandler) UpdateBanking(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req BankingInfoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profileService.UpdateBanking(c.Request().Context(), ident, req.toModel()); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "banking info updated"})
}

// AddSkill godoc
// @Summary Add a skill
// @Tags profile
// @Accept json
// @Produce json
// @Param request body AddSkillRequest true "Skill"
// @Success 201 {object} model.Skill
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile/skills [post]
func (h *ProfileHandler) AddSkill(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req AddSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.profileService.AddSkill(c.Request().Context(), ident, req.SkillName, req.ProficiencyLevel)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, skill)
}

// RemoveSkill godoc
// @Summary Remove a skill
// @Tags profile
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile/skills/{id} [delete]
func (h *ProfileHandler) RemoveSkill(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	skillID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid skill id")
	}

	if err := h.profileService.RemoveSkill(c.Request().Context(), ident, skillID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "skill removed"})
}

// Payroll godoc
// @Summary Own salary structure and payout account
// @Tags payroll
// @Produce json
// @Success 200 {object} service.PayrollView
// @Failure 401 {object} errors.ErrorResponse
// @Router /payroll [get]
func (h *ProfileHandler) Payroll(c echo.Context) error {
	ident, err := requireIdentity(c)
	if err != nil {
		return err
	}

	view, err := h.profileService.Payroll(c.Request().Context(), ident)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, view)
}
