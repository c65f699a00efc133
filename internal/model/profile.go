package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile is the public-facing extension of a user, one row per user.
// Its primary key is the owning user's id.
type Profile struct {
	UserID     uuid.UUID `json:"user_id" gorm:"type:char(36);primaryKey;column:user_id"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FullName   string    `json:"full_name" gorm:"size:255"`
	AvatarURL  string    `json:"avatar_url,omitempty" gorm:"size:512"`
	Department string    `json:"department,omitempty" gorm:"size:255;index"`
	Company    string    `json:"company,omitempty" gorm:"size:255;default:'Dayflow'"`
	Location   string    `json:"location,omitempty" gorm:"size:255"`
	About      string    `json:"about,omitempty" gorm:"type:text"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PersonalInfo holds private employee details, one row per user.
type PersonalInfo struct {
	ID              uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID          uuid.UUID  `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	DateOfBirth     *time.Time `json:"date_of_birth,omitempty" gorm:"type:date"`
	Nationality     string     `json:"nationality,omitempty" gorm:"size:100"`
	Gender          string     `json:"gender,omitempty" gorm:"size:50"`
	MaritalStatus   string     `json:"marital_status,omitempty" gorm:"size:50"`
	PersonalEmail   string     `json:"personal_email,omitempty" gorm:"size:255"`
	ResidingAddress string     `json:"residing_address,omitempty" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *PersonalInfo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BankingInfo holds payout account details, one row per user.
type BankingInfo struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	BankName      string    `json:"bank_name,omitempty" gorm:"size:255"`
	AccountNumber string    `json:"account_number,omitempty" gorm:"size:64"`
	IFSCCode      string    `json:"ifsc_code,omitempty" gorm:"size:32"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *BankingInfo) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// SalaryInfo holds the salary structure, one row per user.
type SalaryInfo struct {
	ID                uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID            uuid.UUID       `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	BasicSalary       decimal.Decimal `json:"basic_salary" gorm:"type:decimal(12,2)"`
	HRA               decimal.Decimal `json:"hra" gorm:"type:decimal(12,2);column:hra"`
	StandardAllowance decimal.Decimal `json:"standard_allowance" gorm:"type:decimal(12,2)"`
	PerformanceBonus  decimal.Decimal `json:"performance_bonus" gorm:"type:decimal(12,2)"`
	LTA               decimal.Decimal `json:"lta" gorm:"type:decimal(12,2);column:lta"`
	FixedAllowance    decimal.Decimal `json:"fixed_allowance" gorm:"type:decimal(12,2)"`
	EmployeePF        decimal.Decimal `json:"employee_pf" gorm:"type:decimal(12,2)"`
	EmployerPF        decimal.Decimal `json:"employer_pf" gorm:"type:decimal(12,2)"`
	ProfessionalTax   decimal.Decimal `json:"professional_tax" gorm:"type:decimal(12,2)"`
	GrossSalary       decimal.Decimal `json:"gross_salary" gorm:"type:decimal(12,2)"`
	NetSalary         decimal.Decimal `json:"net_salary" gorm:"type:decimal(12,2)"`
	CTC               decimal.Decimal `json:"ctc" gorm:"type:decimal(12,2);column:ctc"`
	EffectiveFrom     *time.Time      `json:"effective_from,omitempty" gorm:"type:date"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *SalaryInfo) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Skill is a freeform skill entry, many per user.
type Skill struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID           uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	SkillName        string    `json:"skill_name" gorm:"size:255;not null"`
	ProficiencyLevel string    `json:"proficiency_level,omitempty" gorm:"size:50"`
	CreatedAt        time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
