package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

const defaultProficiency = "Intermediate"

// FullProfile bundles everything the profile page shows.
type FullProfile struct {
	Profile  *model.Profile      `json:"profile,omitempty"`
	Personal *model.PersonalInfo `json:"personal,omitempty"`
	Banking  *model.BankingInfo  `json:"banking,omitempty"`
	Skills   []model.Skill       `json:"skills"`
}

// PayrollView is the payroll page payload. A user without a salary row gets
// a zero-valued structure rather than an error.
type PayrollView struct {
	Salary  *model.SalaryInfo  `json:"salary"`
	Banking *model.BankingInfo `json:"banking,omitempty"`
}

// UpdateProfileInput carries the self-service profile fields.
type UpdateProfileInput struct {
	FullName  string
	AvatarURL string
	Location  string
	About     string
}

// ProfileService is the employee's own profile management.
type ProfileService interface {
	FullProfile(ctx context.Context, ident auth.Identity) (*FullProfile, error)
	UpdateProfile(ctx context.Context, ident auth.Identity, input UpdateProfileInput) error
	UpdatePersonal(ctx context.Context, ident auth.Identity, info *model.PersonalInfo) error
	UpdateBanking(ctx context.Context, ident auth.Identity, info *model.BankingInfo) error
	AddSkill(ctx context.Context, ident auth.Identity, name, proficiency string) (*model.Skill, error)
	RemoveSkill(ctx context.Context, ident auth.Identity, skillID uuid.UUID) error
	Payroll(ctx context.Context, ident auth.Identity) (*PayrollView, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) FullProfile(ctx context.Context, ident auth.Identity) (*FullProfile, error) {
	var (
		full FullProfile
		err  error
	)
	if full.Profile, err = ignoreMissing(s.repo.FindProfile(ctx, ident.UserID)); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if full.Personal, err = ignoreMissing(s.repo.FindPersonal(ctx, ident.UserID)); err != nil {
		return nil, fmt.Errorf("load personal info: %w", err)
	}
	if full.Banking, err = ignoreMissing(s.repo.FindBanking(ctx, ident.UserID)); err != nil {
		return nil, fmt.Errorf("load banking info: %w", err)
	}
	if full.Skills, err = s.repo.ListSkills(ctx, ident.UserID); err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	return &full, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, ident auth.Identity, input UpdateProfileInput) error {
	profile, err := s.repo.FindProfile(ctx, ident.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load profile: %w", err)
		}
		profile = &model.Profile{UserID: ident.UserID}
	}

	profile.FullName = input.FullName
	profile.AvatarURL = input.AvatarURL
	profile.Location = input.Location
	profile.About = input.About

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (s *profileService) UpdatePersonal(ctx context.Context, ident auth.Identity, info *model.PersonalInfo) error {
	info.UserID = ident.UserID
	if err := s.repo.UpsertPersonal(ctx, info); err != nil {
		return fmt.Errorf("upsert personal info: %w", err)
	}
	return nil
}

func (s *profileService) UpdateBanking(ctx context.Context, ident auth.Identity, info *model.BankingInfo) error {
	info.UserID = ident.UserID
	if err := s.repo.UpsertBanking(ctx, info); err != nil {
		return fmt.Errorf("upsert banking info: %w", err)
	}
	return nil
}

func (s *profileService) AddSkill(ctx context.Context, ident auth.Identity, name, proficiency string) (*model.Skill, error) {
	if proficiency == "" {
		proficiency = defaultProficiency
	}
	skill := &model.Skill{
		UserID:           ident.UserID,
		SkillName:        name,
		ProficiencyLevel: proficiency,
	}
	if err := s.repo.AddSkill(ctx, skill); err != nil {
		return nil, fmt.Errorf("add skill: %w", err)
	}
	return skill, nil
}

// RemoveSkill deletes the skill only when it belongs to the caller.
func (s *profileService) RemoveSkill(ctx context.Context, ident auth.Identity, skillID uuid.UUID) error {
	affected, err := s.repo.DeleteSkill(ctx, skillID, ident.UserID)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrSkillNotFound
	}
	return nil
}

func (s *profileService) Payroll(ctx context.Context, ident auth.Identity) (*PayrollView, error) {
	salary, err := ignoreMissing(s.repo.FindSalary(ctx, ident.UserID))
	if err != nil {
		return nil, fmt.Errorf("load salary info: %w", err)
	}
	if salary == nil {
		salary = &model.SalaryInfo{UserID: ident.UserID}
	}

	banking, err := ignoreMissing(s.repo.FindBanking(ctx, ident.UserID))
	if err != nil {
		return nil, fmt.Errorf("load banking info: %w", err)
	}

	return &PayrollView{Salary: salary, Banking: banking}, nil
}
