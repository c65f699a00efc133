package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

// EmployeeRecord is a user with every dependent row loaded.
type EmployeeRecord struct {
	User     model.User          `json:"user"`
	Profile  *model.Profile      `json:"profile,omitempty"`
	Personal *model.PersonalInfo `json:"personal,omitempty"`
	Banking  *model.BankingInfo  `json:"banking,omitempty"`
	Salary   *model.SalaryInfo   `json:"salary,omitempty"`
	Skills   []model.Skill       `json:"skills"`
}

// CreateEmployeeInput carries the fields of an admin employee creation.
type CreateEmployeeInput struct {
	Email      string
	Password   string
	FullName   string
	Role       string
	Phone      string
	Department string
}

// UpdateEmployeeInput carries an admin employee update. Nil sub-records are
// left untouched; a non-empty Password resets the credential.
type UpdateEmployeeInput struct {
	Email      string
	FullName   string
	Role       string
	Phone      string
	Password   string
	Department string
	Personal   *model.PersonalInfo
	Banking    *model.BankingInfo
	Salary     *model.SalaryInfo
}

// EmployeeService is the admin-only employee directory. Every operation
// re-checks the admin role even though the route gate already did.
type EmployeeService interface {
	Create(ctx context.Context, ident auth.Identity, input CreateEmployeeInput) (*model.User, error)
	List(ctx context.Context, ident auth.Identity) ([]model.User, error)
	Get(ctx context.Context, ident auth.Identity, id uuid.UUID) (*EmployeeRecord, error)
	Update(ctx context.Context, ident auth.Identity, id uuid.UUID, input UpdateEmployeeInput) (*model.User, error)
	Delete(ctx context.Context, ident auth.Identity, id uuid.UUID) error
}

type employeeService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewEmployeeService creates a new employee directory service.
func NewEmployeeService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) EmployeeService {
	return &employeeService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Create adds a user with its profile row in one transaction.
func (s *employeeService) Create(ctx context.Context, ident auth.Identity, input CreateEmployeeInput) (*model.User, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleEmployee
	}
	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		FullName:     input.FullName,
		Phone:        input.Phone,
		Role:         role,
	}
	profile := &model.Profile{
		Email:      input.Email,
		FullName:   input.FullName,
		Department: input.Department,
	}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return user, nil
}

// List returns the directory, newest first.
func (s *employeeService) List(ctx context.Context, ident auth.Identity) ([]model.User, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get loads a user with all of its dependent rows.
func (s *employeeService) Get(ctx context.Context, ident auth.Identity, id uuid.UUID) (*EmployeeRecord, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	record := &EmployeeRecord{User: *user}
	if record.Profile, err = ignoreMissing(s.profileRepo.FindProfile(ctx, id)); err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if record.Personal, err = ignoreMissing(s.profileRepo.FindPersonal(ctx, id)); err != nil {
		return nil, fmt.Errorf("load personal info: %w", err)
	}
	if record.Banking, err = ignoreMissing(s.profileRepo.FindBanking(ctx, id)); err != nil {
		return nil, fmt.Errorf("load banking info: %w", err)
	}
	if record.Salary, err = ignoreMissing(s.profileRepo.FindSalary(ctx, id)); err != nil {
		return nil, fmt.Errorf("load salary info: %w", err)
	}
	if record.Skills, err = s.profileRepo.ListSkills(ctx, id); err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	return record, nil
}

// Update saves the user, its profile and any provided sub-records in one
// transaction.
func (s *employeeService) Update(ctx context.Context, ident auth.Identity, id uuid.UUID, input UpdateEmployeeInput) (*model.User, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.Email = input.Email
	user.FullName = input.FullName
	user.Role = input.Role
	user.Phone = input.Phone
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	// Mutate the existing profile so the upsert does not wipe fields the
	// employee maintains themselves.
	profile, err := ignoreMissing(s.profileRepo.FindProfile(ctx, id))
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		profile = &model.Profile{UserID: id}
	}
	profile.Email = input.Email
	profile.FullName = input.FullName
	if input.Department != "" {
		profile.Department = input.Department
	}

	if err := s.userRepo.SaveEmployeeRecord(ctx, user, profile, input.Personal, input.Banking, input.Salary); err != nil {
		return nil, fmt.Errorf("save employee record: %w", err)
	}
	return user, nil
}

// Delete removes the user and every dependent row in one transaction.
func (s *employeeService) Delete(ctx context.Context, ident auth.Identity, id uuid.UUID) error {
	if err := auth.RequireAdmin(ident); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.userRepo.DeleteWithDependents(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// ignoreMissing turns gorm.ErrRecordNotFound into a nil row.
func ignoreMissing[T any](row *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}
