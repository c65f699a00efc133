package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

const bcryptCost = 10

// ErrInvalidCredentials is returned when email or password is incorrect.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles signup, login and session issuance.
type AuthService interface {
	Signup(ctx context.Context, email, password, fullName, phone string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	sessions    *auth.SessionService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, sessions *auth.SessionService) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessions:    sessions,
	}
}

// Signup registers a new account and returns it with a session token.
// Public signup creates an admin: employees are added through the directory.
func (s *authService) Signup(ctx context.Context, email, password, fullName, phone string) (*model.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
		Phone:        phone,
		Role:         model.RoleAdmin,
	}
	profile := &model.Profile{
		Email:    email,
		FullName: fullName,
	}

	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}
	return user, token, nil
}

// Login authenticates the user and returns a fresh session token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// Older accounts may predate the profile row.
	if _, err := s.profileRepo.FindProfile(ctx, user.ID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("load profile: %w", err)
		}
		profile := &model.Profile{
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		}
		if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
			return nil, "", fmt.Errorf("ensure profile: %w", err)
		}
	}

	token, err := s.sessions.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}
	return user, token, nil
}
