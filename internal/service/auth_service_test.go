package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
)

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		fullName      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			email:    "admin@example.com",
			password: "password123",
			fullName: "Admin User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("CreateWithProfile", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Profile")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already taken",
			email:    "existing@example.com",
			password: "password123",
			fullName: "Existing User",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockProfiles := new(MockProfileRepository)
			tt.setupMock(mockUsers)

			sessions := auth.NewSessionService("test-secret")
			svc := NewAuthService(mockUsers, mockProfiles, sessions)

			user, token, err := svc.Signup(context.Background(), tt.email, tt.password, tt.fullName, "")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, model.RoleAdmin, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				// The stored hash must verify against the original password.
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockProfileRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mUsers *MockUserRepository, mProfiles *MockProfileRepository) {
				hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mUsers.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashed),
					Role:         model.RoleEmployee,
				}, nil)
				mProfiles.On("FindProfile", mock.Anything, userID).Return(&model.Profile{UserID: userID}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "user not found",
			email:    "missing@example.com",
			password: "password123",
			setupMock: func(mUsers *MockUserRepository, mProfiles *MockProfileRepository) {
				mUsers.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "not-the-password",
			setupMock: func(mUsers *MockUserRepository, mProfiles *MockProfileRepository) {
				hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)
				mUsers.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockProfiles := new(MockProfileRepository)
			tt.setupMock(mockUsers, mockProfiles)

			sessions := auth.NewSessionService("test-secret")
			svc := NewAuthService(mockUsers, mockProfiles, sessions)

			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				// The token must read back as the logged-in user.
				ident := sessions.Read(token)
				assert.NotNil(t, ident)
				assert.Equal(t, userID, ident.UserID)
				assert.Equal(t, model.RoleEmployee, ident.Role)
			}

			mockUsers.AssertExpectations(t)
			mockProfiles.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_EnsuresProfile(t *testing.T) {
	userID := uuid.New()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	mockUsers := new(MockUserRepository)
	mockProfiles := new(MockProfileRepository)
	mockUsers.On("FindByEmail", mock.Anything, "old@example.com").Return(&model.User{
		ID:           userID,
		Email:        "old@example.com",
		FullName:     "Old Account",
		PasswordHash: string(hashed),
		Role:         model.RoleEmployee,
	}, nil)
	mockProfiles.On("FindProfile", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
	mockProfiles.On("UpsertProfile", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
		return p.UserID == userID && p.Email == "old@example.com"
	})).Return(nil)

	sessions := auth.NewSessionService("test-secret")
	svc := NewAuthService(mockUsers, mockProfiles, sessions)

	_, token, err := svc.Login(context.Background(), "old@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	mockProfiles.AssertExpectations(t)
}
