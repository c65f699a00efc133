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

func TestEmployeeService_Create(t *testing.T) {
	admin := auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}

	t.Run("success defaults role to employee", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByEmail", mock.Anything, "new@dayflow.test").Return(nil, gorm.ErrRecordNotFound)
		mockUsers.On("CreateWithProfile", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@dayflow.test" &&
				u.Role == model.RoleEmployee &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
		}), mock.MatchedBy(func(p *model.Profile) bool {
			return p.Email == "new@dayflow.test" && p.Department == "Engineering"
		})).Return(nil)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		user, err := svc.Create(context.Background(), admin, CreateEmployeeInput{
			Email:      "new@dayflow.test",
			Password:   "secret1",
			FullName:   "New Person",
			Department: "Engineering",
		})
		assert.NoError(t, err)
		assert.Equal(t, model.RoleEmployee, user.Role)
		mockUsers.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByEmail", mock.Anything, "taken@dayflow.test").Return(&model.User{Email: "taken@dayflow.test"}, nil)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		user, err := svc.Create(context.Background(), admin, CreateEmployeeInput{
			Email:    "taken@dayflow.test",
			Password: "secret1",
		})
		assert.Equal(t, apperrors.ErrEmailTaken, err)
		assert.Nil(t, user)
		mockUsers.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-admin", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		svc := NewEmployeeService(mockUsers, mockProfiles)

		employee := auth.Identity{UserID: uuid.New(), Role: model.RoleEmployee}
		user, err := svc.Create(context.Background(), employee, CreateEmployeeInput{Email: "x@dayflow.test"})
		assert.Equal(t, apperrors.ErrUnauthorized, err)
		assert.Nil(t, user)
		mockUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestEmployeeService_Get(t *testing.T) {
	admin := auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	employeeID := uuid.New()

	t.Run("missing sub-records come back nil", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByID", mock.Anything, employeeID).Return(&model.User{ID: employeeID, Email: "e@dayflow.test"}, nil)
		mockProfiles.On("FindProfile", mock.Anything, employeeID).Return(&model.Profile{UserID: employeeID}, nil)
		mockProfiles.On("FindPersonal", mock.Anything, employeeID).Return(nil, gorm.ErrRecordNotFound)
		mockProfiles.On("FindBanking", mock.Anything, employeeID).Return(nil, gorm.ErrRecordNotFound)
		mockProfiles.On("FindSalary", mock.Anything, employeeID).Return(nil, gorm.ErrRecordNotFound)
		mockProfiles.On("ListSkills", mock.Anything, employeeID).Return([]model.Skill{{SkillName: "Go"}}, nil)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		record, err := svc.Get(context.Background(), admin, employeeID)
		assert.NoError(t, err)
		assert.Equal(t, employeeID, record.User.ID)
		assert.NotNil(t, record.Profile)
		assert.Nil(t, record.Personal)
		assert.Nil(t, record.Banking)
		assert.Nil(t, record.Salary)
		assert.Len(t, record.Skills, 1)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByID", mock.Anything, employeeID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		record, err := svc.Get(context.Background(), admin, employeeID)
		assert.Equal(t, apperrors.ErrEmployeeNotFound, err)
		assert.Nil(t, record)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	admin := auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	employeeID := uuid.New()

	t.Run("keeps the stored hash when password is empty", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByID", mock.Anything, employeeID).Return(&model.User{
			ID:           employeeID,
			Email:        "old@dayflow.test",
			PasswordHash: "existing-hash",
			Role:         model.RoleEmployee,
		}, nil)
		mockProfiles.On("FindProfile", mock.Anything, employeeID).Return(&model.Profile{
			UserID:     employeeID,
			Department: "Engineering",
			About:      "likes databases",
		}, nil)
		mockUsers.On("SaveEmployeeRecord", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@dayflow.test" && u.PasswordHash == "existing-hash"
		}), mock.MatchedBy(func(p *model.Profile) bool {
			// Fields the employee edits themselves survive the admin update.
			return p.About == "likes databases" && p.Department == "Engineering"
		}), (*model.PersonalInfo)(nil), (*model.BankingInfo)(nil), (*model.SalaryInfo)(nil)).Return(nil)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		user, err := svc.Update(context.Background(), admin, employeeID, UpdateEmployeeInput{
			Email:    "new@dayflow.test",
			FullName: "Renamed Person",
			Role:     model.RoleEmployee,
		})
		assert.NoError(t, err)
		assert.Equal(t, "new@dayflow.test", user.Email)
		mockUsers.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByID", mock.Anything, employeeID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		user, err := svc.Update(context.Background(), admin, employeeID, UpdateEmployeeInput{})
		assert.Equal(t, apperrors.ErrEmployeeNotFound, err)
		assert.Nil(t, user)
		mockUsers.AssertNotCalled(t, "SaveEmployeeRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	admin := auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin}
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByID", mock.Anything, employeeID).Return(&model.User{ID: employeeID}, nil)
		mockUsers.On("DeleteWithDependents", mock.Anything, employeeID).Return(nil)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		assert.NoError(t, svc.Delete(context.Background(), admin, employeeID))
		mockUsers.AssertExpectations(t)
	})

	t.Run("non-admin mutates nothing", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		svc := NewEmployeeService(mockUsers, mockProfiles)

		employee := auth.Identity{UserID: uuid.New(), Role: model.RoleEmployee}
		err := svc.Delete(context.Background(), employee, employeeID)
		assert.Equal(t, apperrors.ErrUnauthorized, err)
		mockUsers.AssertNotCalled(t, "DeleteWithDependents", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockProfiles := new(MockProfileRepository)
		mockUsers.On("FindByID", mock.Anything, employeeID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEmployeeService(mockUsers, mockProfiles)

		err := svc.Delete(context.Background(), admin, employeeID)
		assert.Equal(t, apperrors.ErrEmployeeNotFound, err)
		mockUsers.AssertNotCalled(t, "DeleteWithDependents", mock.Anything, mock.Anything)
	})
}
