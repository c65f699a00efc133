package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hrflow/internal/model"
	"hrflow/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.Profile) error {
	args := m.Called(ctx, user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) SaveEmployeeRecord(ctx context.Context, user *model.User, profile *model.Profile, personal *model.PersonalInfo, banking *model.BankingInfo, salary *model.SalaryInfo) error {
	args := m.Called(ctx, user, profile, personal, banking, salary)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteWithDependents(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindPersonal(ctx context.Context, userID uuid.UUID) (*model.PersonalInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PersonalInfo), args.Error(1)
}

func (m *MockProfileRepository) UpsertPersonal(ctx context.Context, info *model.PersonalInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockProfileRepository) FindBanking(ctx context.Context, userID uuid.UUID) (*model.BankingInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankingInfo), args.Error(1)
}

func (m *MockProfileRepository) UpsertBanking(ctx context.Context, info *model.BankingInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockProfileRepository) FindSalary(ctx context.Context, userID uuid.UUID) (*model.SalaryInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SalaryInfo), args.Error(1)
}

func (m *MockProfileRepository) UpsertSalary(ctx context.Context, info *model.SalaryInfo) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

func (m *MockProfileRepository) ListSkills(ctx context.Context, userID uuid.UUID) ([]model.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Skill), args.Error(1)
}

func (m *MockProfileRepository) AddSkill(ctx context.Context, skill *model.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteSkill(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfileRepository) ListDepartmentCounts(ctx context.Context) ([]repository.DepartmentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DepartmentCount), args.Error(1)
}

// MockAttendanceRepository is a mock implementation of repository.AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, record *model.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) FindLatestOpen(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceRecord, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) FindLatestForDay(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceRecord, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) SetCheckOut(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockAttendanceRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.AttendanceRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) ListForDay(ctx context.Context, date time.Time) ([]repository.DayAttendanceRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.DayAttendanceRow), args.Error(1)
}

func (m *MockAttendanceRepository) MonthlyStats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*repository.MonthlyAttendanceStats, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MonthlyAttendanceStats), args.Error(1)
}

func (m *MockAttendanceRepository) CountByStatusOn(ctx context.Context, date time.Time, status string) (int64, error) {
	args := m.Called(ctx, date, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockLeaveRepository is a mock implementation of repository.LeaveRepository.
type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) Create(ctx context.Context, request *model.LeaveRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockLeaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LeaveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.LeaveRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) ListAll(ctx context.Context) ([]repository.LeaveRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LeaveRow), args.Error(1)
}

func (m *MockLeaveRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status, comment string) error {
	args := m.Called(ctx, id, status, comment)
	return args.Error(0)
}

func (m *MockLeaveRepository) SumDays(ctx context.Context, userID uuid.UUID, statuses []string) (int, error) {
	args := m.Called(ctx, userID, statuses)
	return args.Int(0), args.Error(1)
}

func (m *MockLeaveRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
