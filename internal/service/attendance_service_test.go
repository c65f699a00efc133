package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ident := auth.Identity{UserID: uuid.New(), Role: model.RoleEmployee}
	now := time.Date(2024, 3, 15, 9, 2, 0, 0, time.Local)

	mockRepo := new(MockAttendanceRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.AttendanceRecord) bool {
		return r.UserID == ident.UserID &&
			r.Status == model.AttendancePresent &&
			r.CheckInTime != nil && r.CheckInTime.Equal(now) &&
			r.CheckOutTime == nil &&
			r.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local))
	})).Return(nil)

	svc := &attendanceService{repo: mockRepo, now: fixedClock(now)}

	record, err := svc.CheckIn(context.Background(), ident)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.True(t, record.Open())
	mockRepo.AssertExpectations(t)
}

func TestAttendanceService_CheckOut(t *testing.T) {
	ident := auth.Identity{UserID: uuid.New(), Role: model.RoleEmployee}
	checkIn := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)
	now := time.Date(2024, 3, 15, 17, 30, 0, 0, time.Local)

	t.Run("closes exactly the latest open record", func(t *testing.T) {
		latest := &model.AttendanceRecord{
			ID:          uuid.New(),
			UserID:      ident.UserID,
			CheckInTime: &checkIn,
			Status:      model.AttendancePresent,
		}

		mockRepo := new(MockAttendanceRepository)
		mockRepo.On("FindLatestOpen", mock.Anything, ident.UserID, now).Return(latest, nil)
		mockRepo.On("SetCheckOut", mock.Anything, latest.ID, now).Return(nil)

		svc := &attendanceService{repo: mockRepo, now: fixedClock(now)}

		record, err := svc.CheckOut(context.Background(), ident)
		assert.NoError(t, err)
		assert.NotNil(t, record.CheckOutTime)
		assert.True(t, record.CheckOutTime.After(*record.CheckInTime))
		mockRepo.AssertExpectations(t)
	})

	t.Run("no open record mutates nothing", func(t *testing.T) {
		mockRepo := new(MockAttendanceRepository)
		mockRepo.On("FindLatestOpen", mock.Anything, ident.UserID, now).Return(nil, gorm.ErrRecordNotFound)

		svc := &attendanceService{repo: mockRepo, now: fixedClock(now)}

		record, err := svc.CheckOut(context.Background(), ident)
		assert.Equal(t, apperrors.ErrNoActiveSession, err)
		assert.Nil(t, record)
		mockRepo.AssertNotCalled(t, "SetCheckOut", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAttendanceService_Today(t *testing.T) {
	ident := auth.Identity{UserID: uuid.New(), Role: model.RoleEmployee}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

	t.Run("not checked in yet", func(t *testing.T) {
		mockRepo := new(MockAttendanceRepository)
		mockRepo.On("FindLatestForDay", mock.Anything, ident.UserID, now).Return(nil, gorm.ErrRecordNotFound)

		svc := &attendanceService{repo: mockRepo, now: fixedClock(now)}

		record, err := svc.Today(context.Background(), ident)
		assert.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("currently checked in", func(t *testing.T) {
		checkIn := now.Add(-2 * time.Hour)
		mockRepo := new(MockAttendanceRepository)
		mockRepo.On("FindLatestForDay", mock.Anything, ident.UserID, now).Return(&model.AttendanceRecord{
			UserID:      ident.UserID,
			CheckInTime: &checkIn,
		}, nil)

		svc := &attendanceService{repo: mockRepo, now: fixedClock(now)}

		record, err := svc.Today(context.Background(), ident)
		assert.NoError(t, err)
		assert.NotNil(t, record)
		assert.True(t, record.Open())
	})
}

func TestAttendanceService_Overview(t *testing.T) {
	ident := auth.Identity{UserID: uuid.New(), Role: model.RoleEmployee}
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.Local)

	mockRepo := new(MockAttendanceRepository)
	mockRepo.On("ListRecent", mock.Anything, ident.UserID, recentAttendanceLimit).Return([]model.AttendanceRecord{}, nil)
	mockRepo.On("MonthlyStats", mock.Anything, ident.UserID,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
	).Return(&repository.MonthlyAttendanceStats{Total: 8, Present: 7, Late: 1, TotalHours: 62.5}, nil)

	svc := &attendanceService{repo: mockRepo, now: fixedClock(now)}

	overview, err := svc.Overview(context.Background(), ident)
	assert.NoError(t, err)
	assert.Equal(t, int64(8), overview.MonthlyStats.Total)
	assert.Equal(t, 62.5, overview.MonthlyStats.TotalHours)
	mockRepo.AssertExpectations(t)
}

func TestAttendanceService_AllForDay_RequiresAdmin(t *testing.T) {
	mockRepo := new(MockAttendanceRepository)
	svc := &attendanceService{repo: mockRepo, now: time.Now}

	employee := auth.Identity{UserID: uuid.New(), Role: model.RoleEmployee}
	rows, err := svc.AllForDay(context.Background(), employee, time.Now())
	assert.Equal(t, apperrors.ErrUnauthorized, err)
	assert.Nil(t, rows)
	mockRepo.AssertNotCalled(t, "ListForDay", mock.Anything, mock.Anything)
}
