package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hrflow/internal/auth"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

const recentAttendanceLimit = 10

// AttendanceOverview is the employee attendance page payload.
type AttendanceOverview struct {
	Recent       []model.AttendanceRecord          `json:"recent"`
	MonthlyStats repository.MonthlyAttendanceStats `json:"monthly_stats"`
}

// AttendanceService drives the per-user, per-day check-in/check-out state.
// Checking in always opens a fresh record; checking out closes the most
// recently opened one. A day may hold several closed periods.
type AttendanceService interface {
	CheckIn(ctx context.Context, ident auth.Identity) (*model.AttendanceRecord, error)
	CheckOut(ctx context.Context, ident auth.Identity) (*model.AttendanceRecord, error)
	Today(ctx context.Context, ident auth.Identity) (*model.AttendanceRecord, error)
	Overview(ctx context.Context, ident auth.Identity) (*AttendanceOverview, error)
	AllForDay(ctx context.Context, ident auth.Identity, date time.Time) ([]repository.DayAttendanceRow, error)
}

type attendanceService struct {
	repo repository.AttendanceRepository
	now  func() time.Time
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(repo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{
		repo: repo,
		now:  time.Now,
	}
}

// CheckIn opens a new attendance record for today. Checking in again without
// checking out is allowed and opens another record.
func (s *attendanceService) CheckIn(ctx context.Context, ident auth.Identity) (*model.AttendanceRecord, error) {
	now := s.now()
	checkIn := now
	record := &model.AttendanceRecord{
		UserID:      ident.UserID,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		CheckInTime: &checkIn,
		Status:      model.AttendancePresent,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create attendance record: %w", err)
	}
	return record, nil
}

// CheckOut closes the most recently opened record for today.
func (s *attendanceService) CheckOut(ctx context.Context, ident auth.Identity) (*model.AttendanceRecord, error) {
	now := s.now()
	open, err := s.repo.FindLatestOpen(ctx, ident.UserID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveSession
		}
		return nil, fmt.Errorf("find open record: %w", err)
	}

	if err := s.repo.SetCheckOut(ctx, open.ID, now); err != nil {
		return nil, fmt.Errorf("set check-out: %w", err)
	}
	checkOut := now
	open.CheckOutTime = &checkOut
	return open, nil
}

// Today returns the latest record for today, or nil when the user has not
// checked in yet. An open record means the user is currently checked in.
func (s *attendanceService) Today(ctx context.Context, ident auth.Identity) (*model.AttendanceRecord, error) {
	record, err := s.repo.FindLatestForDay(ctx, ident.UserID, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find today's record: %w", err)
	}
	return record, nil
}

// Overview returns the recent records and the current month's aggregates.
func (s *attendanceService) Overview(ctx context.Context, ident auth.Identity) (*AttendanceOverview, error) {
	recent, err := s.repo.ListRecent(ctx, ident.UserID, recentAttendanceLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}

	now := s.now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDay := firstDay.AddDate(0, 1, -1)
	stats, err := s.repo.MonthlyStats(ctx, ident.UserID, firstDay, lastDay)
	if err != nil {
		return nil, fmt.Errorf("monthly stats: %w", err)
	}

	return &AttendanceOverview{
		Recent:       recent,
		MonthlyStats: *stats,
	}, nil
}

// AllForDay is the admin view of everyone's records for one day.
func (s *attendanceService) AllForDay(ctx context.Context, ident auth.Identity, date time.Time) ([]repository.DayAttendanceRow, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.now()
	}
	rows, err := s.repo.ListForDay(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list for day: %w", err)
	}
	return rows, nil
}
