package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hrflow/internal/auth"
	"hrflow/internal/cache"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

const (
	adminStatsCacheKey = "stats:admin"
	adminStatsCacheTTL = time.Minute
)

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalEmployees  int64                        `json:"total_employees"`
	PendingLeaves   int64                        `json:"pending_leaves"`
	PresentToday    int64                        `json:"present_today"`
	AttendanceRate  int                          `json:"attendance_rate"`
	DepartmentStats []repository.DepartmentCount `json:"department_stats"`
}

// StatsService computes the admin dashboard aggregates.
type StatsService interface {
	AdminStats(ctx context.Context, ident auth.Identity) (*AdminStats, error)
}

type statsService struct {
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRepository
	cache          *cache.Client
	now            func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRepository,
	cache *cache.Client,
) StatsService {
	return &statsService{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		cache:          cache,
		now:            time.Now,
	}
}

// AdminStats returns the dashboard aggregates, cached briefly since every
// admin page load asks for them.
func (s *statsService) AdminStats(ctx context.Context, ident auth.Identity) (*AdminStats, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, adminStatsCacheKey); data != nil {
		var cached AdminStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	totalEmployees, err := s.userRepo.CountByRole(ctx, model.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}

	pendingLeaves, err := s.leaveRepo.CountByStatus(ctx, model.LeavePending)
	if err != nil {
		return nil, fmt.Errorf("count pending leaves: %w", err)
	}

	presentToday, err := s.attendanceRepo.CountByStatusOn(ctx, s.now(), model.AttendancePresent)
	if err != nil {
		return nil, fmt.Errorf("count present today: %w", err)
	}

	departments, err := s.profileRepo.ListDepartmentCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("department counts: %w", err)
	}
	for i, d := range departments {
		if d.Name == "" {
			departments[i].Name = "Unassigned"
		}
	}

	denominator := totalEmployees
	if denominator == 0 {
		denominator = 1
	}
	stats := &AdminStats{
		TotalEmployees:  totalEmployees,
		PendingLeaves:   pendingLeaves,
		PresentToday:    presentToday,
		AttendanceRate:  int(presentToday * 100 / denominator),
		DepartmentStats: departments,
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, adminStatsCacheKey, payload, adminStatsCacheTTL)
	}
	return stats, nil
}
