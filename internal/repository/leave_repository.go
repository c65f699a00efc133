package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrflow/internal/model"
)

// LeaveRow is one request of the admin listing, joined with the requester.
type LeaveRow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	LeaveType string    `json:"leave_type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      int       `json:"days"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
}

// LeaveRepository defines leave request persistence operations.
type LeaveRepository interface {
	Create(ctx context.Context, request *model.LeaveRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LeaveRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRow, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, comment string) error
	SumDays(ctx context.Context, userID uuid.UUID, statuses []string) (int, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type leaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository builds a GORM-backed repository.
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, request *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *leaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LeaveRequest, error) {
	var request model.LeaveRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) ListAll(ctx context.Context) ([]LeaveRow, error) {
	var rows []LeaveRow
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("leave_requests.*, users.full_name, users.email").
		Joins("INNER JOIN users ON users.id = leave_requests.user_id").
		Order("leave_requests.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status, comment string) error {
	return r.db.WithContext(ctx).Model(&model.LeaveRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "comment": comment}).Error
}

// SumDays totals the day spans of the user's requests in the given statuses.
func (r *leaveRepository) SumDays(ctx context.Context, userID uuid.UUID, statuses []string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("COALESCE(SUM(days), 0)").
		Where("user_id = ? AND status IN ?", userID, statuses).
		Scan(&total).Error
	return total, err
}

func (r *leaveRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LeaveRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
