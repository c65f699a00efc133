package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrflow/internal/auth"
	apperrors "hrflow/internal/errors"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

// AnnualLeaveAllotment is the fixed number of leave days per year.
const AnnualLeaveAllotment = 24

// LeaveBalance summarizes how much of the allotment remains. Rejected
// requests do not count against it; pending ones do until decided.
type LeaveBalance struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Available int `json:"available"`
}

// LeaveOverview is the employee leave page payload.
type LeaveOverview struct {
	Requests []model.LeaveRequest `json:"requests"`
	Balance  LeaveBalance         `json:"balance"`
}

// LeaveService handles the Pending -> Approved/Rejected workflow.
type LeaveService interface {
	Submit(ctx context.Context, ident auth.Identity, leaveType string, start, end time.Time, reason string) (*model.LeaveRequest, error)
	Overview(ctx context.Context, ident auth.Identity) (*LeaveOverview, error)
	Decide(ctx context.Context, ident auth.Identity, requestID uuid.UUID, status, comment string) (*model.LeaveRequest, error)
	ListAll(ctx context.Context, ident auth.Identity) ([]repository.LeaveRow, error)
}

type leaveService struct {
	repo repository.LeaveRepository
}

// NewLeaveService creates a new leave service.
func NewLeaveService(repo repository.LeaveRepository) LeaveService {
	return &leaveService{repo: repo}
}

// Submit files a new pending request. The day count is the inclusive span
// between start and end; an end before the start is rejected.
func (s *leaveService) Submit(ctx context.Context, ident auth.Identity, leaveType string, start, end time.Time, reason string) (*model.LeaveRequest, error) {
	days := InclusiveDays(start, end)
	if days <= 0 {
		return nil, apperrors.ErrInvalidLeaveSpan
	}

	request := &model.LeaveRequest{
		UserID:    ident.UserID,
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Days:      days,
		Reason:    reason,
		Status:    model.LeavePending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create leave request: %w", err)
	}
	return request, nil
}

// Overview returns the user's requests and remaining balance.
func (s *leaveService) Overview(ctx context.Context, ident auth.Identity) (*LeaveOverview, error) {
	requests, err := s.repo.ListByUser(ctx, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	used, err := s.repo.SumDays(ctx, ident.UserID, []string{model.LeavePending, model.LeaveApproved})
	if err != nil {
		return nil, fmt.Errorf("sum leave days: %w", err)
	}

	return &LeaveOverview{
		Requests: requests,
		Balance: LeaveBalance{
			Total:     AnnualLeaveAllotment,
			Used:      used,
			Available: AnnualLeaveAllotment - used,
		},
	}, nil
}

// Decide moves a pending request to Approved or Rejected. Both outcomes are
// terminal: deciding twice is an error, not a silent overwrite.
func (s *leaveService) Decide(ctx context.Context, ident auth.Identity, requestID uuid.UUID, status, comment string) (*model.LeaveRequest, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}
	if status != model.LeaveApproved && status != model.LeaveRejected {
		return nil, fmt.Errorf("invalid leave decision: %s", status)
	}

	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("find leave request: %w", err)
	}
	if request.Status != model.LeavePending {
		return nil, apperrors.ErrLeaveAlreadyDecided
	}

	if err := s.repo.UpdateStatus(ctx, requestID, status, comment); err != nil {
		return nil, fmt.Errorf("update leave status: %w", err)
	}
	request.Status = status
	request.Comment = comment
	return request, nil
}

// ListAll is the admin listing of everyone's requests.
func (s *leaveService) ListAll(ctx context.Context, ident auth.Identity) ([]repository.LeaveRow, error) {
	if err := auth.RequireAdmin(ident); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all leave requests: %w", err)
	}
	return rows, nil
}

// InclusiveDays counts the calendar days from start through end, both ends
// included.
func InclusiveDays(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}
