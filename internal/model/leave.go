package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Leave request statuses. Pending transitions once to Approved or Rejected.
const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

// LeaveRequest is an employee's request for a span of leave days.
// Days is the inclusive count between StartDate and EndDate.
type LeaveRequest struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	LeaveType string    `json:"leave_type" gorm:"size:100;not null"`
	StartDate time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate   time.Time `json:"end_date" gorm:"type:date;not null"`
	Days      int       `json:"days" gorm:"not null"`
	Reason    string    `json:"reason,omitempty" gorm:"type:text"`
	Status    string    `json:"status" gorm:"size:50;not null;default:'Pending';index"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
