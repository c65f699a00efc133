package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance statuses.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
)

// AttendanceRecord is one checked-in period for a user on a given day.
// CheckOutTime stays null while the period is open; a user may open several
// records on the same day.
type AttendanceRecord struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:char(36);not null;index:idx_attendance_user_date"`
	Date         time.Time  `json:"date" gorm:"type:date;not null;index:idx_attendance_user_date"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Status       string     `json:"status" gorm:"size:50;index"`
	CreatedAt    time.Time  `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Open reports whether the record is still checked in.
func (a *AttendanceRecord) Open() bool {
	return a.CheckOutTime == nil
}
