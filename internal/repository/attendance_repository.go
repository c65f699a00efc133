package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrflow/internal/model"
)

// MonthlyAttendanceStats aggregates a user's records over one month.
type MonthlyAttendanceStats struct {
	Total      int64   `json:"total"`
	Present    int64   `json:"present"`
	Absent     int64   `json:"absent"`
	Late       int64   `json:"late"`
	TotalHours float64 `json:"total_hours"`
}

// DayAttendanceRow is one record of the admin per-day view, joined with the
// owning user.
type DayAttendanceRow struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	Date         time.Time  `json:"date"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       string     `json:"status"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
}

// AttendanceRepository defines attendance persistence operations.
type AttendanceRepository interface {
	Create(ctx context.Context, record *model.AttendanceRecord) error
	FindLatestOpen(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceRecord, error)
	FindLatestForDay(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceRecord, error)
	SetCheckOut(ctx context.Context, id uuid.UUID, at time.Time) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.AttendanceRecord, error)
	ListForDay(ctx context.Context, date time.Time) ([]DayAttendanceRow, error)
	MonthlyStats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*MonthlyAttendanceStats, error)
	CountByStatusOn(ctx context.Context, date time.Time, status string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository builds a GORM-backed repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindLatestOpen returns the most recently created record for the day whose
// check_out_time is still null.
func (r *attendanceRepository) FindLatestOpen(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND check_out_time IS NULL", userID, dateOnly(date)).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) FindLatestForDay(ctx context.Context, userID uuid.UUID, date time.Time) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, dateOnly(date)).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.AttendanceRecord{}).
		Where("id = ?", id).
		Update("check_out_time", at).Error
}

func (r *attendanceRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListForDay returns every record of the day joined with user name and email,
// latest check-in first.
func (r *attendanceRepository) ListForDay(ctx context.Context, date time.Time) ([]DayAttendanceRow, error) {
	var rows []DayAttendanceRow
	err := r.db.WithContext(ctx).
		Table("attendance_records").
		Select("attendance_records.id, attendance_records.user_id, attendance_records.date, attendance_records.check_in_time, attendance_records.check_out_time, attendance_records.status, users.full_name, users.email").
		Joins("INNER JOIN users ON users.id = attendance_records.user_id").
		Where("attendance_records.date = ?", dateOnly(date)).
		Order("attendance_records.check_in_time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyStats counts records by status and sums worked hours over closed
// records inside [from, to].
func (r *attendanceRepository) MonthlyStats(ctx context.Context, userID uuid.UUID, from, to time.Time) (*MonthlyAttendanceStats, error) {
	var stats MonthlyAttendanceStats
	err := r.db.WithContext(ctx).
		Table("attendance_records").
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN status = 'Present' THEN 1 END) AS present,
			COUNT(CASE WHEN status = 'Absent' THEN 1 END) AS absent,
			COUNT(CASE WHEN status = 'Late' THEN 1 END) AS late,
			COALESCE(SUM(TIMESTAMPDIFF(SECOND, check_in_time, check_out_time)) / 3600, 0) AS total_hours`).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *attendanceRepository) CountByStatusOn(ctx context.Context, date time.Time, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AttendanceRecord{}).
		Where("date = ? AND status = ?", dateOnly(date), status).
		Count(&count).Error
	return count, err
}

// dateOnly truncates to the calendar day in server-local time. The whole
// application assumes a single organizational timezone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
