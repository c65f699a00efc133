package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrflow/internal/model"
)

// UserRepository defines user persistence operations. Multi-table writes
// (user plus dependent rows) run inside a single transaction.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	CreateWithProfile(ctx context.Context, user *model.User, profile *model.Profile) error
	SaveEmployeeRecord(ctx context.Context, user *model.User, profile *model.Profile, personal *model.PersonalInfo, banking *model.BankingInfo, salary *model.SalaryInfo) error
	DeleteWithDependents(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// CreateWithProfile inserts the user and its profile row atomically.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

// SaveEmployeeRecord updates the user and profile and upserts any non-nil
// sub-records, all in one transaction so a failed step leaves nothing behind.
func (r *userRepository) SaveEmployeeRecord(ctx context.Context, user *model.User, profile *model.Profile, personal *model.PersonalInfo, banking *model.BankingInfo, salary *model.SalaryInfo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if profile != nil {
			profile.UserID = user.ID
			if err := upsertByUserID(tx, profile); err != nil {
				return err
			}
		}
		if personal != nil {
			personal.UserID = user.ID
			if err := upsertByUserID(tx, personal); err != nil {
				return err
			}
		}
		if banking != nil {
			banking.UserID = user.ID
			if err := upsertByUserID(tx, banking); err != nil {
				return err
			}
		}
		if salary != nil {
			salary.UserID = user.ID
			if err := upsertByUserID(tx, salary); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithDependents removes the user and every dependent row. Children go
// first: the schema does not cascade.
func (r *userRepository) DeleteWithDependents(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.Skill{},
			&model.SalaryInfo{},
			&model.BankingInfo{},
			&model.PersonalInfo{},
			&model.AttendanceRecord{},
			&model.LeaveRequest{},
			&model.Profile{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&model.User{}).Error
	})
}

// upsertByUserID inserts the row or, when one already exists for the same
// user_id, overwrites its columns.
func upsertByUserID(tx *gorm.DB, value interface{}) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(value).Error
}
