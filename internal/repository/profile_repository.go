package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrflow/internal/model"
)

// DepartmentCount is one row of the department distribution.
type DepartmentCount struct {
	Name      string `json:"name"`
	Employees int64  `json:"employees"`
}

// ProfileRepository covers the one-to-one extensions of a user (profile,
// personal, banking, salary) plus skills. Every upsert is keyed on user_id.
type ProfileRepository interface {
	FindProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpsertProfile(ctx context.Context, profile *model.Profile) error
	FindPersonal(ctx context.Context, userID uuid.UUID) (*model.PersonalInfo, error)
	UpsertPersonal(ctx context.Context, info *model.PersonalInfo) error
	FindBanking(ctx context.Context, userID uuid.UUID) (*model.BankingInfo, error)
	UpsertBanking(ctx context.Context, info *model.BankingInfo) error
	FindSalary(ctx context.Context, userID uuid.UUID) (*model.SalaryInfo, error)
	UpsertSalary(ctx context.Context, info *model.SalaryInfo) error
	ListSkills(ctx context.Context, userID uuid.UUID) ([]model.Skill, error)
	AddSkill(ctx context.Context, skill *model.Skill) error
	DeleteSkill(ctx context.Context, id, userID uuid.UUID) (int64, error)
	ListDepartmentCounts(ctx context.Context) ([]DepartmentCount, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpsertProfile(ctx context.Context, profile *model.Profile) error {
	return r.upsert(ctx, profile)
}

func (r *profileRepository) FindPersonal(ctx context.Context, userID uuid.UUID) (*model.PersonalInfo, error) {
	var info model.PersonalInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *profileRepository) UpsertPersonal(ctx context.Context, info *model.PersonalInfo) error {
	return r.upsert(ctx, info)
}

func (r *profileRepository) FindBanking(ctx context.Context, userID uuid.UUID) (*model.BankingInfo, error) {
	var info model.BankingInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *profileRepository) UpsertBanking(ctx context.Context, info *model.BankingInfo) error {
	return r.upsert(ctx, info)
}

func (r *profileRepository) FindSalary(ctx context.Context, userID uuid.UUID) (*model.SalaryInfo, error) {
	var info model.SalaryInfo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *profileRepository) UpsertSalary(ctx context.Context, info *model.SalaryInfo) error {
	return r.upsert(ctx, info)
}

func (r *profileRepository) ListSkills(ctx context.Context, userID uuid.UUID) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *profileRepository) AddSkill(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

// DeleteSkill removes a skill scoped to its owner and reports how many rows
// went away.
func (r *profileRepository) DeleteSkill(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Skill{})
	return res.RowsAffected, res.Error
}

// ListDepartmentCounts groups employees by profile department.
func (r *profileRepository) ListDepartmentCounts(ctx context.Context) ([]DepartmentCount, error) {
	var rows []DepartmentCount
	err := r.db.WithContext(ctx).
		Table("profiles").
		Select("profiles.department AS name, COUNT(users.id) AS employees").
		Joins("INNER JOIN users ON users.id = profiles.user_id").
		Where("users.role = ?", model.RoleEmployee).
		Group("profiles.department").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *profileRepository) upsert(ctx context.Context, value interface{}) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(value).Error
}
