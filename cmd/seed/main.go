package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hrflow/internal/config"
	"hrflow/internal/db"
	"hrflow/internal/model"
	"hrflow/internal/repository"
)

type seedEmployee struct {
	Email      string
	Password   string
	FullName   string
	Role       string
	Department string
	CTC        string
}

var seedEmployees = []seedEmployee{
	{Email: "admin@dayflow.test", Password: "admin123", FullName: "Asha Verma", Role: model.RoleAdmin, Department: "People Ops"},
	{Email: "ravi@dayflow.test", Password: "password1", FullName: "Ravi Kumar", Role: model.RoleEmployee, Department: "Engineering", CTC: "1200000"},
	{Email: "meera@dayflow.test", Password: "password1", FullName: "Meera Nair", Role: model.RoleEmployee, Department: "Engineering", CTC: "1350000"},
	{Email: "john@dayflow.test", Password: "password1", FullName: "John Dsouza", Role: model.RoleEmployee, Department: "Finance", CTC: "980000"},
}

func main() {
	log.Info().Msg("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.PersonalInfo{},
		&model.BankingInfo{},
		&model.SalaryInfo{},
		&model.Skill{},
		&model.AttendanceRecord{},
		&model.LeaveRequest{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	ctx := context.Background()

	created := 0
	for _, emp := range seedEmployees {
		existing, err := userRepo.FindByEmail(ctx, emp.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("email", emp.Email).Msg("check user")
		}
		if existing != nil {
			log.Info().Str("email", emp.Email).Msg("already seeded, skipping")
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(emp.Password), 10)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}

		user := &model.User{
			Email:        emp.Email,
			PasswordHash: string(hashed),
			FullName:     emp.FullName,
			Role:         emp.Role,
		}
		profile := &model.Profile{
			Email:      emp.Email,
			FullName:   emp.FullName,
			Department: emp.Department,
		}
		if err := userRepo.CreateWithProfile(ctx, user, profile); err != nil {
			log.Fatal().Err(err).Str("email", emp.Email).Msg("create user")
		}

		if emp.CTC != "" {
			ctc, err := decimal.NewFromString(emp.CTC)
			if err != nil {
				log.Fatal().Err(err).Str("email", emp.Email).Msg("parse ctc")
			}
			now := time.Now()
			salary := &model.SalaryInfo{
				UserID:        user.ID,
				CTC:           ctc,
				BasicSalary:   ctc.Div(decimal.NewFromInt(2)),
				EffectiveFrom: &now,
			}
			if err := profileRepo.UpsertSalary(ctx, salary); err != nil {
				log.Fatal().Err(err).Str("email", emp.Email).Msg("seed salary")
			}
		}
		created++
	}

	log.Info().Int("created", created).Int("total", len(seedEmployees)).Msg("seed completed")
}
