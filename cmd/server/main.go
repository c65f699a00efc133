package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hrflow/internal/auth"
	"hrflow/internal/cache"
	"hrflow/internal/config"
	"hrflow/internal/db"
	"hrflow/internal/handler"
	"hrflow/internal/model"
	"hrflow/internal/repository"
	"hrflow/internal/router"
	"hrflow/internal/service"
)

// @title HR Portal API
// @version 1.0
// @description Internal HR portal with employee directory, attendance, leave and payroll, using cookie sessions.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	if !cfg.Production() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Run migrations for all models
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

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	attendanceRepo := repository.NewAttendanceRepository(gormDB)
	leaveRepo := repository.NewLeaveRepository(gormDB)

	// Initialize auth components
	sessions := auth.NewSessionService(cfg.SessionSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, sessions)
	employeeService := service.NewEmployeeService(userRepo, profileRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	leaveService := service.NewLeaveService(leaveRepo)
	profileService := service.NewProfileService(profileRepo)
	statsService := service.NewStatsService(userRepo, profileRepo, attendanceRepo, leaveRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.Production())
	dashboardHandler := handler.NewDashboardHandler(statsService, attendanceService, leaveService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	profileHandler := handler.NewProfileHandler(profileService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessions,
		authHandler,
		dashboardHandler,
		attendanceHandler,
		leaveHandler,
		profileHandler,
		employeeHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
