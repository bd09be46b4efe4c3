package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mawared/mawared-backend/internal/config"
	appHTTP "github.com/mawared/mawared-backend/internal/handler/http"
	"github.com/mawared/mawared-backend/internal/pkg/cron"
	"github.com/mawared/mawared-backend/internal/pkg/database"
	"github.com/mawared/mawared-backend/internal/pkg/jwt"
	"github.com/mawared/mawared-backend/internal/pkg/oauth"
	"github.com/mawared/mawared-backend/internal/pkg/workdays"
	"github.com/mawared/mawared-backend/internal/repository/postgresql"
	attendanceService "github.com/mawared/mawared-backend/internal/service/attendance"
	authService "github.com/mawared/mawared-backend/internal/service/auth"
	dashboardService "github.com/mawared/mawared-backend/internal/service/dashboard"
	employeeService "github.com/mawared/mawared-backend/internal/service/employee"
	leaveService "github.com/mawared/mawared-backend/internal/service/leave"
	payrollService "github.com/mawared/mawared-backend/internal/service/payroll"
	settingsService "github.com/mawared/mawared-backend/internal/service/settings"
	storeService "github.com/mawared/mawared-backend/internal/service/store"
	subscriptionService "github.com/mawared/mawared-backend/internal/service/subscription"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "mawared"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	planRepo := postgresql.NewPlanRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	calculator := workdays.NewCalculator(cfg.Leave.WeekendDays)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, employeeRepo, jwtService, googleService)
	subscriptionSvc := subscriptionService.NewSubscriptionService(planRepo, subscriptionRepo, employeeRepo, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, storeRepo, subscriptionSvc)
	storeSvc := storeService.NewStoreService(storeRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo, calculator)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingsRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	scheduler := cron.NewScheduler(logger)
	cron.RegisterSubscriptionJobs(scheduler, subscriptionSvc)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(jwtService, authSvc, googleService),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Store:        appHTTP.NewStoreHandler(storeSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Subscription: appHTTP.NewSubscriptionHandler(subscriptionSvc),
		Settings:     appHTTP.NewSettingsHandler(settingsSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
