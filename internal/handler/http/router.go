package http

import (
	"log/slog"
	"os"

	"github.com/mawared/mawared-backend/internal/config"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/handler/http/middleware"
	"github.com/mawared/mawared-backend/internal/pkg/jwt"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Store        StoreHandler
	Leave        LeaveHandler
	Attendance   AttendanceHandler
	Payroll      PayrollHandler
	Subscription SubscriptionHandler
	Settings     SettingsHandler
	Dashboard    DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "mawared"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMyProfile)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Get("/{id}/leave-balances", h.Leave.GetEmployeeBalances)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/my", h.Store.GetMyStores)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionStoreView))
					r.Get("/", h.Store.List)
					r.Get("/{id}", h.Store.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", h.Store.Create)
					r.Put("/{id}", h.Store.Update)
					r.Delete("/{id}", h.Store.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/{id}/attendance", h.Attendance.GetStoreDay)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPayrollViewAll))
					r.Post("/{id}/payroll/generate", h.Payroll.GenerateStoreMonth)
					r.Get("/{id}/payroll", h.Payroll.GetStoreMonth)
				})

				r.Route("/{id}/subscription", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPlanView))
					r.Get("/", h.Subscription.GetStoreSubscription)
					r.Post("/cancel", h.Subscription.Cancel)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireSuperAdmin)
						r.Post("/activate", h.Subscription.Activate)
					})
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", h.Leave.ListLeaveTypes)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionLeaveManageTypes))
						r.Post("/", h.Leave.CreateLeaveType)
						r.Put("/{id}", h.Leave.UpdateLeaveType)
						r.Delete("/{id}", h.Leave.DeleteLeaveType)
					})
				})

				r.Route("/balances", func(r chi.Router) {
					r.Get("/my", h.Leave.GetMyBalances)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionLeaveManageTypes))
						r.Post("/", h.Leave.SetBalance)
					})
				})

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", h.Leave.CreateRequest)
					r.Get("/my", h.Leave.ListMyRequests)
					r.Get("/{id}", h.Leave.GetRequest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionLeaveViewAll))
						r.Get("/", h.Leave.ListRequests)
					})

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
						r.Post("/{id}/approve", h.Leave.ApproveRequest)
						r.Post("/{id}/reject", h.Leave.RejectRequest)
					})
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/my", h.Attendance.GetMyMonth)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.GetMyEntries)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Get("/summary", h.Payroll.GetMonthSummary)
				})
			})

			r.Route("/plans", func(r chi.Router) {
				r.Get("/", h.Subscription.ListPlans)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionPlanManage))
					r.Post("/", h.Subscription.CreatePlan)
					r.Put("/{id}", h.Subscription.UpdatePlan)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPlanView))
				r.Post("/subscriptions", h.Subscription.Subscribe)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.List)
				r.Get("/{key}", h.Settings.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
					r.Put("/", h.Settings.Upsert)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Get("/dashboard", h.Dashboard.GetOverview)
			})
		})
	})

	return r
}
