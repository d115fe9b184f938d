package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/openleave/leave-backend-go/internal/config"
	"github.com/openleave/leave-backend-go/internal/handler/http/middleware"
	"github.com/openleave/leave-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	// Uploaded attachments are served straight off disk.
	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/employee", authHandler.EmployeeLogin)
			r.Route("/admin", func(r chi.Router) {
				r.Post("/login", authHandler.AdminLogin)
				r.Get("/login/oauth/google", authHandler.GoogleLogin)
				r.Get("/oauth/callback/google", authHandler.GoogleCallback)
			})
		})

		// Public lookups
		r.Get("/half-day-options", masterHandler.ListHalfDayOptions)
		r.Get("/leave-requests/calendar/company", leaveHandler.CompanyCalendar)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/department/{department}", employeeHandler.ListByDepartment)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", masterHandler.ListDepartments)
				r.Get("/active", masterHandler.ListActiveDepartments)
				r.Post("/", masterHandler.CreateDepartment)
				r.Get("/{id}", masterHandler.GetDepartment)
				r.Put("/{id}", masterHandler.UpdateDepartment)
				r.Delete("/{id}", masterHandler.DeleteDepartment)
			})

			r.Route("/positions", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", masterHandler.ListPositions)
				r.Get("/active", masterHandler.ListActivePositions)
				r.Post("/", masterHandler.CreatePosition)
				r.Get("/{id}", masterHandler.GetPosition)
				r.Put("/{id}", masterHandler.UpdatePosition)
				r.Delete("/{id}", masterHandler.DeletePosition)
			})

			r.Route("/half-day-options", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", masterHandler.CreateHalfDayOption)
				r.Put("/{id}", masterHandler.UpdateHalfDayOption)
				r.Delete("/{id}", masterHandler.DeleteHalfDayOption)
			})

			r.Route("/leave-requests", func(r chi.Router) {

				// Employee self-service
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/", leaveHandler.CreateRequest)
					r.Get("/my-requests", leaveHandler.GetMyRequests)
				})

				// Admin management and reporting
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.ListRequests)
					r.Post("/admin", leaveHandler.AdminCreateRequest)
					r.Get("/statistics/summary", leaveHandler.StatisticsSummary)
					r.Get("/statistics/export", leaveHandler.StatisticsExport)
					r.Get("/{id}", leaveHandler.GetRequest)
					r.Put("/{id}/details", leaveHandler.UpdateDetails)
					r.Put("/{id}", leaveHandler.UpdateStatus)
					r.Delete("/{id}", leaveHandler.DeleteRequest)
				})
			})
		})
	})

	return r
}
