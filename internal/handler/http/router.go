package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"

	"github.com/omyra-tech/intern-portal-backend-go/internal/config"
	"github.com/omyra-tech/intern-portal-backend-go/internal/handler/http/middleware"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	internHandler InternHandler,
	adminHandler AdminHandler,
	attendanceHandler AttendanceHandler,
	taskHandler TaskHandler,
	holidayHandler HolidayHandler,
	workingHoursHandler WorkingHoursHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "intern-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(middleware.ForceHTTPS(cfg.App.Env == "production"))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Employee Management API\n"))
	})

	loginLimiter := httprate.LimitByIP(10, 15*time.Minute)

	r.Route("/api", func(r chi.Router) {

		r.Route("/interns", func(r chi.Router) {
			r.Post("/register", internHandler.Register)
			r.With(loginLimiter).Post("/login", internHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/interns", internHandler.List)
				r.Get("/{id}", internHandler.Get)
				r.Put("/{id}", internHandler.Update)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(loginLimiter).Post("/login", adminHandler.Login)
			r.Post("/create-admin", adminHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				// Task status rows are read and written by the intern
				// dashboard with an intern token, so no role gate here.
				r.Get("/intern/task-status/{internId}", taskHandler.ListStatusByIntern)
				r.Post("/intern/task-status", taskHandler.CreateStatus)
				r.Put("/intern/task-status/{id}", taskHandler.UpdateStatus)

				r.Get("/tasks", taskHandler.List)
				r.Get("/tasks/designation/{designation}", taskHandler.ListByDesignation)
				r.Get("/tasks/{date}", taskHandler.ListByDate)
				r.Get("/tasks/{designation}/{date}", taskHandler.ListByDesignationAndDate)

				r.Get("/holidays", holidayHandler.List)
				r.Get("/working-hours", workingHoursHandler.Get)

				// The intern timesheet reads its own rows through this
				// path with an intern token.
				r.Get("/attendance/{internId}", attendanceHandler.ListByIntern)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)

					r.Get("/", adminHandler.List)
					r.Get("/report", adminHandler.Report)
					r.Patch("/password/{id}", adminHandler.ChangePassword)
					r.Post("/send-email", adminHandler.SendEmail)

					r.Post("/intern/register", internHandler.AdminRegister)
					r.Get("/interns", internHandler.List)
					r.Get("/interns/{id}", internHandler.Get)
					r.Put("/interns/{id}", internHandler.AdminUpdate)
					r.Delete("/interns/{id}", internHandler.Delete)
					r.Put("/interns/status/{id}", internHandler.UpdateStatus)

					r.Get("/attendance", attendanceHandler.List)

					r.Post("/holidays", holidayHandler.Create)
					r.Patch("/holidays/{id}", holidayHandler.Update)
					r.Delete("/holidays/{id}", holidayHandler.Delete)

					r.Put("/working-hours", workingHoursHandler.SetOverride)

					r.Post("/tasks", taskHandler.Create)
					r.Put("/tasks/{id}", taskHandler.Update)
					r.Delete("/tasks/{id}", taskHandler.Delete)
				})
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/mark", attendanceHandler.Mark)
			r.Get("/{internId}", attendanceHandler.ListByIntern)
		})
	})

	return r
}
