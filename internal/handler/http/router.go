package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftwise/workforce-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Break      BreakHandler
	Schedule   ScheduleHandler
	Client     ClientHandler
	Coaching   CoachingHandler
	Infraction InfractionHandler
	Detection  DetectionHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, frontendURL string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{employeeID}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Register)
					r.Put("/{employeeID}/blocked", h.Employee.SetBlocked)
					r.Delete("/{employeeID}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.MarkPresent)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{date}", h.Attendance.ListByDate)
					r.Put("/{date}/{employeeID}/approve", h.Attendance.Approve)
				})
			})

			r.Route("/breaks", func(r chi.Router) {
				r.Post("/start", h.Break.Start)
				r.Post("/end", h.Break.End)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/{date}", h.Break.ListByDate)
					r.Put("/{date}/{employeeID}/{index}/approve", h.Break.Approve)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/{employeeID}", h.Schedule.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{employeeID}", h.Schedule.Save)
					r.Delete("/{employeeID}", h.Schedule.Delete)
				})
			})

			r.Route("/clients", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				r.Get("/{clientID}", h.Client.Get)
				r.Put("/{clientID}", h.Client.Update)
				r.Delete("/{clientID}", h.Client.Delete)
				r.Get("/{clientID}/coverage", h.Client.Coverage)
				r.Route("/{clientID}/assignments", func(r chi.Router) {
					r.Get("/", h.Client.Assigned)
					r.Post("/", h.Client.Assign)
					r.Delete("/{employeeID}", h.Client.Unassign)
				})
			})

			r.Route("/coaching", func(r chi.Router) {
				r.Get("/logs", h.Coaching.ListLogs)
				r.Put("/logs/{logID}/acknowledge", h.Coaching.Acknowledge)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", h.Coaching.ListPending)
					r.Post("/pending/{pendingID}/approve", h.Coaching.Approve)
					r.Delete("/pending/{pendingID}", h.Coaching.Reject)
					r.Delete("/logs/{logID}", h.Coaching.DeleteForever)
					r.Delete("/ignored", h.Coaching.ClearIgnored)
				})
			})

			r.Route("/infractions", func(r chi.Router) {
				r.Get("/", h.Infraction.List)
				r.Get("/rules", h.Infraction.Rules)
				r.Put("/{infractionID}/acknowledge", h.Infraction.Acknowledge)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Infraction.Post)
				})
			})

			r.Route("/detection", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/violations", h.Detection.Detect)
				r.Post("/scan", h.Detection.Scan)
				r.Get("/auto-coaching", h.Detection.GetAutoCoaching)
				r.Put("/auto-coaching", h.Detection.SetAutoCoaching)
			})
		})
	})
	return r
}
