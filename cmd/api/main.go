package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/shiftwise/workforce-backend-go/internal/config"
	appHTTP "github.com/shiftwise/workforce-backend-go/internal/handler/http"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/cron"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/database"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/docstore"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/workforce-backend-go/internal/pkg/oauth"
	"github.com/shiftwise/workforce-backend-go/internal/repository/document"
	attendanceService "github.com/shiftwise/workforce-backend-go/internal/service/attendance"
	authService "github.com/shiftwise/workforce-backend-go/internal/service/auth"
	breakService "github.com/shiftwise/workforce-backend-go/internal/service/breaks"
	clientService "github.com/shiftwise/workforce-backend-go/internal/service/client"
	coachingService "github.com/shiftwise/workforce-backend-go/internal/service/coaching"
	coverageService "github.com/shiftwise/workforce-backend-go/internal/service/coverage"
	detectorService "github.com/shiftwise/workforce-backend-go/internal/service/detector"
	employeeService "github.com/shiftwise/workforce-backend-go/internal/service/employee"
	infractionService "github.com/shiftwise/workforce-backend-go/internal/service/infraction"
	scheduleService "github.com/shiftwise/workforce-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	store := docstore.NewPostgresStore(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare document store schema: ", err)
	}

	employeeRepo := document.NewEmployeeRepository(store)
	attendanceRepo := document.NewAttendanceRepository(store)
	breakRepo := document.NewBreakRepository(store)
	scheduleRepo := document.NewScheduleRepository(store)
	clientRepo := document.NewClientRepository(store)
	coachingRepo := document.NewCoachingRepository(store)
	infractionRepo := document.NewInfractionRepository(store)
	settingsRepo := document.NewSettingsRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	breakSvc := breakService.NewBreakService(breakRepo, employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	clientSvc := clientService.NewClientService(clientRepo, employeeRepo)
	coverageSvc := coverageService.NewCoverageService(clientRepo, employeeRepo, scheduleRepo, attendanceRepo, breakRepo)
	coachingSvc := coachingService.NewCoachingService(coachingRepo)
	infractionSvc := infractionService.NewInfractionService(infractionRepo, employeeRepo)
	detectorSvc := detectorService.NewDetectorService(attendanceRepo, breakRepo, scheduleRepo, employeeRepo, coachingRepo, cfg.Coaching)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Break:      appHTTP.NewBreakHandler(breakSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Client:     appHTTP.NewClientHandler(clientSvc, coverageSvc),
		Coaching:   appHTTP.NewCoachingHandler(coachingSvc),
		Infraction: appHTTP.NewInfractionHandler(infractionSvc),
		Detection:  appHTTP.NewDetectionHandler(detectorSvc, settingsRepo),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.FrontendURL)

	scheduler := cron.NewScheduler()
	detectionJobs := cron.NewDetectionJobs(detectorSvc, settingsRepo, cfg.Coaching.ScanInterval)
	detectionJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
