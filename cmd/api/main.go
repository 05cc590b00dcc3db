package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/omyra-tech/intern-portal-backend-go/internal/config"
	appHTTP "github.com/omyra-tech/intern-portal-backend-go/internal/handler/http"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/database"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/email"
	"github.com/omyra-tech/intern-portal-backend-go/internal/pkg/jwt"
	"github.com/omyra-tech/intern-portal-backend-go/internal/repository/postgresql"
	adminService "github.com/omyra-tech/intern-portal-backend-go/internal/service/admin"
	attendanceService "github.com/omyra-tech/intern-portal-backend-go/internal/service/attendance"
	holidayService "github.com/omyra-tech/intern-portal-backend-go/internal/service/holiday"
	internService "github.com/omyra-tech/intern-portal-backend-go/internal/service/intern"
	reportService "github.com/omyra-tech/intern-portal-backend-go/internal/service/report"
	taskService "github.com/omyra-tech/intern-portal-backend-go/internal/service/task"
	workingHoursService "github.com/omyra-tech/intern-portal-backend-go/internal/service/workinghours"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	internRepo := postgresql.NewInternRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	taskStatusRepo := postgresql.NewTaskStatusRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	monthlyHoursRepo := postgresql.NewMonthlyHoursRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	internSvc := internService.NewInternService(db, internRepo, attendanceRepo, jwtService, emailService)
	adminSvc := adminService.NewAdminService(db, adminRepo, internRepo, jwtService, emailService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	taskSvc := taskService.NewTaskService(db, taskRepo, taskStatusRepo, internRepo, emailService)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)
	workingHoursSvc := workingHoursService.NewWorkingHoursService(monthlyHoursRepo, holidayRepo)
	reportSvc := reportService.NewReportService(internRepo, attendanceRepo)

	internHandler := appHTTP.NewInternHandler(internSvc)
	adminHandler := appHTTP.NewAdminHandler(adminSvc, reportSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	workingHoursHandler := appHTTP.NewWorkingHoursHandler(workingHoursSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		internHandler,
		adminHandler,
		attendanceHandler,
		taskHandler,
		holidayHandler,
		workingHoursHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
