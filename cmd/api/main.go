package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valletta-hr-backend/config"
	_ "valletta-hr-backend/docs" // Important for Swagger
	"valletta-hr-backend/internal/delivery/http/v1"
	"valletta-hr-backend/internal/migrate"
	"valletta-hr-backend/internal/repository/postgres"
	"valletta-hr-backend/internal/usecase"
	"valletta-hr-backend/migrations"
	"valletta-hr-backend/pkg/database"
	"valletta-hr-backend/pkg/logger"
	"valletta-hr-backend/pkg/upload"

	"github.com/go-playground/validator/v10"
)

// @title           Valletta HR Backend API
// @version         1.0
// @description     Internal HR/recruiting CRM: candidate pipeline, interviews, vacancies, employees, departments.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting HR backend", "port", cfg.Port, "env", cfg.Environment)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(database.ConnConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Apply Migrations
	if err := migrate.Run(context.Background(), dbPool, migrations.FS); err != nil {
		logger.Log.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// 5. Setup File Store
	fileStore, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload dir", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	departmentRepo := postgres.NewDepartmentRepository(dbPool)
	dashboardRepo := postgres.NewDashboardRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, candidateRepo)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, validate)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, validate)
	departmentUC := usecase.NewDepartmentUsecase(departmentRepo, validate)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC:  candidateUC,
		InterviewUC:  interviewUC,
		VacancyUC:    vacancyUC,
		EmployeeUC:   employeeUC,
		DepartmentUC: departmentUC,
		DashboardUC:  dashboardUC,
		FileStore:    fileStore,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
