package v1

import (
	"net/http"
	"time"

	"valletta-hr-backend/config"
	"valletta-hr-backend/internal/delivery/http/middleware"
	"valletta-hr-backend/internal/delivery/http/response"
	"valletta-hr-backend/internal/domain"
	"valletta-hr-backend/pkg/upload"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC  domain.CandidateUsecase
	InterviewUC  domain.InterviewUsecase
	VacancyUC    domain.VacancyUsecase
	EmployeeUC   domain.EmployeeUsecase
	DepartmentUC domain.DepartmentUsecase
	DashboardUC  domain.DashboardUsecase
	FileStore    *upload.Store
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(deps.Config.IsProduction()))

	// Health Check
	started := time.Now()
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(started).Seconds(),
		})
	})

	// Uploaded resumes are served verbatim
	r.Static("/uploads", deps.FileStore.Dir())

	api := r.Group("/api/v1")

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewCandidateHandler(api, deps.CandidateUC)
	NewInterviewHandler(api, deps.InterviewUC)
	NewVacancyHandler(api, deps.VacancyUC)
	NewEmployeeHandler(api, deps.EmployeeUC)
	NewDepartmentHandler(api, deps.DepartmentUC)
	NewDashboardHandler(api, deps.DashboardUC)
	NewFileHandler(api, deps.FileStore)

	return r
}
