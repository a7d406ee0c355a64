package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/teamsched/scheduler-backend/internal/auth"
	"github.com/teamsched/scheduler-backend/internal/booking"
	bookingHttp "github.com/teamsched/scheduler-backend/internal/booking/http"
	"github.com/teamsched/scheduler-backend/internal/department"
	departmentHttp "github.com/teamsched/scheduler-backend/internal/department/http"
	"github.com/teamsched/scheduler-backend/internal/project"
	projectHttp "github.com/teamsched/scheduler-backend/internal/project/http"
	"github.com/teamsched/scheduler-backend/internal/report"
	reportHttp "github.com/teamsched/scheduler-backend/internal/report/http"
	"github.com/teamsched/scheduler-backend/internal/resource"
	resourceHttp "github.com/teamsched/scheduler-backend/internal/resource/http"
	"github.com/teamsched/scheduler-backend/internal/schedule"
	scheduleHttp "github.com/teamsched/scheduler-backend/internal/schedule/http"
)

// Config holds the dependencies required to build the router.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	MaxRangeDays int

	Logger  *log.Logger
	Limiter *limiter.Limiter // nil disables rate limiting

	DepartmentService department.Service
	ResourceService   resource.Service
	ProjectService    project.Service
	BookingService    booking.Service
	ScheduleService   schedule.Service
	ReportService     report.Service

	JWTManager *auth.JWTManager // nil disables authentication
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}

	r := gin.New()

	// Global Middleware:
	// - RequestLogger: Logs one structured line per request with its request id.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	config := cors.DefaultConfig()
	if cfg.IsProduction {
		config.AllowOrigins = cfg.ProdOrigins
	} else {
		config.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
		}
	}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	config.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	if len(config.AllowOrigins) > 0 {
		r.Use(cors.New(config))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// authMiddleware: Validates the bearer JWT when authentication is enabled.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	departmentHandler := departmentHttp.NewHandler(cfg.DepartmentService)
	resourceHandler := resourceHttp.NewHandler(cfg.ResourceService)
	projectHandler := projectHttp.NewHandler(cfg.ProjectService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.ResourceService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService, cfg.MaxRangeDays)
	reportHandler := reportHttp.NewHandler(cfg.ReportService, cfg.MaxRangeDays)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	if cfg.Limiter != nil {
		v1.Use(RateLimit(cfg.Limiter))
	}
	{
		departmentHttp.RegisterRoutes(v1, departmentHandler, authMiddleware)
		resourceHttp.RegisterRoutes(v1, resourceHandler, authMiddleware)
		projectHttp.RegisterRoutes(v1, projectHandler, authMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler, authMiddleware)
		reportHttp.RegisterRoutes(v1, reportHandler, authMiddleware)
	}

	return r
}
