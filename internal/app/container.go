package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/teamsched/scheduler-backend/internal/api"
	"github.com/teamsched/scheduler-backend/internal/auth"
	"github.com/teamsched/scheduler-backend/internal/booking"
	"github.com/teamsched/scheduler-backend/internal/db"
	"github.com/teamsched/scheduler-backend/internal/department"
	"github.com/teamsched/scheduler-backend/internal/pkg/keylock"
	"github.com/teamsched/scheduler-backend/internal/pkg/request"
	"github.com/teamsched/scheduler-backend/internal/project"
	"github.com/teamsched/scheduler-backend/internal/report"
	"github.com/teamsched/scheduler-backend/internal/resource"
	"github.com/teamsched/scheduler-backend/internal/schedule"
	"github.com/teamsched/scheduler-backend/internal/storage/memory"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	MaxRangeDays int
	RateLimit    string // ulule/limiter format, e.g. "100-M"; empty disables

	// DBPool selects the Postgres backend. When nil an in-memory store is used.
	DBPool    *pgxpool.Pool
	JWTSecret string
	Logger    *log.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

type repositories struct {
	departments department.Repository
	resources   resource.Repository
	projects    project.Repository
	bookings    booking.Repository
	locker      booking.Locker
}

func newRepositories(pool *pgxpool.Pool) repositories {
	if pool == nil {
		store := memory.New()
		return repositories{
			departments: store.Departments(),
			resources:   store.Resources(),
			projects:    store.Projects(),
			bookings:    store.Bookings(),
			locker:      keylock.New(),
		}
	}
	return repositories{
		departments: department.NewPgxRepository(pool),
		resources:   resource.NewPgxRepository(pool),
		projects:    project.NewPgxRepository(pool),
		bookings:    booking.NewPgxRepository(pool),
		locker:      db.NewAdvisoryLocker(pool),
	}
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}

	// Init Components
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, 0)
	}

	var rateLimiter *limiter.Limiter
	if cfg.RateLimit != "" {
		rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("invalid rate limit %q: %w", cfg.RateLimit, err)
		}
		rateLimiter = limiter.New(limitermemory.NewStore(), rate)
	}

	repos := newRepositories(cfg.DBPool)
	if cfg.DBPool == nil {
		cfg.Logger.Warn("no database configured, using in-memory storage")
	}

	// Department Module
	deptService := department.NewService(repos.departments)

	// Resource Module
	resService := resource.NewService(repos.resources, deptService)

	// Project Module
	projService := project.NewService(repos.projects)

	// Booking Module
	bookingService := booking.NewService(repos.bookings, resService, projService, repos.locker)

	// Read-side aggregators
	scheduleService := schedule.NewService(resService, bookingService)
	reportService := report.NewService(resService, projService, bookingService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:      cfg.IsProduction,
		ProdOrigins:       cfg.ProdOrigins,
		MaxRangeDays:      cfg.MaxRangeDays,
		Logger:            cfg.Logger,
		Limiter:           rateLimiter,
		DepartmentService: deptService,
		ResourceService:   resService,
		ProjectService:    projService,
		BookingService:    bookingService,
		ScheduleService:   scheduleService,
		ReportService:     reportService,
		JWTManager:        jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
