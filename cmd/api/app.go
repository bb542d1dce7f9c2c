package main

import (
	"net/http"
	"time"

	"homeinsight-valuation/internal/estimator"
	"homeinsight-valuation/internal/handlers"
	"homeinsight-valuation/internal/middleware"
	"homeinsight-valuation/internal/repositories"
	"homeinsight-valuation/internal/services"
	"homeinsight-valuation/internal/validators"
	"homeinsight-valuation/pkg/cache"
	"homeinsight-valuation/pkg/config"
	"homeinsight-valuation/pkg/database"
	"homeinsight-valuation/pkg/logger"
	"homeinsight-valuation/pkg/metrics"
	"homeinsight-valuation/pkg/prediction"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config              *config.Config
	Router              *gin.Engine
	ValuationService    *services.ValuationService
	NeighborhoodService *services.NeighborhoodService
	ValuationHandler    *handlers.ValuationHandler
	NeighborhoodHandler *handlers.NeighborhoodHandler
	AdminHandler        *handlers.AdminHandler
	RateLimiter         *middleware.RateLimiter
	Server              *http.Server

	historyEnabled bool
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the MongoDB connection; history persistence is optional
func (a *App) initializeDatabase() {
	if a.Config.Database.URI == "" {
		logger.GlobalLogger.Println("No database configured, valuation history disabled")
		return
	}
	if err := database.InitDB(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database, valuation history disabled: %v", err)
		return
	}
	a.historyEnabled = true
}

// initialize the Redis cache; the service degrades to uncached when absent
func (a *App) initializeCache() {
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis, continuing without cache: %v", err)
		cache.RedisClient = nil
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// outbound client and local estimator
	predictor := prediction.NewClient(
		a.Config.Predictor.BaseURL,
		time.Duration(a.Config.Predictor.TimeoutSeconds)*time.Second,
	)
	priceEstimator := estimator.NewDefault()

	// repositories
	var valuationRepo repositories.ValuationRepository
	if a.historyEnabled {
		valuationRepo = repositories.NewValuationRepository()
	}

	// validators
	houseValidator := validators.NewHouseValidator()

	// services
	a.ValuationService = services.NewValuationService(predictor, priceEstimator, valuationRepo, houseValidator)
	a.NeighborhoodService = services.NewNeighborhoodService(predictor, estimator.DefaultNeighborhoodFactors())

	// handlers
	a.ValuationHandler = handlers.NewValuationHandler(a.ValuationService)
	a.NeighborhoodHandler = handlers.NewNeighborhoodHandler(a.NeighborhoodService)
	a.AdminHandler = handlers.NewAdminHandler(a.ValuationService, a.NeighborhoodService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.historyEnabled {
		database.CloseDB()
	}
	cache.CloseRedis()
}
