package app

import (
	"time"

	"duit-backend/internal/assets"
	"duit-backend/internal/auth"
	"duit-backend/internal/budgets"
	"duit-backend/internal/categories"
	"duit-backend/internal/config"
	"duit-backend/internal/dashboard"
	"duit-backend/internal/database"
	"duit-backend/internal/health"
	"duit-backend/internal/middleware"
	"duit-backend/internal/prices"
	"duit-backend/internal/reports"
	"duit-backend/internal/tasks"
	"duit-backend/internal/transactions"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. Returns the DB and Redis client for startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	// Session (Redis); the client is shared with the health marker and price cache
	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	// Health request marker (after session)
	app.Use(middleware.HealthMarker(rdb))

	// Tracing + route logger
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	// db may be nil when DATABASE_URL is not set (e.g. tests wiring their own)
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// --- Routes (no auth) ---
	var dbPinger health.DBPinger
	if db != nil {
		dbPinger = &gormPinger{db: db}
	}
	healthHandlers := &health.Handlers{
		Rdb:            rdb,
		DB:             dbPinger,
		PriceFeedURL:   cfg.CoinGeckoBaseURL,
		HealthAdminKey: cfg.HealthAdminKey,
	}
	app.Get("/health/json", healthHandlers.JSON)
	app.Get("/health/errors", healthHandlers.Errors)
	app.Get("/reset", healthHandlers.Reset)

	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{
		DB:         db,
		UserFinder: userFinder,
		Rdb:        rdb,
		Config:     sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/register", authHandlers.Register)
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// --- Protected modules (auth required) ---
	if db != nil && rdb != nil {
		priceFetcher := &prices.CachedFetcher{
			Inner: prices.NewCoinGeckoClient(cfg.CoinGeckoBaseURL, 2*time.Second, 3),
			Rdb:   rdb,
		}

		assetService := &assets.Service{DB: db, Prices: priceFetcher}
		assetHandlers := &assets.Handlers{Service: assetService}
		assetGroup := app.Group("/api/v1/assets", middleware.RequireAuth())
		assetGroup.Get("/", assetHandlers.ListAssets)
		assetGroup.Post("/", assetHandlers.CreateAsset)
		assetGroup.Put("/:id", assetHandlers.UpdateAsset)
		assetGroup.Delete("/:id", assetHandlers.DeleteAsset)
		assetGroup.Post("/:id/refresh-price", assetHandlers.RefreshPrice)
		assetGroup.Post("/:id/settle", assetHandlers.Settle)

		txService := &transactions.Service{DB: db}
		txHandlers := &transactions.Handlers{Service: txService}
		txGroup := app.Group("/api/v1/transactions", middleware.RequireAuth())
		txGroup.Get("/", txHandlers.ListTransactions)
		txGroup.Post("/", txHandlers.CreateTransaction)
		txGroup.Delete("/:id", txHandlers.DeleteTransaction)

		catService := &categories.Service{DB: db}
		catHandlers := &categories.Handlers{Service: catService}
		catGroup := app.Group("/api/v1/categories", middleware.RequireAuth())
		catGroup.Get("/", catHandlers.ListCategories)
		catGroup.Post("/", catHandlers.CreateCategory)
		catGroup.Delete("/:id", catHandlers.DeleteCategory)

		budgetService := &budgets.Service{DB: db}
		budgetHandlers := &budgets.Handlers{Service: budgetService}
		budgetGroup := app.Group("/api/v1/budgets", middleware.RequireAuth())
		budgetGroup.Get("/", budgetHandlers.ListBudgets)
		budgetGroup.Post("/", budgetHandlers.CreateBudget)
		budgetGroup.Delete("/:id", budgetHandlers.DeleteBudget)

		taskService := &tasks.Service{DB: db}
		taskHandlers := &tasks.Handlers{Service: taskService}
		taskGroup := app.Group("/api/v1/tasks", middleware.RequireAuth())
		taskGroup.Get("/", taskHandlers.ListBoard)
		taskGroup.Post("/", taskHandlers.CreateTask)
		taskGroup.Put("/:id", taskHandlers.UpdateTask)
		taskGroup.Patch("/:id/status", taskHandlers.MoveTask)
		taskGroup.Delete("/:id", taskHandlers.DeleteTask)

		dashService := &dashboard.Service{DB: db}
		dashHandlers := &dashboard.Handlers{Service: dashService}
		dashGroup := app.Group("/api/v1/dashboard", middleware.RequireAuth())
		dashGroup.Get("/summary", dashHandlers.GetSummary)

		reportService := &reports.Service{DB: db}
		reportHandlers := &reports.Handlers{Service: reportService}
		reportGroup := app.Group("/api/v1/reports", middleware.RequireAuth())
		reportGroup.Get("/net-worth", reportHandlers.GetNetWorth)
		reportGroup.Get("/summary", reportHandlers.GetSummary)

		priceHandlers := &prices.Handlers{Fetcher: priceFetcher}
		cryptoGroup := app.Group("/api/v1/crypto", middleware.RequireAuth())
		cryptoGroup.Get("/price", priceHandlers.GetPrice)
	}

	return app, db, rdb, nil
}

// gormPinger adapts *gorm.DB to the health check's Ping interface.
type gormPinger struct{ db *gorm.DB }

func (p *gormPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
