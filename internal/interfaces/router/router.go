package router

import (
	authsvc "roost-backend/internal/application/auth"
	listsvc "roost-backend/internal/application/listings"
	"roost-backend/internal/config"
	"roost-backend/internal/infrastructure/database"
	authhandler "roost-backend/internal/interfaces/handlers/auth"
	healthhandler "roost-backend/internal/interfaces/handlers/health"
	listhandler "roost-backend/internal/interfaces/handlers/listings"
	"roost-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and routes.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{}))

	sessionHandler, rdb, err := middleware.Session(middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		RedisURL:     cfg.RedisURL,
		IsProduction: cfg.IsProduction(),
	})
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)
	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	hh := &healthhandler.Handlers{Rdb: rdb}
	if db != nil {
		hh.DB = &gormDBPinger{db: db}
	}
	app.Get("/health/json", hh.JSON)

	sessionCfg := middleware.SessionConfig{
		Secret:       cfg.SessionSecret,
		RedisURL:     cfg.RedisURL,
		IsProduction: cfg.IsProduction(),
	}
	var userFinder authsvc.UserFinder
	if db != nil {
		userFinder = &authsvc.GormUserFinder{DB: db}
	}
	ah := &authhandler.Handlers{
		UserFinder: userFinder,
		Rdb:        rdb,
		Config:     sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", ah.Login)
	authGroup.Get("/me", ah.Me)
	authGroup.Delete("/logout", ah.Logout)

	if db != nil {
		lh := &listhandler.Handlers{
			Service: &listsvc.Service{Store: &listsvc.GormStore{DB: db}},
		}
		listings := app.Group("/api/v1/listings")
		listings.Get("/", lh.ListListings)
		listings.Get("/:id", lh.GetListing)
		// Writes take the session actor; the service rejects anonymous callers.
		listings.Post("/", lh.CreateListing)
		listings.Put("/:id", lh.UpdateListing)
		listings.Delete("/:id", lh.DeleteListing)
	}

	return app, db, rdb, nil
}
