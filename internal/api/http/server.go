package http

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/shopfront-labs/storefront/internal/api/dto"
	"github.com/shopfront-labs/storefront/internal/api/http/handlers"
	"github.com/shopfront-labs/storefront/internal/auth"
	"github.com/shopfront-labs/storefront/internal/backend"
	"github.com/shopfront-labs/storefront/internal/config"
	"github.com/shopfront-labs/storefront/internal/events"
	"github.com/shopfront-labs/storefront/internal/flash"
	"github.com/shopfront-labs/storefront/internal/observability"
	"github.com/shopfront-labs/storefront/internal/service"
	"github.com/shopfront-labs/storefront/internal/view"
	"github.com/shopfront-labs/storefront/internal/worker"
)

// ServerDependencies are the long-lived collaborators a server is built from.
type ServerDependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	API        backend.API
	FlashStore flash.Store
	// Dispatcher receives activity events; nil creates one with the activity log attached.
	Dispatcher events.Dispatcher
}

// NewServer assembles the fiber app: middlewares, handlers and routes.
func NewServer(deps ServerDependencies) *fiber.App {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: cfg.App.Env == "production",
	})

	guard := auth.NewGuard(auth.NewTokenCookie(cfg.Session), auth.DefaultPaths, logger, deps.Metrics)
	flasher := flash.New(deps.FlashStore, cfg.Redis.FlashTTL(), logger)
	pages := &handlers.Pages{
		AppName:   cfg.App.Name,
		Lang:      cfg.App.Locale,
		Renderer:  view.NewRenderer(cfg.Logger.Level == "debug"),
		Formatter: view.NewFormatter(cfg.App.Locale),
		Flash:     flasher,
		Guard:     guard,
		Logger:    logger,
	}
	validator := dto.NewValidator()

	dispatcher := deps.Dispatcher
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher()
		worker.StartActivityLog(dispatcher, logger.Named("activity"), deps.Metrics)
	}

	RegisterMiddlewares(app, logger, deps.Metrics, cfg.App.RequestTimeout(), pages,
		auth.EdgeGate(guard.Cookie(), auth.DefaultPaths.Login))

	routes := RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"flash":   flasher,
			"backend": deps.API,
		}),
		Auth:    handlers.NewAuthHandler(pages, service.NewAuthService(deps.API, dispatcher), validator),
		Catalog: handlers.NewCatalogHandler(pages, service.NewCatalogService(deps.API), validator),
		Cart:    handlers.NewCartHandler(pages, service.NewCartService(deps.API, dispatcher)),
		Admin:   handlers.NewAdminHandler(pages, service.NewAdminService(deps.API, dispatcher), validator),
		Guard:   guard,
	}
	if deps.Metrics != nil {
		routes.Metrics = deps.Metrics.Handler()
	}
	RegisterRoutes(app, routes)

	return app
}
