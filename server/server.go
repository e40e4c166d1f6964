package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kovacs-trading/site/cache"
	"github.com/kovacs-trading/site/config"
	h "github.com/kovacs-trading/site/handlers"
)

// New builds the site's fiber application. handlers.InitSessionStore must
// have been called first.
func New() (*fiber.App, error) {
	limiterStorage, err := cache.NewStorage("Rate Limiter Cache")
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    config.ServerBodyLimit,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(recover.New())

	// Add rate limiter
	app.Use(h.RateLimiter(limiterStorage))

	// Add logger middleware
	app.Use(logger.New())

	// Static files and utility
	app.Static("/", config.ServerStaticDir)
	app.Get("/health", h.HandleHealth)
	app.Get("/sitemap.xml", h.HandleSitemap)

	// Pages; loading one closes the visitor's open menus
	pages := map[string]fiber.Handler{
		"/":                         h.HandleHome,
		"/getting-started":          h.HandleGettingStarted,
		"/pdf-guides":               h.HandlePDFGuides,
		"/best-trading-creators":    h.HandleBestTradingCreators,
		"/trading-terminology":      h.HandleTradingTerminology,
		"/position-size-calculator": h.HandlePositionSizeCalculator,
		"/best-crypto-exchange":     h.HandleBestCryptoExchange,
	}
	for path, handler := range pages {
		app.Get(path, h.NavigationMiddleware, handler)
	}

	// Header partials for htmx
	navGroup := app.Group("/nav")
	navGroup.Post("/mobile/open", h.HandleMobileMenuOpen)
	navGroup.Post("/mobile/close", h.HandleMobileMenuClose)
	navGroup.Post("/dropdown/:id/toggle", h.HandleDropdownToggle)
	navGroup.Post("/accordion/:id/toggle", h.HandleAccordionToggle)

	// API group
	api := app.Group("/api")
	api.Post("/position-size", h.HandlePositionSize)

	return app, nil
}
