package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/shopfront-labs/storefront/internal/api/http/handlers"
	"github.com/shopfront-labs/storefront/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
	Cart    *handlers.CartHandler
	Admin   *handlers.AdminHandler
	Guard   *auth.Guard
	Metrics nethttp.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics))
	}

	app.Get("/", cfg.Auth.Root)
	app.Get("/login", cfg.Auth.ShowLogin)
	app.Post("/login", cfg.Auth.Login)
	app.Get("/register", cfg.Auth.ShowRegister)
	app.Post("/register", cfg.Auth.Register)
	app.Post("/logout", cfg.Auth.Logout)

	signedIn := cfg.Guard.Require(auth.RequireAuthenticated)
	app.Get("/dashboard", signedIn, cfg.Catalog.Dashboard)
	app.Get("/dashboard/purchases", signedIn, cfg.Cart.Purchases)
	app.Get("/cart", signedIn, cfg.Cart.Show)
	app.Get("/cart/history", signedIn, cfg.Cart.History)
	app.Post("/cart/items", signedIn, cfg.Catalog.AddToCart)
	app.Post("/cart/items/:id", signedIn, cfg.Cart.UpdateItem)
	app.Post("/cart/items/:id/delete", signedIn, cfg.Cart.RemoveItem)
	app.Post("/cart/checkout", signedIn, cfg.Cart.Checkout)

	// Group middleware matches by plain prefix and would also catch
	// /administrator, so the admin guard is attached per route.
	adminOnly := cfg.Guard.Require(auth.RequireAdmin)
	admin := app.Group("/admin")
	admin.Get("", adminOnly, cfg.Admin.Home)
	admin.Get("/products", adminOnly, cfg.Admin.Products)
	admin.Get("/products/new", adminOnly, cfg.Admin.NewProduct)
	admin.Post("/products", adminOnly, cfg.Admin.Create)
	admin.Get("/products/:id/edit", adminOnly, cfg.Admin.Edit)
	admin.Post("/products/:id", adminOnly, cfg.Admin.Update)
	admin.Post("/products/:id/delete", adminOnly, cfg.Admin.Delete)
}
