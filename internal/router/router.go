package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/shopluxe/backend/internal/config"     // cache and rate-limit settings
	"github.com/shopluxe/backend/internal/handler"    // import the handlers that implement business logic
	"github.com/shopluxe/backend/internal/middleware" // import middleware for sessions, rate limiting and caching
	"github.com/shopluxe/backend/internal/repository"
)

// RegisterRoutes registers routes that do not belong to a feature
// group.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the read-only storefront endpoints.  The
// catalog is static, so every route sits behind the Redis response
// cache; when Redis is unavailable the middleware degrades to a no-op.
func RegisterCatalog(e *echo.Echo, rdb *redis.Client) {
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/categories", handler.GetCategories, cache)
	e.GET("/products/:category", handler.GetProducts, cache)
	e.GET("/product/:id", handler.GetProduct, cache)
}

// RegisterAuth registers signup, email verification and login, plus the
// session-protected profile endpoint.  The storefront keeps these at
// the root rather than under a versioned prefix.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, users *repository.UserRepo) {
	e.POST("/signup", a.Signup)
	e.POST("/verify-email", a.VerifyEmail)
	e.POST("/login", a.Login)

	// /me resolves the bearer session token against the users table and
	// returns the owning account.
	e.GET("/me", handler.Me, middleware.SessionAuth(users))
}

// RegisterOrders registers checkout.  Orders are open to guests; the
// handler validates product and payment method itself.
func RegisterOrders(e *echo.Echo, o *handler.OrderHandler) {
	e.POST("/order", o.CreateOrder)
}

// RegisterAffiliates registers affiliate enrollment and the public
// dashboard lookup by referral code.
func RegisterAffiliates(e *echo.Echo, a *handler.AffiliateHandler) {
	e.POST("/affiliate/signup", a.Signup)
	e.GET("/affiliate/:code", a.Dashboard)
}
