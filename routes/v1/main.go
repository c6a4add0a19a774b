package v1

import (
	"api/handlers/athletes"
	"api/handlers/auth"
	"api/handlers/clubs"
	"api/handlers/competitions"
	"api/handlers/disciplines"
	"api/handlers/rankings"
	"api/handlers/ranges"
	"api/handlers/registrations"
	"api/handlers/results"
	"api/middleware"
	"api/realtime"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine, hub *realtime.Hub) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500) // 100 requests per second, 150 burst
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	clubs.RegisterRoutes(v1)
	athletes.RegisterRoutes(v1)
	disciplines.RegisterRoutes(v1)
	ranges.RegisterRoutes(v1)
	competitions.RegisterRoutes(v1, hub)
	registrations.RegisterRoutes(v1)
	results.RegisterRoutes(v1, hub)
	rankings.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
