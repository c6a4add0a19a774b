package results

import (
	"api/middleware"
	"api/realtime"
	"api/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to results
// r: the RouterGroup to which the routes are added
// hub: the realtime hub receiving post-commit score broadcasts
func RegisterRoutes(r *gin.RouterGroup, hub *realtime.Hub) {
	service = services.NewResultsService(hub)

	submitRateLimiter := middleware.NewRateLimiter(60, 30)

	// Certificate verification is public
	r.GET("/results/verify/:code", VerifyResult)

	results := r.Group("/results")
	results.Use(middleware.AuthMiddleware())
	{
		results.POST("/", middleware.RateLimiterMiddleware(submitRateLimiter), SubmitResult)
		results.PUT("/:id/disqualify", DisqualifyResult)
		results.GET("/registration/:registration_id", GetRegistrationResults)
	}
}
