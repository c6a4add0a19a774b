package rankings

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to rankings and records
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	rankingRateLimiter := middleware.NewRateLimiter(30, 10)

	rankings := r.Group("/rankings")
	rankings.Use(middleware.AuthMiddleware())
	{
		rankings.GET("/annual", middleware.RateLimiterMiddleware(rankingRateLimiter), GetAnnualRankings)
		rankings.GET("/records/current", GetCurrentRecord)
		rankings.GET("/records/history", GetRecordHistory)
	}
}
