package ranges

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to ranges and judges
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	ranges := r.Group("/ranges")
	ranges.Use(middleware.AuthMiddleware())
	{
		ranges.GET("/", GetAllRanges)
		ranges.POST("/", CreateRange)
	}

	judges := r.Group("/judges")
	judges.Use(middleware.AuthMiddleware())
	{
		judges.GET("/", GetAllJudges)
		judges.POST("/", CreateJudge)
	}
}
