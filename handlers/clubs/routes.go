package clubs

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to clubs
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	clubs := r.Group("/clubs")
	clubs.Use(middleware.AuthMiddleware())
	{
		clubs.GET("/", GetAllClubs)
		clubs.GET("/:id", GetClub)
		clubs.POST("/", CreateClub)
		clubs.PUT("/:id", UpdateClub)
	}
}
