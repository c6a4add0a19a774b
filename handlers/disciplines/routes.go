package disciplines

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to disciplines
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	disciplines := r.Group("/disciplines")
	disciplines.Use(middleware.AuthMiddleware())
	{
		disciplines.GET("/", GetAllDisciplines)
		disciplines.POST("/", CreateDiscipline)
		disciplines.POST("/:id/categories", CreateCategory)
	}
}
