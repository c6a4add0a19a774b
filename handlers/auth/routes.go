package auth

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	loginRateLimiter := middleware.NewRateLimiter(3000, 10)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimiterMiddleware(loginRateLimiter), Login)
		auth.GET("/check", middleware.AuthMiddleware(), CheckAuth)
		auth.POST("/change-password", middleware.AuthMiddleware(), ChangePassword)
	}
}
