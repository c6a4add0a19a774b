package athletes

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to athletes
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	athletes := r.Group("/athletes")
	athletes.Use(middleware.AuthMiddleware())
	{
		athletes.GET("/", GetAllAthletes)
		athletes.GET("/:id", GetAthlete)
		athletes.POST("/", CreateAthlete)
		athletes.PUT("/:id/approve", ApproveAthlete)
		athletes.PUT("/:id/suspend", SuspendAthlete)
		athletes.PUT("/:id/reactivate", ReactivateAthlete)

		// Compliance file routes
		athletes.GET("/:id/documents", GetDocuments)
		athletes.POST("/:id/documents", AddDocument)
		athletes.DELETE("/:id/documents/:document_id", DeleteDocument)

		// Weapon file routes
		athletes.GET("/:id/weapons", GetWeapons)
		athletes.POST("/:id/weapons", AddWeapon)
		athletes.POST("/:id/weapons/:weapon_id/loans", CreateWeaponLoan)
		athletes.PUT("/:id/loans/:loan_id/revoke", RevokeWeaponLoan)
	}
}
