package registrations

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to registrations
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	registrations := r.Group("/registrations")
	registrations.Use(middleware.AuthMiddleware())
	{
		registrations.GET("/", GetCompetitionRegistrations)
		registrations.POST("/", CreateRegistration)
		registrations.PUT("/:id/approve", ApproveRegistration)
		registrations.PUT("/:id/reject", RejectRegistration)
		registrations.POST("/:id/payments", RecordPayment)
		registrations.PUT("/entries/:entry_id/weapon", ReassignEntryWeapon)
	}
}
