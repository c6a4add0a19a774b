package competitions

import (
	"api/middleware"
	"api/realtime"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to competitions
// r: the RouterGroup to which the routes are added
// h: the realtime hub serving live scoreboard connections
func RegisterRoutes(r *gin.RouterGroup, h *realtime.Hub) {
	hub = h

	// The live scoreboard is public, auth happens via query token for
	// browser websocket clients that cannot set headers
	r.GET("/competitions/:id/live", CompetitionWebSocket)

	competitions := r.Group("/competitions")
	competitions.Use(middleware.AuthMiddleware())
	{
		// Competition management routes
		competitions.GET("/", GetAllCompetitions)
		competitions.GET("/:id", GetCompetition)
		competitions.POST("/", CreateCompetition)
		competitions.PUT("/:id", UpdateCompetition)
		competitions.PUT("/:id/start", StartCompetition)
		competitions.PUT("/:id/close", CloseCompetition)

		// Standings routes
		competitions.GET("/:id/scoreboard", GetScoreboard)
		competitions.GET("/:id/export", ExportScoreboardExcel)

		// Finance routes
		competitions.POST("/:id/expenses", AddExpense)
		competitions.GET("/:id/balance", GetBalance)
	}
}
