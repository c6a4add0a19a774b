package main

import (
	"log"

	"api/config"
	"api/database"
	_ "api/docs"
	"api/middleware"
	"api/realtime"
	v1 "api/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ADT Competition API
// @version 1.0
// @description Competition management API for the departmental shooting association: athletes, registrations, scoring, records and season rankings.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.LoadConfig()

	database.InitDB()
	database.InitRedis()

	hub := realtime.NewHub()
	go hub.Run()

	middleware.UpdateSystemMetrics()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1.Register(r, hub)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(":" + config.APIPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
