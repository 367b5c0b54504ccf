package main

import (
	"log"
	"os"
	"strings"

	"github.com/PamelaEduardaS/alimentador/config"
	"github.com/PamelaEduardaS/alimentador/controllers"
	"github.com/PamelaEduardaS/alimentador/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Connect to PostgreSQL database
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Set the global DB in the config package and migrate models
	controllers.MigrateModels(db)

	// Initialize feeder settings from DB
	if err := config.InitFeederSettings(config.DB); err != nil {
		log.Fatalf("Failed to initialize feeder settings: %v", err)
	}

	// Optionally seed the food level ledger on first run
	if err := controllers.SeedInitialLevel(config.DB); err != nil {
		log.Fatalf("Failed to seed food level: %v", err)
	}

	// Set up Gin router with CORS configuration
	r := gin.Default()
	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Automatic pet feeder API is running!"})
	})
	r.POST("/api/register", controllers.Register)
	r.POST("/api/login", controllers.Login)

	// Protected routes using auth middleware
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/ws", controllers.HandleWebSocket)
	auth.GET("/profile", controllers.GetProfile)
	auth.GET("/food-level", controllers.GetFoodLevel)
	auth.POST("/food-level", controllers.RecordRefill)
	auth.POST("/feed", controllers.Feed)
	auth.GET("/history", controllers.GetHistory)
	auth.GET("/export-csv", controllers.ExportCSV)
	auth.POST("/schedules", controllers.CreateSchedule)
	auth.GET("/schedules", controllers.ListSchedules)
	auth.PUT("/schedules/:id", controllers.UpdateSchedule)
	auth.DELETE("/schedules/:id", controllers.DeleteSchedule)
	auth.GET("/feeder-config", controllers.GetFeederConfig)
	auth.PUT("/feeder-config", controllers.UpdateFeederConfig)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
