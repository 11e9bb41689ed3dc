package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/railmadad/configs"
	"github.com/railmadad/internal/routes"
	"github.com/railmadad/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file loaded, relying on the process environment")
	}

	configs.LoadConfig()

	// Opens the SQLite file and runs the idempotent schema migration.
	db.InitDB(configs.AppConfig.SQLiteDBPath)
	defer db.CloseDB()

	router := gin.Default()
	routes.SetupRoutes(router)

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
