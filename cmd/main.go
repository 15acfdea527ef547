package main

import (
	"log"
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file, relying on environment")
	}

	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
