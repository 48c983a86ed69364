package main

import (
	"os"

	"github.com/gallegosdl/meal-planner-app-sub000/config"
	"github.com/gallegosdl/meal-planner-app-sub000/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatalf("server exited: %v", err)
	}
}
