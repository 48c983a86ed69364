package routes

import (
	"github.com/gallegosdl/meal-planner-app-sub000/config"
	"github.com/gallegosdl/meal-planner-app-sub000/controllers"
	"github.com/gallegosdl/meal-planner-app-sub000/middlewares"
	"github.com/gallegosdl/meal-planner-app-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	hub := services.NewRealtimeHub()
	pantrySvc := services.NewPantryService(config.DB)
	consumptionSvc := services.NewConsumptionService(config.DB, hub)

	pantryCtl := controllers.NewPantryController(pantrySvc)
	consumptionCtl := controllers.NewConsumptionController(consumptionSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		pantry := api.Group("/pantry")
		{
			pantry.GET("", pantryCtl.List)
			pantry.POST("", pantryCtl.Add)
			pantry.PATCH("/:id", pantryCtl.UpdateQuantity)
			pantry.DELETE("/:id", pantryCtl.Delete)
		}

		api.POST("/meal-plan/consume-meal", consumptionCtl.ConsumeMeal)

		consumption := api.Group("/consumption")
		{
			consumption.GET("/history", consumptionCtl.History)
			consumption.GET("/stats", consumptionCtl.Stats)
		}
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/consumption", realtimeCtl.ConsumptionWS)
	}

	return r
}
