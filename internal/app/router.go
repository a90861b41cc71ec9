package app

import (
	"bulls_cows_backend/docs"
	"bulls_cows_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/api/health", c.health.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		game := v1.Group("/game")
		{
			game.POST("/create", c.game.CreateGame)
			game.POST("/propose_combination", c.game.ProposeCombination)
			game.GET("/previous_combination", c.game.PreviousCombination)
			game.DELETE("/delete", c.game.DeleteGame)
		}
	}
}
