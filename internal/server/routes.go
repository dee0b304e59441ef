package server

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the scrape triggers onto a gin engine.
func SetupRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/", handler.HealthCheck)

	scrape := router.Group("/scrape")
	{
		scrape.POST("/offers", handler.ScrapeOffers)
		scrape.POST("/matches", handler.ScrapeMatches)
	}

	return router
}
