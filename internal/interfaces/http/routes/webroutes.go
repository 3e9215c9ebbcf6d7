package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tracklite/tracklite/internal/interfaces/http/handlers/web"
)

type WebRouteConfig struct {
	WebHandler *web.Handler
}

func SetupWebRoutes(engine *gin.Engine, config *WebRouteConfig) {
	engine.GET("/", config.WebHandler.Dashboard)

	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		tickets.GET("", config.WebHandler.ListTickets)
		tickets.POST("", config.WebHandler.CreateTicket)
		tickets.GET("/new", config.WebHandler.NewTicketForm)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/:id/edit", config.WebHandler.EditTicketForm)
		tickets.POST("/:id/delete", config.WebHandler.DeleteTicket)
		// Using PATCH for state changes as per RESTful best practices
		tickets.PATCH("/:id/status", config.WebHandler.UpdateStatus)
		tickets.POST("/:id/comments", config.WebHandler.AddComment)
		tickets.POST("/:id/comments/:commentId/delete", config.WebHandler.DeleteComment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id", config.WebHandler.ShowTicket)
		tickets.POST("/:id", config.WebHandler.UpdateTicket)
	}
}
