package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "helpdesk/internal/interfaces/http/handlers/comment"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	CommentHandler *commenthandlers.CommentHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Nested comment endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.GET("/:id/comments",
			config.CommentHandler.ListComments)
		tickets.POST("/:id/comments",
			config.CommentHandler.CreateComment)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.TicketHandler.DeleteTicket)
	}
}
