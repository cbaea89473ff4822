package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/repository"
	commenthandlers "helpdesk/internal/interfaces/http/handlers/comment"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// NewRouter wires repositories, use cases, and handlers into a gin engine.
// redisClient may be nil when rate limiting is disabled.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.ErrorHandler())

	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
		engine.Use(limiter.Limit())
	}

	ticketRepo := repository.NewTicketRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	txManager := db.NewTransactionManager(database)

	ticketHandler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, log),
		usecases.NewGetTicketUseCase(ticketRepo, log),
		usecases.NewListTicketsUseCase(ticketRepo, log),
		usecases.NewUpdateTicketUseCase(ticketRepo, log),
		usecases.NewDeleteTicketUseCase(ticketRepo, log),
	)
	commentHandler := commenthandlers.NewCommentHandler(
		usecases.NewAddCommentUseCase(ticketRepo, commentRepo, txManager, log),
		usecases.NewListCommentsUseCase(ticketRepo, commentRepo, log),
	)

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		CommentHandler: commentHandler,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return engine
}
