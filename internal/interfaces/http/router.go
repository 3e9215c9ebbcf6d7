package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	labelusecases "github.com/tracklite/tracklite/internal/application/label/usecases"
	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	userusecases "github.com/tracklite/tracklite/internal/application/user/usecases"
	"github.com/tracklite/tracklite/internal/infrastructure/config"
	"github.com/tracklite/tracklite/internal/infrastructure/repository"
	gql "github.com/tracklite/tracklite/internal/interfaces/graphql"
	"github.com/tracklite/tracklite/internal/interfaces/http/handlers/web"
	"github.com/tracklite/tracklite/internal/interfaces/http/middleware"
	"github.com/tracklite/tracklite/internal/interfaces/http/routes"
	shareddb "github.com/tracklite/tracklite/internal/shared/db"
	"github.com/tracklite/tracklite/internal/shared/logger"
	"github.com/tracklite/tracklite/internal/shared/services/markdown"
)

// Router wires repositories, use cases, and handlers onto a gin engine. Both
// the web pages and the GraphQL endpoint share the same use case instances.
type Router struct {
	engine     *gin.Engine
	cfg        *config.Config
	log        logger.Interface
	webHandler *web.Handler
	schema     gin.HandlerFunc
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	userRepo := repository.NewUserRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	txManager := shareddb.NewTransactionManager(db)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	updateStatusUC := ticketusecases.NewUpdateTicketStatusUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, txManager, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, userRepo, log)
	deleteCommentUC := ticketusecases.NewDeleteCommentUseCase(ticketRepo, commentRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, labelRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, userRepo, labelRepo, log)
	statsUC := ticketusecases.NewGetTicketStatsUseCase(ticketRepo, log)
	overdueUC := ticketusecases.NewListOverdueTicketsUseCase(ticketRepo, userRepo, labelRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	listLabelsUC := labelusecases.NewListLabelsUseCase(labelRepo, log)

	webHandler := web.NewHandler(web.Config{
		CreateTicketUC:  createTicketUC,
		UpdateTicketUC:  updateTicketUC,
		UpdateStatusUC:  updateStatusUC,
		DeleteTicketUC:  deleteTicketUC,
		AddCommentUC:    addCommentUC,
		DeleteCommentUC: deleteCommentUC,
		GetTicketUC:     getTicketUC,
		ListTicketsUC:   listTicketsUC,
		StatsUC:         statsUC,
		OverdueUC:       overdueUC,
		ListUsersUC:     listUsersUC,
		ListLabelsUC:    listLabelsUC,
		Markdown:        markdown.NewService(),
	})

	resolver := gql.NewResolver(gql.ResolverConfig{
		CreateTicketUC:  createTicketUC,
		UpdateTicketUC:  updateTicketUC,
		UpdateStatusUC:  updateStatusUC,
		DeleteTicketUC:  deleteTicketUC,
		AddCommentUC:    addCommentUC,
		DeleteCommentUC: deleteCommentUC,
		GetTicketUC:     getTicketUC,
		ListTicketsUC:   listTicketsUC,
		StatsUC:         statsUC,
		OverdueUC:       overdueUC,
		ListUsersUC:     listUsersUC,
		ListLabelsUC:    listLabelsUC,
	})
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	return &Router{
		engine:     engine,
		cfg:        cfg,
		log:        log,
		webHandler: webHandler,
		schema:     gql.NewGinHandler(schema, cfg.Server.Mode == "debug"),
	}, nil
}

// SetupRoutes configures middleware, templates, and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())

	r.engine.LoadHTMLGlob("web/templates/*.html")
	r.engine.Static("/static", "web/static")

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupWebRoutes(r.engine, &routes.WebRouteConfig{
		WebHandler: r.webHandler,
	})
	routes.SetupGraphQLRoutes(r.engine, &routes.GraphQLRouteConfig{
		Handler: r.schema,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
