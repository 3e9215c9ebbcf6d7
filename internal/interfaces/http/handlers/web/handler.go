// Package web serves the server-rendered pages: dashboard, ticket list,
// ticket detail, and the create/edit forms. Mutations arrive as classic form
// posts and redirect on success; validation failures re-render the form with
// the submitted input intact.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	labelusecases "github.com/tracklite/tracklite/internal/application/label/usecases"
	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	userusecases "github.com/tracklite/tracklite/internal/application/user/usecases"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
	"github.com/tracklite/tracklite/internal/shared/services/markdown"
)

type Handler struct {
	createTicketUC  ticketusecases.CreateTicketExecutor
	updateTicketUC  ticketusecases.UpdateTicketExecutor
	updateStatusUC  ticketusecases.UpdateTicketStatusExecutor
	deleteTicketUC  ticketusecases.DeleteTicketExecutor
	addCommentUC    ticketusecases.AddCommentExecutor
	deleteCommentUC ticketusecases.DeleteCommentExecutor
	getTicketUC     ticketusecases.GetTicketExecutor
	listTicketsUC   ticketusecases.ListTicketsExecutor
	statsUC         ticketusecases.GetTicketStatsExecutor
	overdueUC       ticketusecases.ListOverdueTicketsExecutor
	listUsersUC     userusecases.ListUsersExecutor
	listLabelsUC    labelusecases.ListLabelsExecutor
	markdown        markdown.Service
	logger          logger.Interface
}

type Config struct {
	CreateTicketUC  ticketusecases.CreateTicketExecutor
	UpdateTicketUC  ticketusecases.UpdateTicketExecutor
	UpdateStatusUC  ticketusecases.UpdateTicketStatusExecutor
	DeleteTicketUC  ticketusecases.DeleteTicketExecutor
	AddCommentUC    ticketusecases.AddCommentExecutor
	DeleteCommentUC ticketusecases.DeleteCommentExecutor
	GetTicketUC     ticketusecases.GetTicketExecutor
	ListTicketsUC   ticketusecases.ListTicketsExecutor
	StatsUC         ticketusecases.GetTicketStatsExecutor
	OverdueUC       ticketusecases.ListOverdueTicketsExecutor
	ListUsersUC     userusecases.ListUsersExecutor
	ListLabelsUC    labelusecases.ListLabelsExecutor
	Markdown        markdown.Service
}

func NewHandler(cfg Config) *Handler {
	return &Handler{
		createTicketUC:  cfg.CreateTicketUC,
		updateTicketUC:  cfg.UpdateTicketUC,
		updateStatusUC:  cfg.UpdateStatusUC,
		deleteTicketUC:  cfg.DeleteTicketUC,
		addCommentUC:    cfg.AddCommentUC,
		deleteCommentUC: cfg.DeleteCommentUC,
		getTicketUC:     cfg.GetTicketUC,
		listTicketsUC:   cfg.ListTicketsUC,
		statsUC:         cfg.StatsUC,
		overdueUC:       cfg.OverdueUC,
		listUsersUC:     cfg.ListUsersUC,
		listLabelsUC:    cfg.ListLabelsUC,
		markdown:        cfg.Markdown,
		logger:          logger.NewLogger().With("component", "web"),
	}
}

// renderError maps an application error to the error page.
func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong"

	if appErr := errors.GetAppError(err); appErr != nil {
		status = appErr.Code
		message = appErr.Message
	} else {
		h.logger.Errorw("unhandled error", "error", err)
	}

	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
