package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
)

// recentTicketLimit caps the "recently created" list on the dashboard.
const recentTicketLimit = 6

// Dashboard renders the landing page with ticket counts per status, the
// overdue ticket list, and the most recently created tickets.
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	overdue, err := h.overdueUC.Execute(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	recent, err := h.listTicketsUC.Execute(c.Request.Context(), ticketusecases.ListTicketsQuery{})
	if err != nil {
		h.renderError(c, err)
		return
	}
	recentTickets := recent.Tickets
	if len(recentTickets) > recentTicketLimit {
		recentTickets = recentTickets[:recentTicketLimit]
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Stats":   stats,
		"Overdue": overdue,
		"Recent":  recentTickets,
	})
}
