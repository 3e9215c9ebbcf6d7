package web

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ticketdto "github.com/tracklite/tracklite/internal/application/ticket/dto"
	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/shared/errors"
)

// ListTickets renders the ticket list with search, status filter, and sort
// taken from the query string.
func (h *Handler) ListTickets(c *gin.Context) {
	query := ticketusecases.ListTicketsQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Sort:   c.Query("sort"),
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "tickets_list.html", gin.H{
		"Tickets":  result.Tickets,
		"Total":    result.Total,
		"Search":   query.Search,
		"Status":   query.Status,
		"Sort":     query.Sort,
		"Statuses": vo.Statuses(),
	})
}

// NewTicketForm renders an empty create form.
func (h *Handler) NewTicketForm(c *gin.Context) {
	h.renderTicketForm(c, http.StatusOK, formPage{
		Form:     ticketForm{Priority: vo.DefaultPriority.String()},
		Action:   "/tickets",
		IsCreate: true,
	})
}

// CreateTicket handles the create form post. Validation failures re-render
// the form with the submitted values; success redirects to the new ticket.
func (h *Handler) CreateTicket(c *gin.Context) {
	form := bindTicketForm(c)

	cmd, err := form.toCreateCommand()
	if err != nil {
		h.renderTicketFormError(c, form, formPage{Action: "/tickets", IsCreate: true}, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		if errors.IsValidationError(err) {
			h.renderTicketFormError(c, form, formPage{Action: "/tickets", IsCreate: true}, err)
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/tickets/"+strconv.FormatUint(uint64(result.TicketID), 10))
}

// ShowTicket renders the detail page. The description is rendered from
// markdown and sanitized before it reaches the template.
func (h *Handler) ShowTicket(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderError(c, err)
		return
	}

	t, err := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{TicketID: id})
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderTicketDetail(c, http.StatusOK, t, "", "")
}

// EditTicketForm renders the edit form pre-filled from the current ticket.
func (h *Handler) EditTicketForm(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderError(c, err)
		return
	}

	t, err := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{TicketID: id})
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderTicketForm(c, http.StatusOK, formPage{
		Form:     formFromTicket(t),
		Action:   "/tickets/" + strconv.FormatUint(uint64(id), 10),
		TicketID: id,
	})
}

// UpdateTicket handles the edit form post. Status is deliberately not part of
// the form; it only changes through the status endpoint.
func (h *Handler) UpdateTicket(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderError(c, err)
		return
	}

	form := bindTicketForm(c)
	page := formPage{
		Action:   "/tickets/" + strconv.FormatUint(uint64(id), 10),
		TicketID: id,
	}

	cmd, err := form.toUpdateCommand(id)
	if err != nil {
		h.renderTicketFormError(c, form, page, err)
		return
	}

	if _, err := h.updateTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		if errors.IsValidationError(err) {
			h.renderTicketFormError(c, form, page, err)
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/tickets/"+strconv.FormatUint(uint64(id), 10))
}

// DeleteTicket removes a ticket and everything attached to it.
func (h *Handler) DeleteTicket(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderError(c, err)
		return
	}

	cmd := ticketusecases.DeleteTicketCommand{TicketID: id}
	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/tickets")
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus changes a ticket's status. Unlike the form posts this is a
// JSON endpoint so the detail page can switch status without a reload.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.respondJSONError(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondJSONError(c, errors.NewBadRequestError("Invalid request body"))
		return
	}

	cmd := ticketusecases.UpdateTicketStatusCommand{
		TicketID: id,
		Status:   req.Status,
	}
	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.respondJSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"ticket_id":  result.TicketID,
		"status":     result.Status,
		"updated_at": result.UpdatedAt,
	})
}

func (h *Handler) respondJSONError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	h.logger.Errorw("unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error occurred"})
}

// formPage is the view model for the create/edit form template.
type formPage struct {
	Form     ticketForm
	Action   string
	IsCreate bool
	TicketID uint
	Error    string
}

func (h *Handler) renderTicketForm(c *gin.Context, status int, page formPage) {
	users, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	labels, err := h.listLabelsUC.Execute(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(status, "ticket_form.html", gin.H{
		"Form":       page.Form,
		"Action":     page.Action,
		"IsCreate":   page.IsCreate,
		"TicketID":   page.TicketID,
		"Error":      page.Error,
		"Users":      users,
		"Labels":     labels,
		"Priorities": vo.Priorities(),
	})
}

func (h *Handler) renderTicketFormError(c *gin.Context, form ticketForm, page formPage, err error) {
	page.Form = form
	page.Error = "Something went wrong"
	if appErr := errors.GetAppError(err); appErr != nil {
		page.Error = appErr.Message
	}
	h.renderTicketForm(c, http.StatusBadRequest, page)
}

func (h *Handler) renderTicketDetail(c *gin.Context, status int, t *ticketdto.TicketDTO, commentError, commentDraft string) {
	descriptionHTML, err := h.markdown.ToHTMLSanitized(t.Description)
	if err != nil {
		h.logger.Errorw("failed to render ticket description", "ticket_id", t.ID, "error", err)
		descriptionHTML = ""
	}

	c.HTML(status, "ticket_detail.html", gin.H{
		"Ticket":          t,
		"DescriptionHTML": template.HTML(descriptionHTML),
		"Statuses":        vo.Statuses(),
		"CommentError":    commentError,
		"CommentDraft":    commentDraft,
	})
}

// formFromTicket pre-fills the edit form from the current ticket state.
func formFromTicket(t *ticketdto.TicketDTO) ticketForm {
	f := ticketForm{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
	}
	if t.AssigneeID != nil {
		f.AssigneeID = strconv.FormatUint(uint64(*t.AssigneeID), 10)
	}
	if t.DueDate != nil {
		f.DueDate = t.DueDate.Format("2006-01-02")
	}
	for _, l := range t.Labels {
		f.LabelIDs = append(f.LabelIDs, strconv.FormatUint(uint64(l.ID), 10))
	}
	return f
}
