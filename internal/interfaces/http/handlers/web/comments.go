package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	"github.com/tracklite/tracklite/internal/shared/errors"
)

// AddComment handles the comment form on the detail page. A validation
// failure re-renders the detail page with the rejected draft still in the
// textarea.
func (h *Handler) AddComment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.renderError(c, err)
		return
	}

	content := c.PostForm("content")
	cmd := ticketusecases.AddCommentCommand{
		TicketID: id,
		Content:  content,
	}

	if _, err := h.addCommentUC.Execute(c.Request.Context(), cmd); err != nil {
		if errors.IsValidationError(err) {
			t, getErr := h.getTicketUC.Execute(c.Request.Context(), ticketusecases.GetTicketQuery{TicketID: id})
			if getErr != nil {
				h.renderError(c, getErr)
				return
			}
			message := errors.GetAppError(err).Message
			h.renderTicketDetail(c, http.StatusBadRequest, t, message, content)
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/tickets/"+strconv.FormatUint(uint64(id), 10))
}

// DeleteComment removes a comment and returns to the detail page.
func (h *Handler) DeleteComment(c *gin.Context) {
	ticketID, err := parseID(c, "id")
	if err != nil {
		h.renderError(c, err)
		return
	}

	commentID, err := parseID(c, "commentId")
	if err != nil {
		h.renderError(c, err)
		return
	}

	cmd := ticketusecases.DeleteCommentCommand{
		TicketID:  ticketID,
		CommentID: commentID,
	}
	if err := h.deleteCommentUC.Execute(c.Request.Context(), cmd); err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/tickets/"+strconv.FormatUint(uint64(ticketID), 10))
}
