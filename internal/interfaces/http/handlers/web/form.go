package web

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	"github.com/tracklite/tracklite/internal/shared/biztime"
	"github.com/tracklite/tracklite/internal/shared/errors"
)

// ticketForm carries the raw form values so a failed submission can be
// re-rendered exactly as the user typed it.
type ticketForm struct {
	Title       string
	Description string
	Priority    string
	AssigneeID  string
	DueDate     string
	LabelIDs    []string
}

func bindTicketForm(c *gin.Context) ticketForm {
	return ticketForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Priority:    c.PostForm("priority"),
		AssigneeID:  c.PostForm("assignee_id"),
		DueDate:     c.PostForm("due_date"),
		LabelIDs:    c.PostFormArray("label_ids"),
	}
}

// HasLabel reports whether a label id is part of the submitted set. Used by
// the form template to restore checkbox state.
func (f ticketForm) HasLabel(id uint) bool {
	want := strconv.FormatUint(uint64(id), 10)
	for _, v := range f.LabelIDs {
		if v == want {
			return true
		}
	}
	return false
}

func (f ticketForm) assigneeID() (*uint, error) {
	if f.AssigneeID == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(f.AssigneeID, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("Invalid assignee")
	}
	v := uint(id)
	return &v, nil
}

func (f ticketForm) dueDate() (*time.Time, error) {
	if f.DueDate == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(f.DueDate)
	if err != nil {
		return nil, errors.NewValidationError("Invalid due date")
	}
	return &t, nil
}

func (f ticketForm) labelIDs() ([]uint, error) {
	ids := make([]uint, 0, len(f.LabelIDs))
	for _, v := range f.LabelIDs {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("Invalid label selection")
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func (f ticketForm) toCreateCommand() (ticketusecases.CreateTicketCommand, error) {
	assigneeID, err := f.assigneeID()
	if err != nil {
		return ticketusecases.CreateTicketCommand{}, err
	}
	dueDate, err := f.dueDate()
	if err != nil {
		return ticketusecases.CreateTicketCommand{}, err
	}
	labelIDs, err := f.labelIDs()
	if err != nil {
		return ticketusecases.CreateTicketCommand{}, err
	}

	return ticketusecases.CreateTicketCommand{
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.Priority,
		AssigneeID:  assigneeID,
		DueDate:     dueDate,
		LabelIDs:    labelIDs,
	}, nil
}

func (f ticketForm) toUpdateCommand(ticketID uint) (ticketusecases.UpdateTicketCommand, error) {
	assigneeID, err := f.assigneeID()
	if err != nil {
		return ticketusecases.UpdateTicketCommand{}, err
	}
	dueDate, err := f.dueDate()
	if err != nil {
		return ticketusecases.UpdateTicketCommand{}, err
	}
	labelIDs, err := f.labelIDs()
	if err != nil {
		return ticketusecases.UpdateTicketCommand{}, err
	}

	return ticketusecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.Priority,
		AssigneeID:  assigneeID,
		DueDate:     dueDate,
		LabelIDs:    labelIDs,
	}, nil
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("Invalid id")
	}
	return uint(id), nil
}
