package dto

import (
	"time"

	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/domain/ticket"
	"github.com/tracklite/tracklite/internal/domain/user"
)

type LabelDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	AuthorID    uint      `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

type TicketDTO struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Status          string       `json:"status"`
	StatusDisplay   string       `json:"status_display"`
	Priority        string       `json:"priority"`
	PriorityDisplay string       `json:"priority_display"`
	AssigneeID      *uint        `json:"assignee_id"`
	AssigneeName    *string      `json:"assignee_name"`
	DueDate         *time.Time   `json:"due_date"`
	IsOverdue       bool         `json:"is_overdue"`
	Labels          []LabelDTO   `json:"labels"`
	Comments        []CommentDTO `json:"comments"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type TicketListItemDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Status          string     `json:"status"`
	StatusDisplay   string     `json:"status_display"`
	Priority        string     `json:"priority"`
	PriorityDisplay string     `json:"priority_display"`
	AssigneeName    *string    `json:"assignee_name"`
	DueDate         *time.Time `json:"due_date"`
	IsOverdue       bool       `json:"is_overdue"`
	Labels          []LabelDTO `json:"labels"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ToLabelDTO(l *label.Label) LabelDTO {
	return LabelDTO{
		ID:    l.ID(),
		Name:  l.Name(),
		Color: l.Color(),
	}
}

func ToLabelDTOs(labels []*label.Label) []LabelDTO {
	dtos := make([]LabelDTO, 0, len(labels))
	for _, l := range labels {
		dtos = append(dtos, ToLabelDTO(l))
	}
	return dtos
}

// ToCommentDTO maps a comment with its resolved author. A nil author leaves
// the name and email fields empty rather than failing the read.
func ToCommentDTO(c *ticket.Comment, author *user.User) CommentDTO {
	d := CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
	if author != nil {
		d.AuthorName = author.Name()
		d.AuthorEmail = author.Email()
	}
	return d
}

func ToTicketDTO(
	t *ticket.Ticket,
	assignee *user.User,
	labels []*label.Label,
	authors map[uint]*user.User,
	now time.Time,
) *TicketDTO {
	if t == nil {
		return nil
	}

	comments := make([]CommentDTO, 0, len(t.Comments()))
	for _, c := range t.Comments() {
		comments = append(comments, ToCommentDTO(c, authors[c.AuthorID()]))
	}

	d := &TicketDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		StatusDisplay:   t.Status().DisplayName(),
		Priority:        t.Priority().String(),
		PriorityDisplay: t.Priority().DisplayName(),
		AssigneeID:      t.AssigneeID(),
		DueDate:         t.DueDate(),
		IsOverdue:       t.IsOverdue(now),
		Labels:          ToLabelDTOs(labels),
		Comments:        comments,
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
	if assignee != nil {
		name := assignee.Name()
		d.AssigneeName = &name
	}
	return d
}

func ToTicketListItemDTO(
	t *ticket.Ticket,
	assignee *user.User,
	labels []*label.Label,
	now time.Time,
) TicketListItemDTO {
	d := TicketListItemDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Status:          t.Status().String(),
		StatusDisplay:   t.Status().DisplayName(),
		Priority:        t.Priority().String(),
		PriorityDisplay: t.Priority().DisplayName(),
		DueDate:         t.DueDate(),
		IsOverdue:       t.IsOverdue(now),
		Labels:          ToLabelDTOs(labels),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
	if assignee != nil {
		name := assignee.Name()
		d.AssigneeName = &name
	}
	return d
}
