package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/shared/biztime"
)

const (
	minTitleLength       = 3
	minDescriptionLength = 10
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.Status
	priority    vo.Priority
	assigneeID  *uint
	dueDate     *time.Time
	labelIDs    []uint
	createdAt   time.Time
	updatedAt   time.Time
	comments    []*Comment
}

// NewTicket builds a ticket for creation. Status is always OPEN regardless
// of caller input; the write-time invariants on title and description are
// enforced here.
func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	assigneeID *uint,
	dueDate *time.Time,
	labelIDs []uint,
) (*Ticket, error) {
	if err := validateContent(title, description); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	if labelIDs == nil {
		labelIDs = []uint{}
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		assigneeID:  assigneeID,
		dueDate:     dueDate,
		labelIDs:    labelIDs,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	assigneeID *uint,
	dueDate *time.Time,
	labelIDs []uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	if labelIDs == nil {
		labelIDs = []uint{}
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		assigneeID:  assigneeID,
		dueDate:     dueDate,
		labelIDs:    labelIDs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		comments:    []*Comment{},
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) DueDate() *time.Time {
	return t.dueDate
}

func (t *Ticket) LabelIDs() []uint {
	ids := make([]uint, len(t.labelIDs))
	copy(ids, t.labelIDs)
	return ids
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Update replaces the editable fields. The label set is replaced wholesale,
// never merged. Status is untouched; use ChangeStatus for that.
func (t *Ticket) Update(
	title string,
	description string,
	priority vo.Priority,
	assigneeID *uint,
	dueDate *time.Time,
	labelIDs []uint,
) error {
	if err := validateContent(title, description); err != nil {
		return err
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	if labelIDs == nil {
		labelIDs = []uint{}
	}

	t.title = title
	t.description = description
	t.priority = priority
	t.assigneeID = assigneeID
	t.dueDate = dueDate
	t.labelIDs = labelIDs
	t.updatedAt = biztime.NowUTC()

	return nil
}

// ChangeStatus sets the status to any valid value. There is no transition
// table: OPEN→DONE, DONE→OPEN and every other pairing are all permitted.
func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()

	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	if comment.TicketID() != t.id {
		return fmt.Errorf("comment ticket ID mismatch")
	}

	t.comments = append(t.comments, comment)
	return nil
}

// IsOverdue reports whether the due date has passed and the ticket is not
// done. Tickets without a due date are never overdue.
func (t *Ticket) IsOverdue(now time.Time) bool {
	if t.dueDate == nil {
		return false
	}
	if t.status.IsDone() {
		return false
	}
	return now.After(*t.dueDate)
}

// Lengths are counted in characters, not bytes, so multibyte titles are
// measured the same way the UI counts them.
func validateContent(title, description string) error {
	if utf8.RuneCountInString(title) < minTitleLength {
		return fmt.Errorf("Title must be at least %d characters", minTitleLength)
	}
	if utf8.RuneCountInString(description) < minDescriptionLength {
		return fmt.Errorf("Description must be at least %d characters", minDescriptionLength)
	}
	return nil
}
