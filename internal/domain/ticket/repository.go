package ticket

import (
	"context"
	"errors"
	"time"

	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
)

// Sentinel errors returned by repository implementations so callers can map
// them to the application error taxonomy.
var (
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// SortKey names a listing order. Unknown keys behave as SortCreated.
type SortKey string

const (
	SortCreated    SortKey = "created"
	SortCreatedAsc SortKey = "created-asc"
	SortUpdated    SortKey = "updated"
	SortPriority   SortKey = "priority"
)

// ParseSortKey maps a request parameter to a SortKey, falling back to
// SortCreated for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortCreatedAsc, SortUpdated, SortPriority:
		return SortKey(s)
	default:
		return SortCreated
	}
}

// Filter describes the ticket listing contract: a case-insensitive substring
// search over title and description, an optional exact status restriction,
// and a sort key. Search and status combine conjunctively.
type Filter struct {
	Search string
	Status *vo.Status
	Sort   SortKey
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	// Update persists field changes and replaces the ticket's label
	// associations with the entity's current set (delete-all, recreate).
	Update(ctx context.Context, t *Ticket) error
	// Delete removes the ticket with its comments and label associations.
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	CountByStatus(ctx context.Context) (map[vo.Status]int64, error)
	// ListOverdue returns tickets whose due date is before now and whose
	// status is not DONE, ordered by due date ascending.
	ListOverdue(ctx context.Context, now time.Time) ([]*Ticket, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	Delete(ctx context.Context, commentID uint) error
}
