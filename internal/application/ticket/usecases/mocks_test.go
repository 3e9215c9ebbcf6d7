package usecases

import (
	"context"
	"time"

	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/domain/ticket"
	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/domain/user"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc        func(ctx context.Context, ticketID uint) error
	GetByIDFunc       func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc          func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	CountByStatusFunc func(ctx context.Context) (map[vo.Status]int64, error)
	ListOverdueFunc   func(ctx context.Context, now time.Time) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.Status]int64{}, nil
}

func (m *mockTicketRepository) ListOverdue(ctx context.Context, now time.Time) ([]*ticket.Ticket, error) {
	if m.ListOverdueFunc != nil {
		return m.ListOverdueFunc(ctx, now)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc    func(ctx context.Context, comment *ticket.Comment) error
	GetByIDFunc func(ctx context.Context, commentID uint) (*ticket.Comment, error)
	DeleteFunc  func(ctx context.Context, commentID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, commentID)
	}
	return nil, ticket.ErrCommentNotFound
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc    func(ctx context.Context, u *user.User) error
	GetByIDFunc func(ctx context.Context, userID uint) (*user.User, error)
	FirstFunc   func(ctx context.Context) (*user.User, error)
	ListFunc    func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) First(ctx context.Context) (*user.User, error) {
	if m.FirstFunc != nil {
		return m.FirstFunc(ctx)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockLabelRepository struct {
	SaveFunc      func(ctx context.Context, l *label.Label) error
	ListFunc      func(ctx context.Context) ([]*label.Label, error)
	ListByIDsFunc func(ctx context.Context, ids []uint) ([]*label.Label, error)
}

func (m *mockLabelRepository) Save(ctx context.Context, l *label.Label) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockLabelRepository) List(ctx context.Context) ([]*label.Label, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockLabelRepository) ListByIDs(ctx context.Context, ids []uint) ([]*label.Label, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

// mockTxManager runs the function directly; transactional behavior is
// covered by the repository integration tests.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

// newTestTicket builds a persisted-looking ticket for read-path tests.
func newTestTicket(id uint, title string, status vo.Status, priority vo.Priority, assigneeID *uint, dueDate *time.Time, labelIDs []uint) *ticket.Ticket {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	t, err := ticket.ReconstructTicket(id, title, "A sufficiently long description", status, priority, assigneeID, dueDate, labelIDs, now, now)
	if err != nil {
		panic(err)
	}
	return t
}
