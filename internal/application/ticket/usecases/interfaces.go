package usecases

import (
	"context"

	"github.com/tracklite/tracklite/internal/application/ticket/dto"
)

// TransactionManager runs a function inside a database transaction scoped to
// the context it passes down.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context) (*TicketStats, error)
}

type ListOverdueTicketsExecutor interface {
	Execute(ctx context.Context) ([]dto.TicketListItemDTO, error)
}
