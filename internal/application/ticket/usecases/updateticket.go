package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/tracklite/tracklite/internal/domain/ticket"
	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Priority    string
	AssigneeID  *uint
	DueDate     *time.Time
	LabelIDs    []uint
}

type UpdateTicketResult struct {
	TicketID  uint
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute replaces the editable fields of a ticket. The label set is replaced
// wholesale and the status is left untouched.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("Ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	priority, err := vo.ParsePriorityOrDefault(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := t.Update(cmd.Title, cmd.Description, priority, cmd.AssigneeID, cmd.DueDate, cmd.LabelIDs); err != nil {
		uc.logger.Errorw("invalid update ticket command", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID())

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
