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

type UpdateTicketStatusCommand struct {
	TicketID uint
	Status   string
}

type UpdateTicketStatusResult struct {
	TicketID  uint
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute moves a ticket to any valid status. All pairings are permitted, so
// DONE tickets can be reopened directly.
func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*UpdateTicketStatusResult, error) {
	uc.logger.Infow("executing update ticket status use case",
		"ticket_id", cmd.TicketID,
		"status", cmd.Status)

	newStatus, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("Ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket status")
	}

	uc.logger.Infow("ticket status updated successfully",
		"ticket_id", t.ID(),
		"status", t.Status().String())

	return &UpdateTicketStatusResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
