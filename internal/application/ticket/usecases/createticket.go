package usecases

import (
	"context"
	"time"

	"github.com/tracklite/tracklite/internal/domain/ticket"
	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	AssigneeID  *uint
	DueDate     *time.Time
	LabelIDs    []uint
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	priority, err := vo.ParsePriorityOrDefault(cmd.Priority)
	if err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		priority,
		cmd.AssigneeID,
		cmd.DueDate,
		cmd.LabelIDs,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
