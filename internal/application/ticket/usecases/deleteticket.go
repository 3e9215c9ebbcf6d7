package usecases

import (
	"context"
	stderrors "errors"

	"github.com/tracklite/tracklite/internal/domain/ticket"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	txManager  TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute removes the ticket together with its comments and label
// associations. The existence check and the delete run in one transaction so
// a concurrent delete cannot slip between them.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID); err != nil {
			if stderrors.Is(err, ticket.ErrTicketNotFound) {
				return errors.NewNotFoundError("Ticket not found")
			}
			uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to load ticket")
		}

		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID); err != nil {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
			return errors.NewInternalError("failed to delete ticket")
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
