package usecases

import (
	"context"
	stderrors "errors"

	"github.com/tracklite/tracklite/internal/domain/ticket"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type DeleteCommentCommand struct {
	TicketID  uint
	CommentID uint
}

type DeleteCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute deletes a single comment. A comment belonging to a different ticket
// than the one named in the command is treated as missing.
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case",
		"ticket_id", cmd.TicketID,
		"comment_id", cmd.CommentID)

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return errors.NewNotFoundError("Ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to load ticket")
	}

	comment, err := uc.commentRepo.GetByID(ctx, cmd.CommentID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrCommentNotFound) {
			return errors.NewNotFoundError("Comment not found")
		}
		uc.logger.Errorw("failed to load comment", "comment_id", cmd.CommentID, "error", err)
		return errors.NewInternalError("failed to load comment")
	}
	if comment.TicketID() != cmd.TicketID {
		return errors.NewNotFoundError("Comment not found")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return errors.NewInternalError("failed to delete comment")
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID)
	return nil
}
