package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/tracklite/tracklite/internal/domain/ticket"
	"github.com/tracklite/tracklite/internal/domain/user"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	Content  string
	// AuthorID names an explicit author. Nil falls back to the current-user
	// stand-in.
	AuthorID *uint
}

type AddCommentResult struct {
	CommentID  uint
	TicketID   uint
	AuthorID   uint
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID)

	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("Ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	author, err := uc.resolveAuthor(ctx, cmd.AuthorID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to resolve comment author", "error", err)
		return nil, errors.NewInternalError("failed to resolve comment author")
	}

	comment, err := ticket.NewComment(cmd.TicketID, author.ID(), cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to save comment")
	}

	uc.logger.Infow("comment added successfully",
		"comment_id", comment.ID(),
		"ticket_id", cmd.TicketID)

	return &AddCommentResult{
		CommentID:  comment.ID(),
		TicketID:   comment.TicketID(),
		AuthorID:   author.ID(),
		AuthorName: author.Name(),
		Content:    comment.Content(),
		CreatedAt:  comment.CreatedAt(),
	}, nil
}

// resolveAuthor returns the named author when an id was supplied, otherwise
// the current-user stand-in: the first user record, created on demand when
// the table is empty.
func (uc *AddCommentUseCase) resolveAuthor(ctx context.Context, authorID *uint) (*user.User, error) {
	if authorID != nil {
		author, err := uc.userRepo.GetByID(ctx, *authorID)
		if err != nil {
			if stderrors.Is(err, user.ErrUserNotFound) {
				return nil, errors.NewNotFoundError("User not found")
			}
			return nil, err
		}
		return author, nil
	}

	author, err := uc.userRepo.First(ctx)
	if err == nil {
		return author, nil
	}
	if !stderrors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	author = user.NewDefaultUser()
	if err := uc.userRepo.Save(ctx, author); err != nil {
		return nil, err
	}

	uc.logger.Infow("created default user", "user_id", author.ID())
	return author, nil
}
