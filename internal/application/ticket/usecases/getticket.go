package usecases

import (
	"context"
	stderrors "errors"

	"github.com/tracklite/tracklite/internal/application/ticket/dto"
	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/domain/ticket"
	"github.com/tracklite/tracklite/internal/domain/user"
	"github.com/tracklite/tracklite/internal/shared/biztime"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	labelRepo  label.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	labelRepo label.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		labelRepo:  labelRepo,
		logger:     logger,
	}
}

// Execute loads a ticket with its comments, labels, and resolved assignee and
// comment authors. A dangling assignee reference reads as unassigned.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		if stderrors.Is(err, ticket.ErrTicketNotFound) {
			return nil, errors.NewNotFoundError("Ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket")
	}

	var assignee *user.User
	if t.AssigneeID() != nil {
		assignee, err = uc.userRepo.GetByID(ctx, *t.AssigneeID())
		if err != nil && !stderrors.Is(err, user.ErrUserNotFound) {
			uc.logger.Errorw("failed to load assignee", "user_id", *t.AssigneeID(), "error", err)
			return nil, errors.NewInternalError("failed to load assignee")
		}
	}

	labels, err := uc.labelRepo.ListByIDs(ctx, t.LabelIDs())
	if err != nil {
		uc.logger.Errorw("failed to load labels", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load labels")
	}

	authors := make(map[uint]*user.User)
	for _, c := range t.Comments() {
		if _, ok := authors[c.AuthorID()]; ok {
			continue
		}
		author, err := uc.userRepo.GetByID(ctx, c.AuthorID())
		if err != nil {
			if stderrors.Is(err, user.ErrUserNotFound) {
				continue
			}
			uc.logger.Errorw("failed to load comment author", "user_id", c.AuthorID(), "error", err)
			return nil, errors.NewInternalError("failed to load comment author")
		}
		authors[c.AuthorID()] = author
	}

	return dto.ToTicketDTO(t, assignee, labels, authors, biztime.NowUTC()), nil
}
