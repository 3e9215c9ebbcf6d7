package usecases

import (
	"context"

	"github.com/tracklite/tracklite/internal/application/ticket/dto"
	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/domain/ticket"
	"github.com/tracklite/tracklite/internal/domain/user"
	"github.com/tracklite/tracklite/internal/shared/biztime"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type ListOverdueTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	labelRepo  label.Repository
	logger     logger.Interface
}

func NewListOverdueTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	labelRepo label.Repository,
	logger logger.Interface,
) *ListOverdueTicketsUseCase {
	return &ListOverdueTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		labelRepo:  labelRepo,
		logger:     logger,
	}
}

// Execute lists not-done tickets whose due date has passed, soonest first.
func (uc *ListOverdueTicketsUseCase) Execute(ctx context.Context) ([]dto.TicketListItemDTO, error) {
	now := biztime.NowUTC()

	tickets, err := uc.ticketRepo.ListOverdue(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to list overdue tickets", "error", err)
		return nil, errors.NewInternalError("failed to list overdue tickets")
	}

	items, err := buildListItems(ctx, tickets, uc.userRepo, uc.labelRepo, now)
	if err != nil {
		uc.logger.Errorw("failed to resolve ticket references", "error", err)
		return nil, errors.NewInternalError("failed to list overdue tickets")
	}
	return items, nil
}
