package usecases

import (
	"context"

	"github.com/tracklite/tracklite/internal/application/ticket/dto"
	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/domain/ticket"
	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/domain/user"
	"github.com/tracklite/tracklite/internal/shared/biztime"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type ListTicketsQuery struct {
	Search string
	Status string
	Sort   string
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	labelRepo  label.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	labelRepo label.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		labelRepo:  labelRepo,
		logger:     logger,
	}
}

// Execute lists tickets filtered by free-text search and status, ordered by
// the requested sort key. Search and status combine conjunctively; unknown
// sort keys fall back to newest-first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Debugw("executing list tickets use case",
		"search", query.Search,
		"status", query.Status,
		"sort", query.Sort)

	statusFilter, err := vo.ParseStatusFilter(query.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	filter := ticket.Filter{
		Search: query.Search,
		Status: statusFilter,
		Sort:   ticket.ParseSortKey(query.Sort),
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items, err := buildListItems(ctx, tickets, uc.userRepo, uc.labelRepo, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to resolve ticket references", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets: items,
		Total:   len(items),
	}, nil
}
