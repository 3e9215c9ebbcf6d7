package usecases

import (
	"context"

	"github.com/tracklite/tracklite/internal/domain/ticket"
	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type TicketStats struct {
	Open       int64
	InProgress int64
	Done       int64
	Total      int64
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context) (*TicketStats, error) {
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, errors.NewInternalError("failed to load ticket stats")
	}

	stats := &TicketStats{
		Open:       counts[vo.StatusOpen],
		InProgress: counts[vo.StatusInProgress],
		Done:       counts[vo.StatusDone],
	}
	stats.Total = stats.Open + stats.InProgress + stats.Done
	return stats, nil
}
