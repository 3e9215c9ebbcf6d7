package web

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	ticketdto "github.com/tracklite/tracklite/internal/application/ticket/dto"
	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/services/markdown"
)

func TestHandler_Dashboard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		due := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		handler := NewHandler(Config{
			StatsUC: &mockStatsExecutor{
				ExecuteFunc: func(ctx context.Context) (*ticketusecases.TicketStats, error) {
					return &ticketusecases.TicketStats{Open: 3, InProgress: 2, Done: 5, Total: 10}, nil
				},
			},
			OverdueUC: &mockOverdueExecutor{
				ExecuteFunc: func(ctx context.Context) ([]ticketdto.TicketListItemDTO, error) {
					return []ticketdto.TicketListItemDTO{
						{ID: 1, Title: "Fix login timeout", Status: "OPEN", DueDate: &due, IsOverdue: true},
					}, nil
				},
			},
			ListTicketsUC: &mockListTicketsExecutor{
				ExecuteFunc: func(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
					assert.Empty(t, query.Search)
					assert.Empty(t, query.Status)
					return &ticketusecases.ListTicketsResult{
						Tickets: []ticketdto.TicketListItemDTO{
							{ID: 2, Title: "Add export button", Status: "OPEN"},
							{ID: 1, Title: "Fix login timeout", Status: "OPEN"},
						},
						Total: 2,
					}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "open=3")
		assert.Contains(t, w.Body.String(), "in_progress=2")
		assert.Contains(t, w.Body.String(), "done=5")
		assert.Contains(t, w.Body.String(), "total=10")
		assert.Contains(t, w.Body.String(), "overdue=1")
		assert.Contains(t, w.Body.String(), "recent=2")
	})

	t.Run("TrimsRecentList", func(t *testing.T) {
		tickets := make([]ticketdto.TicketListItemDTO, 9)
		for i := range tickets {
			tickets[i] = ticketdto.TicketListItemDTO{ID: uint(i + 1), Title: "Ticket", Status: "OPEN"}
		}
		handler := NewHandler(Config{
			StatsUC: &mockStatsExecutor{
				ExecuteFunc: func(ctx context.Context) (*ticketusecases.TicketStats, error) {
					return &ticketusecases.TicketStats{Total: 9}, nil
				},
			},
			OverdueUC: &mockOverdueExecutor{
				ExecuteFunc: func(ctx context.Context) ([]ticketdto.TicketListItemDTO, error) {
					return nil, nil
				},
			},
			ListTicketsUC: &mockListTicketsExecutor{
				ExecuteFunc: func(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
					return &ticketusecases.ListTicketsResult{Tickets: tickets, Total: len(tickets)}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "recent=6")
	})

	t.Run("StatsError", func(t *testing.T) {
		handler := NewHandler(Config{
			StatsUC: &mockStatsExecutor{
				ExecuteFunc: func(ctx context.Context) (*ticketusecases.TicketStats, error) {
					return nil, errors.NewInternalError("failed to count tickets")
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to count tickets")
	})
}
