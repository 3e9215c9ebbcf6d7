package web

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/tracklite/tracklite/internal/application/ticket/dto"
	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/services/markdown"
)

func TestHandler_ListTickets(t *testing.T) {
	t.Run("PassesQueryParams", func(t *testing.T) {
		var captured ticketusecases.ListTicketsQuery
		handler := NewHandler(Config{
			ListTicketsUC: &mockListTicketsExecutor{
				ExecuteFunc: func(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
					captured = query
					return &ticketusecases.ListTicketsResult{
						Tickets: []ticketdto.TicketListItemDTO{
							{ID: 1, Title: "Fix login timeout"},
							{ID: 2, Title: "Add export button"},
						},
						Total: 2,
					}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/tickets?search=login&status=OPEN&sort=priority")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "login", captured.Search)
		assert.Equal(t, "OPEN", captured.Status)
		assert.Equal(t, "priority", captured.Sort)
		assert.Contains(t, w.Body.String(), "total=2")
		assert.Contains(t, w.Body.String(), "[1:Fix login timeout]")
		assert.Contains(t, w.Body.String(), "[2:Add export button]")
	})

	t.Run("InvalidStatusFilter", func(t *testing.T) {
		handler := NewHandler(Config{
			ListTicketsUC: &mockListTicketsExecutor{
				ExecuteFunc: func(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
					return nil, errors.NewValidationError("invalid status filter: BOGUS")
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/tickets?status=BOGUS")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid status filter: BOGUS")
	})
}

func TestHandler_CreateTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured ticketusecases.CreateTicketCommand
		handler := NewHandler(Config{
			CreateTicketUC: &mockCreateTicketExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error) {
					captured = cmd
					return &ticketusecases.CreateTicketResult{TicketID: 7, Status: "OPEN"}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		form := url.Values{
			"title":       {"Fix login timeout"},
			"description": {"Sessions expire after five minutes."},
			"priority":    {"HIGH"},
			"assignee_id": {"3"},
			"due_date":    {"2026-09-15"},
			"label_ids":   {"1", "4"},
		}
		w := doForm(newTestRouter(handler), "/tickets", form)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/tickets/7", w.Header().Get("Location"))

		assert.Equal(t, "Fix login timeout", captured.Title)
		assert.Equal(t, "HIGH", captured.Priority)
		require.NotNil(t, captured.AssigneeID)
		assert.Equal(t, uint(3), *captured.AssigneeID)
		require.NotNil(t, captured.DueDate)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), *captured.DueDate)
		assert.Equal(t, []uint{1, 4}, captured.LabelIDs)
	})

	t.Run("ValidationErrorRerendersForm", func(t *testing.T) {
		handler := NewHandler(Config{
			CreateTicketUC: &mockCreateTicketExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error) {
					return nil, errors.NewValidationError("Title must be at least 3 characters")
				},
			},
			ListUsersUC:  &mockListUsersExecutor{},
			ListLabelsUC: &mockListLabelsExecutor{},
			Markdown:     markdown.NewService(),
		})

		form := url.Values{
			"title":       {"ab"},
			"description": {"A long enough description."},
			"priority":    {"MEDIUM"},
		}
		w := doForm(newTestRouter(handler), "/tickets", form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error=Title must be at least 3 characters")
		assert.Contains(t, w.Body.String(), "title=ab")
	})

	t.Run("InvalidDueDate", func(t *testing.T) {
		handler := NewHandler(Config{
			CreateTicketUC: &mockCreateTicketExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error) {
					t.Fatal("usecase should not be called")
					return nil, nil
				},
			},
			ListUsersUC:  &mockListUsersExecutor{},
			ListLabelsUC: &mockListLabelsExecutor{},
			Markdown:     markdown.NewService(),
		})

		form := url.Values{
			"title":       {"Fix login timeout"},
			"description": {"Sessions expire after five minutes."},
			"due_date":    {"15/09/2026"},
		}
		w := doForm(newTestRouter(handler), "/tickets", form)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error=Invalid due date")
		assert.Contains(t, w.Body.String(), "due=15/09/2026")
	})
}

func TestHandler_ShowTicket(t *testing.T) {
	t.Run("RendersMarkdownDescription", func(t *testing.T) {
		handler := NewHandler(Config{
			GetTicketUC: &mockGetTicketExecutor{
				ExecuteFunc: func(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
					assert.Equal(t, uint(42), query.TicketID)
					return &ticketdto.TicketDTO{
						ID:          42,
						Title:       "Fix login timeout",
						Description: "Steps are **important** here.",
					}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/tickets/42")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "id=42")
		assert.Contains(t, w.Body.String(), "<strong>important</strong>")
	})

	t.Run("SanitizesRawHTML", func(t *testing.T) {
		handler := NewHandler(Config{
			GetTicketUC: &mockGetTicketExecutor{
				ExecuteFunc: func(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
					return &ticketdto.TicketDTO{
						ID:          42,
						Title:       "Fix login timeout",
						Description: "hello <script>alert(1)</script>",
					}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/tickets/42")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<script>")
	})

	t.Run("NotFound", func(t *testing.T) {
		handler := NewHandler(Config{
			GetTicketUC: &mockGetTicketExecutor{
				ExecuteFunc: func(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
					return nil, errors.NewNotFoundError("Ticket not found")
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doGet(newTestRouter(handler), "/tickets/999")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Ticket not found")
	})

	t.Run("InvalidID", func(t *testing.T) {
		handler := NewHandler(Config{Markdown: markdown.NewService()})

		w := doGet(newTestRouter(handler), "/tickets/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_EditTicketForm(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	assigneeID := uint(3)
	handler := NewHandler(Config{
		GetTicketUC: &mockGetTicketExecutor{
			ExecuteFunc: func(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
				return &ticketdto.TicketDTO{
					ID:          42,
					Title:       "Fix login timeout",
					Description: "Sessions expire after five minutes.",
					Priority:    "HIGH",
					AssigneeID:  &assigneeID,
					DueDate:     &due,
					Labels:      []ticketdto.LabelDTO{{ID: 1, Name: "bug"}},
				}, nil
			},
		},
		ListUsersUC:  &mockListUsersExecutor{},
		ListLabelsUC: &mockListLabelsExecutor{},
		Markdown:     markdown.NewService(),
	})

	w := doGet(newTestRouter(handler), "/tickets/42/edit")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "action=/tickets/42")
	assert.Contains(t, w.Body.String(), "title=Fix login timeout")
	assert.Contains(t, w.Body.String(), "priority=HIGH")
	assert.Contains(t, w.Body.String(), "due=2026-09-15")
}

func TestHandler_UpdateTicket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var captured ticketusecases.UpdateTicketCommand
		handler := NewHandler(Config{
			UpdateTicketUC: &mockUpdateTicketExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.UpdateTicketCommand) (*ticketusecases.UpdateTicketResult, error) {
					captured = cmd
					return &ticketusecases.UpdateTicketResult{TicketID: cmd.TicketID}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		form := url.Values{
			"title":       {"Fix login timeout for SSO"},
			"description": {"Sessions expire after five minutes."},
			"priority":    {"LOW"},
		}
		w := doForm(newTestRouter(handler), "/tickets/42", form)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/tickets/42", w.Header().Get("Location"))
		assert.Equal(t, uint(42), captured.TicketID)
		assert.Equal(t, "Fix login timeout for SSO", captured.Title)
		assert.Nil(t, captured.AssigneeID)
		assert.Nil(t, captured.DueDate)
	})

	t.Run("NotFound", func(t *testing.T) {
		handler := NewHandler(Config{
			UpdateTicketUC: &mockUpdateTicketExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.UpdateTicketCommand) (*ticketusecases.UpdateTicketResult, error) {
					return nil, errors.NewNotFoundError("Ticket not found")
				},
			},
			Markdown: markdown.NewService(),
		})

		form := url.Values{
			"title":       {"Fix login timeout"},
			"description": {"Sessions expire after five minutes."},
		}
		w := doForm(newTestRouter(handler), "/tickets/999", form)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Ticket not found")
	})
}

func TestHandler_DeleteTicket(t *testing.T) {
	var captured ticketusecases.DeleteTicketCommand
	handler := NewHandler(Config{
		DeleteTicketUC: &mockDeleteTicketExecutor{
			ExecuteFunc: func(ctx context.Context, cmd ticketusecases.DeleteTicketCommand) error {
				captured = cmd
				return nil
			},
		},
		Markdown: markdown.NewService(),
	})

	w := doForm(newTestRouter(handler), "/tickets/42/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/tickets", w.Header().Get("Location"))
	assert.Equal(t, uint(42), captured.TicketID)
}

func TestHandler_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := NewHandler(Config{
			UpdateStatusUC: &mockUpdateStatusExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.UpdateTicketStatusCommand) (*ticketusecases.UpdateTicketStatusResult, error) {
					assert.Equal(t, uint(42), cmd.TicketID)
					assert.Equal(t, "DONE", cmd.Status)
					return &ticketusecases.UpdateTicketStatusResult{TicketID: 42, Status: "DONE"}, nil
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doJSON(newTestRouter(handler), http.MethodPatch, "/tickets/42/status", `{"status":"DONE"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), `"status":"DONE"`)
	})

	t.Run("MissingStatusField", func(t *testing.T) {
		handler := NewHandler(Config{Markdown: markdown.NewService()})

		w := doJSON(newTestRouter(handler), http.MethodPatch, "/tickets/42/status", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid request body")
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		handler := NewHandler(Config{
			UpdateStatusUC: &mockUpdateStatusExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.UpdateTicketStatusCommand) (*ticketusecases.UpdateTicketStatusResult, error) {
					return nil, errors.NewValidationError("invalid status: ARCHIVED")
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doJSON(newTestRouter(handler), http.MethodPatch, "/tickets/42/status", `{"status":"ARCHIVED"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid status: ARCHIVED")
	})

	t.Run("NotFound", func(t *testing.T) {
		handler := NewHandler(Config{
			UpdateStatusUC: &mockUpdateStatusExecutor{
				ExecuteFunc: func(ctx context.Context, cmd ticketusecases.UpdateTicketStatusCommand) (*ticketusecases.UpdateTicketStatusResult, error) {
					return nil, errors.NewNotFoundError("Ticket not found")
				},
			},
			Markdown: markdown.NewService(),
		})

		w := doJSON(newTestRouter(handler), http.MethodPatch, "/tickets/999/status", `{"status":"DONE"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Ticket not found")
	})
}
