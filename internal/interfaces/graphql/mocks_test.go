package graphql

import (
	"context"

	labeldto "github.com/tracklite/tracklite/internal/application/label/dto"
	ticketdto "github.com/tracklite/tracklite/internal/application/ticket/dto"
	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	userdto "github.com/tracklite/tracklite/internal/application/user/dto"
)

type mockCreateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error)
}

func (m *mockCreateTicketExecutor) Execute(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.CreateTicketResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.UpdateTicketCommand) (*ticketusecases.UpdateTicketResult, error)
}

func (m *mockUpdateTicketExecutor) Execute(ctx context.Context, cmd ticketusecases.UpdateTicketCommand) (*ticketusecases.UpdateTicketResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateStatusExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.UpdateTicketStatusCommand) (*ticketusecases.UpdateTicketStatusResult, error)
}

func (m *mockUpdateStatusExecutor) Execute(ctx context.Context, cmd ticketusecases.UpdateTicketStatusCommand) (*ticketusecases.UpdateTicketStatusResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.DeleteTicketCommand) error
}

func (m *mockDeleteTicketExecutor) Execute(ctx context.Context, cmd ticketusecases.DeleteTicketCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockAddCommentExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.AddCommentCommand) (*ticketusecases.AddCommentResult, error)
}

func (m *mockAddCommentExecutor) Execute(ctx context.Context, cmd ticketusecases.AddCommentCommand) (*ticketusecases.AddCommentResult, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteCommentExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd ticketusecases.DeleteCommentCommand) error
}

func (m *mockDeleteCommentExecutor) Execute(ctx context.Context, cmd ticketusecases.DeleteCommentCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.TicketDTO, error)
}

func (m *mockGetTicketExecutor) Execute(ctx context.Context, query ticketusecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListTicketsExecutor struct {
	ExecuteFunc func(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error)
}

func (m *mockListTicketsExecutor) Execute(ctx context.Context, query ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockStatsExecutor struct {
	ExecuteFunc func(ctx context.Context) (*ticketusecases.TicketStats, error)
}

func (m *mockStatsExecutor) Execute(ctx context.Context) (*ticketusecases.TicketStats, error) {
	return m.ExecuteFunc(ctx)
}

type mockOverdueExecutor struct {
	ExecuteFunc func(ctx context.Context) ([]ticketdto.TicketListItemDTO, error)
}

func (m *mockOverdueExecutor) Execute(ctx context.Context) ([]ticketdto.TicketListItemDTO, error) {
	return m.ExecuteFunc(ctx)
}

type mockListUsersExecutor struct {
	ExecuteFunc func(ctx context.Context) ([]userdto.UserDTO, error)
}

func (m *mockListUsersExecutor) Execute(ctx context.Context) ([]userdto.UserDTO, error) {
	return m.ExecuteFunc(ctx)
}

type mockListLabelsExecutor struct {
	ExecuteFunc func(ctx context.Context) ([]labeldto.LabelDTO, error)
}

func (m *mockListLabelsExecutor) Execute(ctx context.Context) ([]labeldto.LabelDTO, error) {
	return m.ExecuteFunc(ctx)
}
