// Package graphql exposes the same ticket operations as the web interface
// through a GraphQL endpoint. Resolvers are thin: they translate arguments,
// call the shared use cases, and map DTOs into field maps.
package graphql

import (
	"strconv"
	"time"

	"github.com/graphql-go/graphql"

	labelusecases "github.com/tracklite/tracklite/internal/application/label/usecases"
	ticketdto "github.com/tracklite/tracklite/internal/application/ticket/dto"
	ticketusecases "github.com/tracklite/tracklite/internal/application/ticket/usecases"
	userusecases "github.com/tracklite/tracklite/internal/application/user/usecases"
	"github.com/tracklite/tracklite/internal/shared/biztime"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type Resolver struct {
	createTicketUC  ticketusecases.CreateTicketExecutor
	updateTicketUC  ticketusecases.UpdateTicketExecutor
	updateStatusUC  ticketusecases.UpdateTicketStatusExecutor
	deleteTicketUC  ticketusecases.DeleteTicketExecutor
	addCommentUC    ticketusecases.AddCommentExecutor
	deleteCommentUC ticketusecases.DeleteCommentExecutor
	getTicketUC     ticketusecases.GetTicketExecutor
	listTicketsUC   ticketusecases.ListTicketsExecutor
	statsUC         ticketusecases.GetTicketStatsExecutor
	overdueUC       ticketusecases.ListOverdueTicketsExecutor
	listUsersUC     userusecases.ListUsersExecutor
	listLabelsUC    labelusecases.ListLabelsExecutor
	logger          logger.Interface
}

type ResolverConfig struct {
	CreateTicketUC  ticketusecases.CreateTicketExecutor
	UpdateTicketUC  ticketusecases.UpdateTicketExecutor
	UpdateStatusUC  ticketusecases.UpdateTicketStatusExecutor
	DeleteTicketUC  ticketusecases.DeleteTicketExecutor
	AddCommentUC    ticketusecases.AddCommentExecutor
	DeleteCommentUC ticketusecases.DeleteCommentExecutor
	GetTicketUC     ticketusecases.GetTicketExecutor
	ListTicketsUC   ticketusecases.ListTicketsExecutor
	StatsUC         ticketusecases.GetTicketStatsExecutor
	OverdueUC       ticketusecases.ListOverdueTicketsExecutor
	ListUsersUC     userusecases.ListUsersExecutor
	ListLabelsUC    labelusecases.ListLabelsExecutor
}

func NewResolver(cfg ResolverConfig) *Resolver {
	return &Resolver{
		createTicketUC:  cfg.CreateTicketUC,
		updateTicketUC:  cfg.UpdateTicketUC,
		updateStatusUC:  cfg.UpdateStatusUC,
		deleteTicketUC:  cfg.DeleteTicketUC,
		addCommentUC:    cfg.AddCommentUC,
		deleteCommentUC: cfg.DeleteCommentUC,
		getTicketUC:     cfg.GetTicketUC,
		listTicketsUC:   cfg.ListTicketsUC,
		statsUC:         cfg.StatsUC,
		overdueUC:       cfg.OverdueUC,
		listUsersUC:     cfg.ListUsersUC,
		listLabelsUC:    cfg.ListLabelsUC,
		logger:          logger.NewLogger().With("component", "graphql"),
	}
}

func (r *Resolver) resolveTickets(p graphql.ResolveParams) (interface{}, error) {
	var query ticketusecases.ListTicketsQuery
	if filter, ok := p.Args["filter"].(map[string]interface{}); ok {
		query.Search = inputString(filter, "search")
		query.Status = inputString(filter, "status")
		query.Sort = inputString(filter, "sortBy")
	}

	result, err := r.listTicketsUC.Execute(p.Context, query)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		items = append(items, summaryToMap(t))
	}
	return items, nil
}

func (r *Resolver) resolveTicket(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p, "id")
	if err != nil {
		return nil, err
	}
	return r.fetchTicket(p, id)
}

func (r *Resolver) resolveTicketStats(p graphql.ResolveParams) (interface{}, error) {
	stats, err := r.statsUC.Execute(p.Context)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"open":       stats.Open,
		"inProgress": stats.InProgress,
		"done":       stats.Done,
		"total":      stats.Total,
	}, nil
}

func (r *Resolver) resolveOverdueTickets(p graphql.ResolveParams) (interface{}, error) {
	tickets, err := r.overdueUC.Execute(p.Context)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, summaryToMap(t))
	}
	return items, nil
}

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	users, err := r.listUsersUC.Execute(p.Context)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		items = append(items, map[string]interface{}{
			"id":    formatID(u.ID),
			"name":  u.Name,
			"email": u.Email,
		})
	}
	return items, nil
}

func (r *Resolver) resolveLabels(p graphql.ResolveParams) (interface{}, error) {
	labels, err := r.listLabelsUC.Execute(p.Context)
	if err != nil {
		return nil, err
	}

	items := make([]map[string]interface{}, 0, len(labels))
	for _, l := range labels {
		items = append(items, map[string]interface{}{
			"id":    formatID(l.ID),
			"name":  l.Name,
			"color": l.Color,
		})
	}
	return items, nil
}

func (r *Resolver) resolveCreateTicket(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.NewBadRequestError("Invalid input")
	}

	cmd := ticketusecases.CreateTicketCommand{
		Title:       inputString(input, "title"),
		Description: inputString(input, "description"),
		Priority:    inputString(input, "priority"),
	}

	assigneeID, err := inputID(input, "assigneeId")
	if err != nil {
		return nil, err
	}
	cmd.AssigneeID = assigneeID

	dueDate, err := inputDate(input, "dueDate")
	if err != nil {
		return nil, err
	}
	cmd.DueDate = dueDate

	labelIDs, err := inputIDList(input, "labelIds")
	if err != nil {
		return nil, err
	}
	cmd.LabelIDs = labelIDs

	result, err := r.createTicketUC.Execute(p.Context, cmd)
	if err != nil {
		return nil, err
	}
	return r.fetchTicket(p, result.TicketID)
}

func (r *Resolver) resolveUpdateTicket(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p, "id")
	if err != nil {
		return nil, err
	}

	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.NewBadRequestError("Invalid input")
	}

	cmd := ticketusecases.UpdateTicketCommand{
		TicketID:    id,
		Title:       inputString(input, "title"),
		Description: inputString(input, "description"),
		Priority:    inputString(input, "priority"),
	}

	assigneeID, err := inputID(input, "assigneeId")
	if err != nil {
		return nil, err
	}
	cmd.AssigneeID = assigneeID

	dueDate, err := inputDate(input, "dueDate")
	if err != nil {
		return nil, err
	}
	cmd.DueDate = dueDate

	labelIDs, err := inputIDList(input, "labelIds")
	if err != nil {
		return nil, err
	}
	cmd.LabelIDs = labelIDs

	if _, err := r.updateTicketUC.Execute(p.Context, cmd); err != nil {
		return nil, err
	}

	// Status rides along as an optional input field; it still flows through
	// the dedicated status use case.
	if status := inputString(input, "status"); status != "" {
		statusCmd := ticketusecases.UpdateTicketStatusCommand{
			TicketID: id,
			Status:   status,
		}
		if _, err := r.updateStatusUC.Execute(p.Context, statusCmd); err != nil {
			return nil, err
		}
	}

	return r.fetchTicket(p, id)
}

func (r *Resolver) resolveUpdateTicketStatus(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p, "id")
	if err != nil {
		return nil, err
	}

	status, _ := p.Args["status"].(string)
	cmd := ticketusecases.UpdateTicketStatusCommand{
		TicketID: id,
		Status:   status,
	}
	if _, err := r.updateStatusUC.Execute(p.Context, cmd); err != nil {
		return nil, err
	}
	return r.fetchTicket(p, id)
}

func (r *Resolver) resolveDeleteTicket(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p, "id")
	if err != nil {
		return nil, err
	}

	cmd := ticketusecases.DeleteTicketCommand{TicketID: id}
	if err := r.deleteTicketUC.Execute(p.Context, cmd); err != nil {
		return nil, err
	}
	return true, nil
}

func (r *Resolver) resolveAddComment(p graphql.ResolveParams) (interface{}, error) {
	ticketID, err := idArg(p, "ticketId")
	if err != nil {
		return nil, err
	}

	content, _ := p.Args["content"].(string)
	cmd := ticketusecases.AddCommentCommand{
		TicketID: ticketID,
		Content:  content,
	}
	if raw, ok := p.Args["userId"].(string); ok && raw != "" {
		authorID, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		cmd.AuthorID = &authorID
	}
	result, err := r.addCommentUC.Execute(p.Context, cmd)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":         formatID(result.CommentID),
		"ticketId":   formatID(result.TicketID),
		"authorId":   formatID(result.AuthorID),
		"authorName": result.AuthorName,
		"content":    result.Content,
		"createdAt":  result.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (r *Resolver) resolveDeleteComment(p graphql.ResolveParams) (interface{}, error) {
	ticketID, err := idArg(p, "ticketId")
	if err != nil {
		return nil, err
	}
	commentID, err := idArg(p, "commentId")
	if err != nil {
		return nil, err
	}

	cmd := ticketusecases.DeleteCommentCommand{
		TicketID:  ticketID,
		CommentID: commentID,
	}
	if err := r.deleteCommentUC.Execute(p.Context, cmd); err != nil {
		return nil, err
	}
	return true, nil
}

func (r *Resolver) fetchTicket(p graphql.ResolveParams, id uint) (interface{}, error) {
	t, err := r.getTicketUC.Execute(p.Context, ticketusecases.GetTicketQuery{TicketID: id})
	if err != nil {
		return nil, err
	}
	return ticketToMap(t), nil
}

func ticketToMap(t *ticketdto.TicketDTO) map[string]interface{} {
	comments := make([]map[string]interface{}, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, map[string]interface{}{
			"id":          formatID(c.ID),
			"ticketId":    formatID(c.TicketID),
			"authorId":    formatID(c.AuthorID),
			"authorName":  c.AuthorName,
			"authorEmail": c.AuthorEmail,
			"content":     c.Content,
			"createdAt":   c.CreatedAt.Format(time.RFC3339),
		})
	}

	m := map[string]interface{}{
		"id":          formatID(t.ID),
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status,
		"priority":    t.Priority,
		"isOverdue":   t.IsOverdue,
		"labels":      labelsToMaps(t.Labels),
		"comments":    comments,
		"createdAt":   t.CreatedAt.Format(time.RFC3339),
		"updatedAt":   t.UpdatedAt.Format(time.RFC3339),
	}
	if t.AssigneeID != nil {
		m["assigneeId"] = formatID(*t.AssigneeID)
	}
	if t.AssigneeName != nil {
		m["assigneeName"] = *t.AssigneeName
	}
	if t.DueDate != nil {
		m["dueDate"] = biztime.FormatDate(*t.DueDate)
	}
	return m
}

func summaryToMap(t ticketdto.TicketListItemDTO) map[string]interface{} {
	m := map[string]interface{}{
		"id":        formatID(t.ID),
		"title":     t.Title,
		"status":    t.Status,
		"priority":  t.Priority,
		"isOverdue": t.IsOverdue,
		"labels":    labelsToMaps(t.Labels),
		"createdAt": t.CreatedAt.Format(time.RFC3339),
		"updatedAt": t.UpdatedAt.Format(time.RFC3339),
	}
	if t.AssigneeName != nil {
		m["assigneeName"] = *t.AssigneeName
	}
	if t.DueDate != nil {
		m["dueDate"] = biztime.FormatDate(*t.DueDate)
	}
	return m
}

func labelsToMaps(labels []ticketdto.LabelDTO) []map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(labels))
	for _, l := range labels {
		items = append(items, map[string]interface{}{
			"id":    formatID(l.ID),
			"name":  l.Name,
			"color": l.Color,
		})
	}
	return items
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func idArg(p graphql.ResolveParams, name string) (uint, error) {
	raw, ok := p.Args[name].(string)
	if !ok {
		return 0, errors.NewBadRequestError("Invalid id")
	}
	return parseID(raw)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("Invalid id")
	}
	return uint(id), nil
}

func inputString(input map[string]interface{}, key string) string {
	v, _ := input[key].(string)
	return v
}

func inputID(input map[string]interface{}, key string) (*uint, error) {
	raw, ok := input[key].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func inputDate(input map[string]interface{}, key string) (*time.Time, error) {
	raw, ok := input[key].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError("Invalid due date")
	}
	return &t, nil
}

func inputIDList(input map[string]interface{}, key string) ([]uint, error) {
	raw, ok := input[key].([]interface{})
	if !ok {
		return nil, nil
	}
	ids := make([]uint, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, errors.NewBadRequestError("Invalid label id")
		}
		id, err := parseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
