package graphql

import (
	stderrors "errors"

	"github.com/graphql-go/graphql"

	"github.com/tracklite/tracklite/internal/shared/errors"
)

// withBareMessages unwraps AppError before graphql-go formats it, so the
// errors array carries "Ticket not found" rather than the internal
// "not_found: Ticket not found" form.
func withBareMessages(fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		result, err := fn(p)
		if err != nil {
			if appErr := errors.GetAppError(err); appErr != nil {
				return nil, stderrors.New(appErr.Message)
			}
			return nil, err
		}
		return result, nil
	}
}

var statusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TicketStatus",
	Values: graphql.EnumValueConfigMap{
		"OPEN":        &graphql.EnumValueConfig{Value: "OPEN"},
		"IN_PROGRESS": &graphql.EnumValueConfig{Value: "IN_PROGRESS"},
		"DONE":        &graphql.EnumValueConfig{Value: "DONE"},
	},
})

var priorityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "TicketPriority",
	Values: graphql.EnumValueConfigMap{
		"LOW":    &graphql.EnumValueConfig{Value: "LOW"},
		"MEDIUM": &graphql.EnumValueConfig{Value: "MEDIUM"},
		"HIGH":   &graphql.EnumValueConfig{Value: "HIGH"},
	},
})

var labelType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Label",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"color": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var commentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Comment",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"ticketId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"authorId":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"authorName":  &graphql.Field{Type: graphql.String},
		"authorEmail": &graphql.Field{Type: graphql.String},
		"content":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var ticketType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Ticket",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status":       &graphql.Field{Type: graphql.NewNonNull(statusEnum)},
		"priority":     &graphql.Field{Type: graphql.NewNonNull(priorityEnum)},
		"assigneeId":   &graphql.Field{Type: graphql.ID},
		"assigneeName": &graphql.Field{Type: graphql.String},
		"dueDate":      &graphql.Field{Type: graphql.String},
		"isOverdue":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"labels":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(labelType)))},
		"comments":     &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(commentType)))},
		"createdAt":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"updatedAt":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

// ticketSummaryType mirrors the list view: no description or comments, those
// stay on the detail type.
var ticketSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TicketSummary",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"title":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"status":       &graphql.Field{Type: graphql.NewNonNull(statusEnum)},
		"priority":     &graphql.Field{Type: graphql.NewNonNull(priorityEnum)},
		"assigneeName": &graphql.Field{Type: graphql.String},
		"dueDate":      &graphql.Field{Type: graphql.String},
		"isOverdue":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"labels":       &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(labelType)))},
		"createdAt":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"updatedAt":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var ticketStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TicketStats",
	Fields: graphql.Fields{
		"open":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"inProgress": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"done":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"total":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var ticketFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TicketFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"search": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status": &graphql.InputObjectFieldConfig{Type: statusEnum},
		"sortBy": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createTicketInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateTicketInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"priority":    &graphql.InputObjectFieldConfig{Type: priorityEnum},
		"assigneeId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"labelIds":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
	},
})

var updateTicketInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateTicketInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"priority":    &graphql.InputObjectFieldConfig{Type: priorityEnum},
		"status":      &graphql.InputObjectFieldConfig{Type: statusEnum},
		"assigneeId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"dueDate":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"labelIds":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
	},
})

// NewSchema builds the executable schema backed by the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"tickets": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(ticketSummaryType))),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: ticketFilterInput},
				},
				Resolve: withBareMessages(r.resolveTickets),
			},
			"ticket": &graphql.Field{
				Type: ticketType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: withBareMessages(r.resolveTicket),
			},
			"ticketStats": &graphql.Field{
				Type:    graphql.NewNonNull(ticketStatsType),
				Resolve: withBareMessages(r.resolveTicketStats),
			},
			"overdueTickets": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(ticketSummaryType))),
				Resolve: withBareMessages(r.resolveOverdueTickets),
			},
			"users": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: withBareMessages(r.resolveUsers),
			},
			"labels": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(labelType))),
				Resolve: withBareMessages(r.resolveLabels),
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTicket": &graphql.Field{
				Type: graphql.NewNonNull(ticketType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createTicketInput)},
				},
				Resolve: withBareMessages(r.resolveCreateTicket),
			},
			"updateTicket": &graphql.Field{
				Type: graphql.NewNonNull(ticketType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateTicketInput)},
				},
				Resolve: withBareMessages(r.resolveUpdateTicket),
			},
			"updateTicketStatus": &graphql.Field{
				Type: graphql.NewNonNull(ticketType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(statusEnum)},
				},
				Resolve: withBareMessages(r.resolveUpdateTicketStatus),
			},
			"deleteTicket": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: withBareMessages(r.resolveDeleteTicket),
			},
			"addComment": &graphql.Field{
				Type: graphql.NewNonNull(commentType),
				Args: graphql.FieldConfigArgument{
					"ticketId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"content":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"userId":   &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: withBareMessages(r.resolveAddComment),
			},
			"deleteComment": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"ticketId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"commentId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: withBareMessages(r.resolveDeleteComment),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
