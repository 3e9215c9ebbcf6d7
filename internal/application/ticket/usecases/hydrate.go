package usecases

import (
	"context"
	"time"

	"github.com/tracklite/tracklite/internal/application/ticket/dto"
	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/domain/ticket"
	"github.com/tracklite/tracklite/internal/domain/user"
)

// buildListItems resolves assignee names and labels for a set of tickets in
// two bulk lookups and maps them to list item DTOs.
func buildListItems(
	ctx context.Context,
	tickets []*ticket.Ticket,
	userRepo user.Repository,
	labelRepo label.Repository,
	now time.Time,
) ([]dto.TicketListItemDTO, error) {
	users, err := userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		usersByID[u.ID()] = u
	}

	labelIDSet := make(map[uint]struct{})
	for _, t := range tickets {
		for _, id := range t.LabelIDs() {
			labelIDSet[id] = struct{}{}
		}
	}
	labelIDs := make([]uint, 0, len(labelIDSet))
	for id := range labelIDSet {
		labelIDs = append(labelIDs, id)
	}

	labelsByID := make(map[uint]*label.Label, len(labelIDs))
	if len(labelIDs) > 0 {
		labels, err := labelRepo.ListByIDs(ctx, labelIDs)
		if err != nil {
			return nil, err
		}
		for _, l := range labels {
			labelsByID[l.ID()] = l
		}
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		var assignee *user.User
		if t.AssigneeID() != nil {
			assignee = usersByID[*t.AssigneeID()]
		}

		ticketLabels := make([]*label.Label, 0, len(t.LabelIDs()))
		for _, id := range t.LabelIDs() {
			if l, ok := labelsByID[id]; ok {
				ticketLabels = append(ticketLabels, l)
			}
		}

		items = append(items, dto.ToTicketListItemDTO(t, assignee, ticketLabels, now))
	}
	return items, nil
}
