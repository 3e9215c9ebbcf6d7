package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tracklite/tracklite/internal/domain/ticket"
	vo "github.com/tracklite/tracklite/internal/domain/ticket/valueobjects"
	"github.com/tracklite/tracklite/internal/infrastructure/persistence/mappers"
	"github.com/tracklite/tracklite/internal/infrastructure/persistence/models"
	db "github.com/tracklite/tracklite/internal/shared/db"
)

// priorityOrderExpr ranks priorities for the priority sort. Ties are broken
// by newest first.
const priorityOrderExpr = "CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END DESC, created_at DESC"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		if err := t.SetID(model.ID); err != nil {
			return err
		}

		return r.insertLabelRows(tx, model.ID, t.LabelIDs())
	})
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(t)

		// Select forces nil assignee and due date through; struct updates
		// would skip them as zero values.
		result := tx.
			Model(&models.TicketModel{}).
			Where("id = ?", model.ID).
			Select("title", "description", "status", "priority", "assignee_id", "due_date", "updated_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update ticket: %w", result.Error)
		}

		// Label associations are replaced wholesale, never merged.
		if err := tx.
			Where("ticket_id = ?", model.ID).
			Delete(&models.TicketLabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear ticket labels: %w", err)
		}

		return r.insertLabelRows(tx, model.ID, t.LabelIDs())
	})
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("ticket_id = ?", ticketID).
			Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}

		if err := tx.
			Where("ticket_id = ?", ticketID).
			Delete(&models.TicketLabelModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket labels: %w", err)
		}

		if err := tx.
			Where("id = ?", ticketID).
			Delete(&models.TicketModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket: %w", err)
		}

		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	labelIDs, err := r.loadLabelIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}

	t, err := r.mapper.ToDomain(&model, labelIDs)
	if err != nil {
		return nil, err
	}

	if err := r.loadComments(tx, t, model.ID); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	query = query.Order(orderClause(filter.Sort))

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	labelIDsByTicket, err := r.loadLabelIDsBulk(tx, ticketModels)
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i], labelIDsByTicket[ticketModels[i].ID])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[vo.Status]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Count  int64
	}
	if err := tx.
		Model(&models.TicketModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.Status]int64, len(rows))
	for _, row := range rows {
		counts[vo.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) ListOverdue(ctx context.Context, now time.Time) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketModels []models.TicketModel
	if err := tx.
		Model(&models.TicketModel{}).
		Where("due_date IS NOT NULL AND due_date < ?", now).
		Where("status <> ?", vo.StatusDone.String()).
		Order("due_date ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list overdue tickets: %w", err)
	}

	labelIDsByTicket, err := r.loadLabelIDsBulk(tx, ticketModels)
	if err != nil {
		return nil, err
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i], labelIDsByTicket[ticketModels[i].ID])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) insertLabelRows(tx *gorm.DB, ticketID uint, labelIDs []uint) error {
	if len(labelIDs) == 0 {
		return nil
	}

	rows := make([]models.TicketLabelModel, 0, len(labelIDs))
	for _, labelID := range labelIDs {
		rows = append(rows, models.TicketLabelModel{TicketID: ticketID, LabelID: labelID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to save ticket labels: %w", err)
	}
	return nil
}

func (r *TicketRepository) loadLabelIDs(tx *gorm.DB, ticketID uint) ([]uint, error) {
	var labelIDs []uint
	if err := tx.
		Model(&models.TicketLabelModel{}).
		Where("ticket_id = ?", ticketID).
		Order("label_id ASC").
		Pluck("label_id", &labelIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket labels: %w", err)
	}
	return labelIDs, nil
}

func (r *TicketRepository) loadLabelIDsBulk(tx *gorm.DB, ticketModels []models.TicketModel) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(ticketModels))
	if len(ticketModels) == 0 {
		return result, nil
	}

	ticketIDs := make([]uint, 0, len(ticketModels))
	for i := range ticketModels {
		ticketIDs = append(ticketIDs, ticketModels[i].ID)
	}

	var rows []models.TicketLabelModel
	if err := tx.
		Where("ticket_id IN ?", ticketIDs).
		Order("label_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket labels: %w", err)
	}

	for _, row := range rows {
		result[row.TicketID] = append(result[row.TicketID], row.LabelID)
	}
	return result, nil
}

func (r *TicketRepository) loadComments(tx *gorm.DB, t *ticket.Ticket, ticketID uint) error {
	var commentModels []models.CommentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}

	for i := range commentModels {
		comment, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return err
		}
		if err := t.AddComment(comment); err != nil {
			return err
		}
	}
	return nil
}

func orderClause(sort ticket.SortKey) string {
	switch sort {
	case ticket.SortCreatedAsc:
		return "created_at ASC"
	case ticket.SortUpdated:
		return "updated_at DESC"
	case ticket.SortPriority:
		return priorityOrderExpr
	default:
		return "created_at DESC"
	}
}
