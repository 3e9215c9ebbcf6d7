package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/infrastructure/persistence/mappers"
	"github.com/tracklite/tracklite/internal/infrastructure/persistence/models"
	db "github.com/tracklite/tracklite/internal/shared/db"
)

type LabelRepository struct {
	db     *gorm.DB
	mapper mappers.LabelMapper
}

func NewLabelRepository(database *gorm.DB) *LabelRepository {
	return &LabelRepository{
		db:     database,
		mapper: mappers.NewLabelMapper(),
	}
}

func (r *LabelRepository) Save(ctx context.Context, l *label.Label) error {
	model := r.mapper.ToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save label: %w", err)
	}

	return l.SetID(model.ID)
}

func (r *LabelRepository) List(ctx context.Context) ([]*label.Label, error) {
	var labelModels []models.LabelModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Find(&labelModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	return r.toDomainSlice(labelModels)
}

func (r *LabelRepository) ListByIDs(ctx context.Context, ids []uint) ([]*label.Label, error) {
	if len(ids) == 0 {
		return []*label.Label{}, nil
	}

	var labelModels []models.LabelModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Order("id ASC").Find(&labelModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list labels by ids: %w", err)
	}

	return r.toDomainSlice(labelModels)
}

func (r *LabelRepository) toDomainSlice(labelModels []models.LabelModel) ([]*label.Label, error) {
	labels := make([]*label.Label, 0, len(labelModels))
	for i := range labelModels {
		l, err := r.mapper.ToDomain(&labelModels[i])
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}
