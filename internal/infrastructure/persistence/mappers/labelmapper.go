package mappers

import (
	"time"

	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/infrastructure/persistence/models"
)

// LabelMapper handles the conversion between Label domain entities and persistence models.
type LabelMapper interface {
	ToModel(l *label.Label) *models.LabelModel
	ToDomain(model *models.LabelModel) (*label.Label, error)
}

type LabelMapperImpl struct{}

func NewLabelMapper() LabelMapper {
	return &LabelMapperImpl{}
}

func (m *LabelMapperImpl) ToModel(l *label.Label) *models.LabelModel {
	return &models.LabelModel{
		ID:        l.ID(),
		Name:      l.Name(),
		Color:     l.Color(),
		CreatedAt: l.CreatedAt().UnixMilli(),
	}
}

func (m *LabelMapperImpl) ToDomain(model *models.LabelModel) (*label.Label, error) {
	return label.ReconstructLabel(
		model.ID,
		model.Name,
		model.Color,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
