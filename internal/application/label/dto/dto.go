package dto

import (
	"time"

	"github.com/tracklite/tracklite/internal/domain/label"
)

type LabelDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func ToLabelDTO(l *label.Label) LabelDTO {
	return LabelDTO{
		ID:        l.ID(),
		Name:      l.Name(),
		Color:     l.Color(),
		CreatedAt: l.CreatedAt(),
	}
}

func ToLabelDTOs(labels []*label.Label) []LabelDTO {
	dtos := make([]LabelDTO, 0, len(labels))
	for _, l := range labels {
		dtos = append(dtos, ToLabelDTO(l))
	}
	return dtos
}
