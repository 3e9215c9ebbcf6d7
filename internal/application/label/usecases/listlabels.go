package usecases

import (
	"context"

	"github.com/tracklite/tracklite/internal/application/label/dto"
	"github.com/tracklite/tracklite/internal/domain/label"
	"github.com/tracklite/tracklite/internal/shared/errors"
	"github.com/tracklite/tracklite/internal/shared/logger"
)

type ListLabelsExecutor interface {
	Execute(ctx context.Context) ([]dto.LabelDTO, error)
}

type ListLabelsUseCase struct {
	labelRepo label.Repository
	logger    logger.Interface
}

func NewListLabelsUseCase(
	labelRepo label.Repository,
	logger logger.Interface,
) *ListLabelsUseCase {
	return &ListLabelsUseCase{
		labelRepo: labelRepo,
		logger:    logger,
	}
}

func (uc *ListLabelsUseCase) Execute(ctx context.Context) ([]dto.LabelDTO, error) {
	labels, err := uc.labelRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list labels", "error", err)
		return nil, errors.NewInternalError("failed to list labels")
	}
	return dto.ToLabelDTOs(labels), nil
}
