package usecase

import (
	"context"
	"fmt"

	"github.com/vero4ka/botutils/application/dto"
	"github.com/vero4ka/botutils/domain/delivery"
)

type GetDeliveryUseCase struct {
	repo delivery.Repository
}

func NewGetDeliveryUseCase(repo delivery.Repository) *GetDeliveryUseCase {
	return &GetDeliveryUseCase{repo: repo}
}

func (uc *GetDeliveryUseCase) Execute(ctx context.Context, recipientID string) (*dto.DeliveryOutput, error) {
	d, err := uc.repo.FindLatest(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("find delivery: %w", err)
	}

	output := dto.NewDeliveryOutput(d)
	return &output, nil
}
