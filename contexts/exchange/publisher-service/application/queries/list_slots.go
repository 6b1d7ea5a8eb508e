package queries

import (
	"context"
	"log/slog"
	"strings"

	"adx402/contexts/exchange/publisher-service/domain/entities"
	"adx402/contexts/exchange/publisher-service/ports"
)

type GetPublisherUseCase struct {
	Publishers ports.PublisherRepository
	Logger     *slog.Logger
}

func (uc GetPublisherUseCase) Execute(ctx context.Context, walletAddress string) (entities.Publisher, error) {
	return uc.Publishers.GetPublisherByWallet(ctx, strings.TrimSpace(walletAddress))
}

type ListAdSlotsUseCase struct {
	Publishers ports.PublisherRepository
	Slots      ports.SlotRepository
	Logger     *slog.Logger
}

func (uc ListAdSlotsUseCase) Execute(ctx context.Context, walletAddress string) ([]entities.AdSlot, error) {
	publisher, err := uc.Publishers.GetPublisherByWallet(ctx, strings.TrimSpace(walletAddress))
	if err != nil {
		return nil, err
	}
	return uc.Slots.ListAdSlots(ctx, publisher.PublisherID)
}
