package queries

import (
	"context"
	"log/slog"
	"strings"

	application "adx402/contexts/exchange/publisher-service/application"
	"adx402/contexts/exchange/publisher-service/domain/entities"
	"adx402/contexts/exchange/publisher-service/ports"
)

type GetAdQuery struct {
	WalletAddress string
	SlotName      string
}

type GetAdResult struct {
	Ad    entities.CatalogAd
	Found bool
}

// GetAdUseCase is the serving decision: resolve the slot, then pick the one
// best eligible ad. Read-only; credits are only debited when the impression
// is tracked.
type GetAdUseCase struct {
	Publishers ports.PublisherRepository
	Slots      ports.SlotRepository
	Catalog    ports.AdCatalog
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc GetAdUseCase) Execute(ctx context.Context, query GetAdQuery) (GetAdResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	publisher, err := uc.Publishers.GetPublisherByWallet(ctx, strings.TrimSpace(query.WalletAddress))
	if err != nil {
		return GetAdResult{}, err
	}
	slot, err := uc.Slots.GetAdSlot(ctx, publisher.PublisherID, strings.TrimSpace(query.SlotName))
	if err != nil {
		return GetAdResult{}, err
	}

	ad, found, err := uc.Catalog.FindEligibleAd(ctx, ports.SlotTargeting{
		Tags:         slot.Tags,
		AspectRatios: slot.AspectRatios,
	}, uc.Clock.Now().UTC())
	if err != nil {
		return GetAdResult{}, err
	}
	if !found {
		logger.Info("no eligible ad for slot",
			"event", "ad_selection_empty",
			"module", "exchange/publisher-service",
			"layer", "application",
			"publisher_id", publisher.PublisherID,
			"slot_name", slot.SlotName,
		)
		return GetAdResult{}, nil
	}
	return GetAdResult{Ad: ad, Found: true}, nil
}
