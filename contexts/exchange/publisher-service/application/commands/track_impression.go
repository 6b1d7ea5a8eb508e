package commands

import (
	"context"
	"log/slog"
	"strings"

	application "adx402/contexts/exchange/publisher-service/application"
	"adx402/contexts/exchange/publisher-service/domain/entities"
	domainerrors "adx402/contexts/exchange/publisher-service/domain/errors"
	"adx402/contexts/exchange/publisher-service/ports"
)

type TrackImpressionCommand struct {
	WalletAddress     string
	SlotName          string
	AdID              string
	ViewerFingerprint string
	ViewerIP          string
}

type TrackImpressionResult struct {
	ImpressionID string
}

type TrackImpressionUseCase struct {
	Publishers  ports.PublisherRepository
	Slots       ports.SlotRepository
	Catalog     ports.AdCatalog
	Impressions ports.ImpressionRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc TrackImpressionUseCase) Execute(ctx context.Context, cmd TrackImpressionCommand) (TrackImpressionResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	publisher, err := uc.Publishers.GetPublisherByWallet(ctx, strings.TrimSpace(cmd.WalletAddress))
	if err != nil {
		return TrackImpressionResult{}, err
	}
	slot, err := uc.Slots.GetAdSlot(ctx, publisher.PublisherID, strings.TrimSpace(cmd.SlotName))
	if err != nil {
		return TrackImpressionResult{}, err
	}
	ad, err := uc.Catalog.GetAd(ctx, strings.TrimSpace(cmd.AdID))
	if err != nil {
		return TrackImpressionResult{}, err
	}
	// Fast-path rejection; the repository re-checks the balance inside the
	// debit transaction so a concurrent spender cannot slip past this.
	if ad.CreditBalance <= 0 {
		return TrackImpressionResult{}, domainerrors.ErrInsufficientCredits
	}

	impressionID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return TrackImpressionResult{}, err
	}
	impression := entities.Impression{
		ImpressionID:      impressionID,
		AdID:              ad.AdID,
		PublisherID:       publisher.PublisherID,
		SlotID:            slot.SlotID,
		ViewerFingerprint: strings.TrimSpace(cmd.ViewerFingerprint),
		ViewerIP:          strings.TrimSpace(cmd.ViewerIP),
		CreatedAt:         uc.Clock.Now().UTC(),
	}

	recordedID, err := uc.Impressions.RecordImpression(ctx, impression)
	if err != nil {
		return TrackImpressionResult{}, err
	}

	logger.Info("impression recorded",
		"event", "impression_recorded",
		"module", "exchange/publisher-service",
		"layer", "application",
		"impression_id", recordedID,
		"ad_id", ad.AdID,
		"publisher_id", publisher.PublisherID,
	)
	return TrackImpressionResult{ImpressionID: recordedID}, nil
}
