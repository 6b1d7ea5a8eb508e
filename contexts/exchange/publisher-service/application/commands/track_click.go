package commands

import (
	"context"
	"log/slog"
	"strings"

	application "adx402/contexts/exchange/publisher-service/application"
	"adx402/contexts/exchange/publisher-service/domain/entities"
	"adx402/contexts/exchange/publisher-service/ports"
)

type TrackClickCommand struct {
	ImpressionID string
}

type TrackClickResult struct {
	ClickID string
}

type TrackClickUseCase struct {
	Impressions ports.ImpressionRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc TrackClickUseCase) Execute(ctx context.Context, cmd TrackClickCommand) (TrackClickResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	impression, err := uc.Impressions.GetImpression(ctx, strings.TrimSpace(cmd.ImpressionID))
	if err != nil {
		return TrackClickResult{}, err
	}

	clickID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return TrackClickResult{}, err
	}
	recordedID, err := uc.Impressions.RecordClick(ctx, entities.Click{
		ClickID:      clickID,
		ImpressionID: impression.ImpressionID,
		CreatedAt:    uc.Clock.Now().UTC(),
	})
	if err != nil {
		return TrackClickResult{}, err
	}

	logger.Info("click recorded",
		"event", "click_recorded",
		"module", "exchange/publisher-service",
		"layer", "application",
		"click_id", recordedID,
		"impression_id", impression.ImpressionID,
	)
	return TrackClickResult{ClickID: recordedID}, nil
}
