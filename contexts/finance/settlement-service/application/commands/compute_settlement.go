package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "adx402/contexts/finance/settlement-service/application"
	"adx402/contexts/finance/settlement-service/domain/entities"
	domainerrors "adx402/contexts/finance/settlement-service/domain/errors"
	"adx402/contexts/finance/settlement-service/ports"

	"github.com/shopspring/decimal"
)

// Per-impression publisher reward in protocol currency.
var defaultImpressionRate = decimal.RequireFromString("0.0001")

type ComputeSettlementCommand struct {
	PublisherID string
	StartPeriod time.Time
	EndPeriod   time.Time
}

// ComputeSettlementUseCase aggregates a publisher's in-period activity into
// a payout record. Aggregation is read-only over immutable rows, so the
// computed counts stay valid regardless of concurrent serving traffic.
type ComputeSettlementUseCase struct {
	Settlements    ports.SettlementRepository
	Activity       ports.ActivityReader
	ImpressionRate decimal.Decimal
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Logger         *slog.Logger
}

func (uc ComputeSettlementUseCase) Execute(ctx context.Context, cmd ComputeSettlementCommand) (entities.Settlement, error) {
	logger := application.ResolveLogger(uc.Logger)

	publisherID := strings.TrimSpace(cmd.PublisherID)
	if publisherID == "" {
		return entities.Settlement{}, domainerrors.ErrInvalidInput
	}
	if cmd.StartPeriod.IsZero() || cmd.EndPeriod.IsZero() || cmd.EndPeriod.Before(cmd.StartPeriod) {
		return entities.Settlement{}, domainerrors.ErrInvalidPeriod
	}

	exists, err := uc.Activity.PublisherExists(ctx, publisherID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if !exists {
		return entities.Settlement{}, domainerrors.ErrPublisherNotFound
	}

	impressions, err := uc.Activity.CountImpressions(ctx, publisherID, cmd.StartPeriod.UTC(), cmd.EndPeriod.UTC())
	if err != nil {
		return entities.Settlement{}, err
	}
	clicks, err := uc.Activity.CountClicks(ctx, publisherID, cmd.StartPeriod.UTC(), cmd.EndPeriod.UTC())
	if err != nil {
		return entities.Settlement{}, err
	}

	rate := uc.ImpressionRate
	if rate.IsZero() {
		rate = defaultImpressionRate
	}

	settlementID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Settlement{}, err
	}
	settlement := entities.Settlement{
		SettlementID:     settlementID,
		PublisherID:      publisherID,
		StartPeriod:      cmd.StartPeriod.UTC(),
		EndPeriod:        cmd.EndPeriod.UTC(),
		ImpressionsCount: impressions,
		ClicksCount:      clicks,
		RewardAmount:     rate.Mul(decimal.NewFromInt(int64(impressions))),
		SettledAt:        uc.Clock.Now().UTC(),
	}
	if err := uc.Settlements.CreateSettlement(ctx, settlement); err != nil {
		return entities.Settlement{}, err
	}

	logger.Info("settlement computed",
		"event", "settlement_computed",
		"module", "finance/settlement-service",
		"layer", "application",
		"settlement_id", settlement.SettlementID,
		"publisher_id", publisherID,
		"impressions", impressions,
		"clicks", clicks,
		"reward", settlement.RewardAmount.String(),
	)
	return settlement, nil
}
