package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"adx402/contexts/finance/settlement-service/application/commands"
	"adx402/contexts/finance/settlement-service/application/queries"
	"adx402/contexts/finance/settlement-service/domain/entities"
	domainerrors "adx402/contexts/finance/settlement-service/domain/errors"
	httptransport "adx402/contexts/finance/settlement-service/transport/http"
)

type Handler struct {
	ComputeSettlement commands.ComputeSettlementUseCase
	ListSettlements   queries.ListSettlementsUseCase
	Logger            *slog.Logger
}

func (h Handler) ComputeSettlementHandler(ctx context.Context, req httptransport.ComputeSettlementRequest) (httptransport.SettlementDTO, error) {
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(req.StartPeriod))
	if err != nil {
		return httptransport.SettlementDTO{}, domainerrors.ErrInvalidPeriod
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(req.EndPeriod))
	if err != nil {
		return httptransport.SettlementDTO{}, domainerrors.ErrInvalidPeriod
	}

	settlement, err := h.ComputeSettlement.Execute(ctx, commands.ComputeSettlementCommand{
		PublisherID: req.PublisherID,
		StartPeriod: start,
		EndPeriod:   end,
	})
	if err != nil {
		return httptransport.SettlementDTO{}, err
	}
	return mapSettlement(settlement), nil
}

func (h Handler) ListSettlementsHandler(ctx context.Context, publisherID string) (httptransport.ListSettlementsResponse, error) {
	settlements, err := h.ListSettlements.Execute(ctx, publisherID)
	if err != nil {
		return httptransport.ListSettlementsResponse{}, err
	}
	items := make([]httptransport.SettlementDTO, 0, len(settlements))
	for _, settlement := range settlements {
		items = append(items, mapSettlement(settlement))
	}
	return httptransport.ListSettlementsResponse{Items: items}, nil
}

func mapSettlement(item entities.Settlement) httptransport.SettlementDTO {
	return httptransport.SettlementDTO{
		ID:               item.SettlementID,
		PublisherID:      item.PublisherID,
		StartPeriod:      item.StartPeriod.UTC().Format(time.RFC3339),
		EndPeriod:        item.EndPeriod.UTC().Format(time.RFC3339),
		ImpressionsCount: item.ImpressionsCount,
		ClicksCount:      item.ClicksCount,
		RewardAmount:     item.RewardAmount.String(),
		TxSignature:      item.TxSignature,
		SettledAt:        item.SettledAt.UTC().Format(time.RFC3339),
	}
}
