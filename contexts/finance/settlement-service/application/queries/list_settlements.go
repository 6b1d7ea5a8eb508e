package queries

import (
	"context"
	"log/slog"
	"strings"

	"adx402/contexts/finance/settlement-service/domain/entities"
	domainerrors "adx402/contexts/finance/settlement-service/domain/errors"
	"adx402/contexts/finance/settlement-service/ports"
)

type ListSettlementsUseCase struct {
	Settlements ports.SettlementRepository
	Logger      *slog.Logger
}

func (uc ListSettlementsUseCase) Execute(ctx context.Context, publisherID string) ([]entities.Settlement, error) {
	trimmed := strings.TrimSpace(publisherID)
	if trimmed == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return uc.Settlements.ListSettlements(ctx, trimmed)
}
