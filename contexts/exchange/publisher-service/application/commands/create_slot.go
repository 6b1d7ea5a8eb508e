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

type CreateAdSlotCommand struct {
	WalletAddress string
	SlotName      string
	Tags          []string
	AspectRatios  []string
}

type CreateAdSlotUseCase struct {
	Publishers  ports.PublisherRepository
	Slots       ports.SlotRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateAdSlotUseCase) Execute(ctx context.Context, cmd CreateAdSlotCommand) (entities.AdSlot, error) {
	logger := application.ResolveLogger(uc.Logger)

	publisher, err := uc.Publishers.GetPublisherByWallet(ctx, strings.TrimSpace(cmd.WalletAddress))
	if err != nil {
		return entities.AdSlot{}, err
	}

	slotID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.AdSlot{}, err
	}
	slot := entities.AdSlot{
		SlotID:       slotID,
		PublisherID:  publisher.PublisherID,
		SlotName:     strings.TrimSpace(cmd.SlotName),
		Tags:         append([]string(nil), cmd.Tags...),
		AspectRatios: append([]string(nil), cmd.AspectRatios...),
		CreatedAt:    uc.Clock.Now().UTC(),
	}
	if !slot.ValidateBasics() {
		return entities.AdSlot{}, domainerrors.ErrInvalidInput
	}

	// Duplicate and limit checks happen inside the repository transaction.
	if err := uc.Slots.CreateAdSlot(ctx, slot); err != nil {
		return entities.AdSlot{}, err
	}

	logger.Info("ad slot created",
		"event", "ad_slot_created",
		"module", "exchange/publisher-service",
		"layer", "application",
		"publisher_id", publisher.PublisherID,
		"slot_name", slot.SlotName,
	)
	return slot, nil
}
