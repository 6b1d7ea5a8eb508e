package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "adx402/contexts/exchange/publisher-service/application"
	"adx402/contexts/exchange/publisher-service/domain/entities"
	domainerrors "adx402/contexts/exchange/publisher-service/domain/errors"
	"adx402/contexts/exchange/publisher-service/ports"
)

type CreatePublisherCommand struct {
	WalletAddress string
	Domain        string
	Tags          []string
}

type CreatePublisherUseCase struct {
	Publishers  ports.PublisherRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreatePublisherUseCase) Execute(ctx context.Context, cmd CreatePublisherCommand) (entities.Publisher, error) {
	logger := application.ResolveLogger(uc.Logger)

	publisher := entities.Publisher{
		WalletAddress: strings.TrimSpace(cmd.WalletAddress),
		Domain:        strings.TrimSpace(cmd.Domain),
		Tags:          append([]string(nil), cmd.Tags...),
	}
	if !publisher.ValidateBasics() {
		return entities.Publisher{}, domainerrors.ErrInvalidInput
	}

	// Two independent probes so the caller learns which field collided.
	if _, err := uc.Publishers.GetPublisherByWallet(ctx, publisher.WalletAddress); err == nil {
		return entities.Publisher{}, domainerrors.ErrPublisherAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrPublisherNotFound) {
		return entities.Publisher{}, err
	}
	if _, err := uc.Publishers.GetPublisherByDomain(ctx, publisher.Domain); err == nil {
		return entities.Publisher{}, domainerrors.ErrDomainAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrPublisherNotFound) {
		return entities.Publisher{}, err
	}

	publisherID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Publisher{}, err
	}
	publisher.PublisherID = publisherID
	publisher.IsVerified = false
	publisher.TrafficScore = 0
	publisher.CreatedAt = uc.Clock.Now().UTC()

	if err := uc.Publishers.CreatePublisher(ctx, publisher); err != nil {
		return entities.Publisher{}, err
	}

	logger.Info("publisher created",
		"event", "publisher_created",
		"module", "exchange/publisher-service",
		"layer", "application",
		"publisher_id", publisher.PublisherID,
		"domain", publisher.Domain,
	)
	return publisher, nil
}
