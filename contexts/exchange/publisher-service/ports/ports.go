package ports

import (
	"context"
	"time"

	"adx402/contexts/exchange/publisher-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type PublisherRepository interface {
	CreatePublisher(ctx context.Context, publisher entities.Publisher) error
	GetPublisherByWallet(ctx context.Context, walletAddress string) (entities.Publisher, error)
	GetPublisherByDomain(ctx context.Context, domain string) (entities.Publisher, error)
}

type SlotRepository interface {
	// CreateAdSlot performs the duplicate and slot-limit checks and the
	// insert as one atomic unit so two concurrent creates for the same
	// publisher cannot both pass the limit check.
	CreateAdSlot(ctx context.Context, slot entities.AdSlot) error
	GetAdSlot(ctx context.Context, publisherID string, slotName string) (entities.AdSlot, error)
	ListAdSlots(ctx context.Context, publisherID string) ([]entities.AdSlot, error)
}

// SlotTargeting carries the slot's declared constraints into the catalog
// query; empty sets mean unconstrained.
type SlotTargeting struct {
	Tags         []string
	AspectRatios []string
}

type AdCatalog interface {
	// FindEligibleAd returns the servable ad with the highest credit
	// balance matching the targeting constraints, oldest-first on ties.
	// found is false when no ad is eligible.
	FindEligibleAd(ctx context.Context, targeting SlotTargeting, now time.Time) (ad entities.CatalogAd, found bool, err error)
	GetAd(ctx context.Context, adID string) (entities.CatalogAd, error)
}

type ImpressionRepository interface {
	// RecordImpression inserts the impression and debits one credit from
	// the ad in a single transaction. The debit is a guarded relative
	// update; when the balance is already exhausted the whole transaction
	// fails with ErrInsufficientCredits and nothing is written.
	RecordImpression(ctx context.Context, impression entities.Impression) (string, error)
	GetImpression(ctx context.Context, impressionID string) (entities.Impression, error)
	RecordClick(ctx context.Context, click entities.Click) (string, error)
}
