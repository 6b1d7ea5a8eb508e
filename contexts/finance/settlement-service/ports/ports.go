package ports

import (
	"context"
	"time"

	"adx402/contexts/finance/settlement-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type SettlementRepository interface {
	CreateSettlement(ctx context.Context, settlement entities.Settlement) error
	ListSettlements(ctx context.Context, publisherID string) ([]entities.Settlement, error)
}

// ActivityReader aggregates serving activity for the payout computation.
// Counts are read-only over immutable impression and click rows.
type ActivityReader interface {
	PublisherExists(ctx context.Context, publisherID string) (bool, error)
	CountImpressions(ctx context.Context, publisherID string, start time.Time, end time.Time) (int, error)
	CountClicks(ctx context.Context, publisherID string, start time.Time, end time.Time) (int, error)
}
