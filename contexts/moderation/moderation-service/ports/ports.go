package ports

import (
	"context"
	"time"

	"adx402/contexts/moderation/moderation-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type PendingAdRepository interface {
	ListPendingAds(ctx context.Context, limit int) ([]entities.PendingAd, error)
	SetModerationStatus(ctx context.Context, adID string, status entities.ModerationStatus, reason string) error
}

// ModerationOracle reviews a creative by URL. Implementations call an
// external safe-search service; the memory adapter scripts verdicts for
// tests.
type ModerationOracle interface {
	Review(ctx context.Context, imageURL string) (entities.Verdict, error)
}
