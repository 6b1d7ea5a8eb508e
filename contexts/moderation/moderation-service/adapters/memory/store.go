package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"adx402/contexts/moderation/moderation-service/domain/entities"
	domainerrors "adx402/contexts/moderation/moderation-service/domain/errors"
)

type adRecord struct {
	ad     entities.PendingAd
	status entities.ModerationStatus
	reason string
}

type Store struct {
	mu  sync.RWMutex
	ads map[string]adRecord
}

func NewStore(seedPending []entities.PendingAd) *Store {
	ads := make(map[string]adRecord, len(seedPending))
	for _, item := range seedPending {
		ads[item.AdID] = adRecord{ad: item, status: entities.ModerationStatusPending}
	}
	return &Store{ads: ads}
}

func (s *Store) ListPendingAds(_ context.Context, limit int) ([]entities.PendingAd, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.PendingAd, 0)
	for _, record := range s.ads {
		if record.status == entities.ModerationStatusPending {
			items = append(items, record.ad)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) SetModerationStatus(_ context.Context, adID string, status entities.ModerationStatus, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.ads[strings.TrimSpace(adID)]
	if !exists {
		return domainerrors.ErrAdNotFound
	}
	record.status = status
	record.reason = reason
	s.ads[record.ad.AdID] = record
	return nil
}

// Status reports an ad's current moderation state; test helper.
func (s *Store) Status(adID string) (entities.ModerationStatus, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.ads[adID]
	if !exists {
		return "", "", false
	}
	return record.status, record.reason, true
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// ScriptedOracle returns pre-seeded verdicts keyed by image URL; unknown
// URLs fail so tests can exercise per-ad error isolation.
type ScriptedOracle struct {
	mu       sync.Mutex
	verdicts map[string]entities.Verdict
}

func NewScriptedOracle() *ScriptedOracle {
	return &ScriptedOracle{verdicts: make(map[string]entities.Verdict)}
}

func (o *ScriptedOracle) Script(imageURL string, verdict entities.Verdict) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.verdicts[imageURL] = verdict
}

func (o *ScriptedOracle) Review(_ context.Context, imageURL string) (entities.Verdict, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	verdict, exists := o.verdicts[imageURL]
	if !exists {
		return entities.Verdict{}, domainerrors.ErrOracleUnavailable
	}
	return verdict, nil
}
