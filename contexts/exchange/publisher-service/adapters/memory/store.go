package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"adx402/contexts/exchange/publisher-service/domain/entities"
	domainerrors "adx402/contexts/exchange/publisher-service/domain/errors"
	"adx402/contexts/exchange/publisher-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	publishers  map[string]entities.Publisher
	slots       map[string]entities.AdSlot
	ads         map[string]entities.CatalogAd
	impressions map[string]entities.Impression
	clicks      map[string]entities.Click
}

func NewStore(seedAds []entities.CatalogAd) *Store {
	ads := make(map[string]entities.CatalogAd, len(seedAds))
	for _, item := range seedAds {
		ads[item.AdID] = item
	}
	return &Store{
		publishers:  make(map[string]entities.Publisher),
		slots:       make(map[string]entities.AdSlot),
		ads:         ads,
		impressions: make(map[string]entities.Impression),
		clicks:      make(map[string]entities.Click),
	}
}

func (s *Store) CreatePublisher(_ context.Context, publisher entities.Publisher) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.publishers {
		if existing.WalletAddress == publisher.WalletAddress {
			return domainerrors.ErrPublisherAlreadyExists
		}
		if existing.Domain == publisher.Domain {
			return domainerrors.ErrDomainAlreadyExists
		}
	}
	s.publishers[publisher.PublisherID] = publisher
	return nil
}

func (s *Store) GetPublisherByWallet(_ context.Context, walletAddress string) (entities.Publisher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.publishers {
		if item.WalletAddress == strings.TrimSpace(walletAddress) {
			return item, nil
		}
	}
	return entities.Publisher{}, domainerrors.ErrPublisherNotFound
}

func (s *Store) GetPublisherByDomain(_ context.Context, domain string) (entities.Publisher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.publishers {
		if item.Domain == strings.TrimSpace(domain) {
			return item, nil
		}
	}
	return entities.Publisher{}, domainerrors.ErrPublisherNotFound
}

func (s *Store) CreateAdSlot(_ context.Context, slot entities.AdSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.publishers[slot.PublisherID]; !exists {
		return domainerrors.ErrPublisherNotFound
	}
	owned := 0
	for _, existing := range s.slots {
		if existing.PublisherID != slot.PublisherID {
			continue
		}
		if existing.SlotName == slot.SlotName {
			return domainerrors.ErrAdSlotAlreadyExists
		}
		owned++
	}
	if owned >= entities.MaxAdSlotsPerPublisher {
		return domainerrors.ErrAdSlotLimitExceeded
	}
	s.slots[slot.SlotID] = slot
	return nil
}

func (s *Store) GetAdSlot(_ context.Context, publisherID string, slotName string) (entities.AdSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.slots {
		if item.PublisherID == publisherID && item.SlotName == strings.TrimSpace(slotName) {
			return item, nil
		}
	}
	return entities.AdSlot{}, domainerrors.ErrAdSlotNotFound
}

func (s *Store) ListAdSlots(_ context.Context, publisherID string) ([]entities.AdSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AdSlot, 0)
	for _, item := range s.slots {
		if item.PublisherID == publisherID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) FindEligibleAd(_ context.Context, targeting ports.SlotTargeting, now time.Time) (entities.CatalogAd, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot := entities.AdSlot{
		Tags:         targeting.Tags,
		AspectRatios: targeting.AspectRatios,
	}
	candidates := make([]entities.CatalogAd, 0)
	for _, ad := range s.ads {
		if ad.Servable(now) && ad.MatchesSlot(slot) {
			candidates = append(candidates, ad)
		}
	}
	if len(candidates) == 0 {
		return entities.CatalogAd{}, false, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].CreditBalance != candidates[j].CreditBalance {
			return candidates[i].CreditBalance > candidates[j].CreditBalance
		}
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	return candidates[0], true, nil
}

func (s *Store) GetAd(_ context.Context, adID string) (entities.CatalogAd, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.ads[strings.TrimSpace(adID)]
	if !exists {
		return entities.CatalogAd{}, domainerrors.ErrAdNotFound
	}
	return item, nil
}

func (s *Store) RecordImpression(_ context.Context, impression entities.Impression) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ad, exists := s.ads[impression.AdID]
	if !exists {
		return "", domainerrors.ErrAdNotFound
	}
	// Guarded debit: insert and decrement stand or fall together.
	if ad.CreditBalance <= 0 {
		return "", domainerrors.ErrInsufficientCredits
	}
	ad.CreditBalance--
	s.ads[impression.AdID] = ad

	if impression.ImpressionID == "" {
		impression.ImpressionID = uuid.NewString()
	}
	s.impressions[impression.ImpressionID] = impression
	return impression.ImpressionID, nil
}

func (s *Store) GetImpression(_ context.Context, impressionID string) (entities.Impression, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.impressions[strings.TrimSpace(impressionID)]
	if !exists {
		return entities.Impression{}, domainerrors.ErrImpressionNotFound
	}
	return item, nil
}

func (s *Store) RecordClick(_ context.Context, click entities.Click) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.impressions[click.ImpressionID]; !exists {
		return "", domainerrors.ErrImpressionNotFound
	}
	if click.ClickID == "" {
		click.ClickID = uuid.NewString()
	}
	s.clicks[click.ClickID] = click
	return click.ClickID, nil
}

// SeedAd inserts or replaces a catalog ad; test setup helper.
func (s *Store) SeedAd(ad entities.CatalogAd) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads[ad.AdID] = ad
}

// AdBalance reads the current credit balance; test assertion helper.
func (s *Store) AdBalance(adID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ads[adID].CreditBalance
}

// ClickCount reports recorded clicks; test assertion helper.
func (s *Store) ClickCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clicks)
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
