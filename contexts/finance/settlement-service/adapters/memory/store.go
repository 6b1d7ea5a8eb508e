package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"adx402/contexts/finance/settlement-service/domain/entities"

	"github.com/google/uuid"
)

type impressionRecord struct {
	PublisherID string
	CreatedAt   time.Time
}

type clickRecord struct {
	PublisherID string
	CreatedAt   time.Time
}

type Store struct {
	mu sync.RWMutex

	publishers  map[string]struct{}
	impressions []impressionRecord
	clicks      []clickRecord
	settlements map[string]entities.Settlement
}

func NewStore() *Store {
	return &Store{
		publishers:  make(map[string]struct{}),
		settlements: make(map[string]entities.Settlement),
	}
}

func (s *Store) CreateSettlement(_ context.Context, settlement entities.Settlement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settlements[settlement.SettlementID] = settlement
	return nil
}

func (s *Store) ListSettlements(_ context.Context, publisherID string) ([]entities.Settlement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Settlement, 0)
	for _, item := range s.settlements {
		if item.PublisherID == publisherID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].SettledAt.Before(items[j].SettledAt)
	})
	return items, nil
}

func (s *Store) PublisherExists(_ context.Context, publisherID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.publishers[publisherID]
	return exists, nil
}

func (s *Store) CountImpressions(_ context.Context, publisherID string, start time.Time, end time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, record := range s.impressions {
		if record.PublisherID == publisherID && inPeriod(record.CreatedAt, start, end) {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountClicks(_ context.Context, publisherID string, start time.Time, end time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, record := range s.clicks {
		if record.PublisherID == publisherID && inPeriod(record.CreatedAt, start, end) {
			count++
		}
	}
	return count, nil
}

func inPeriod(at time.Time, start time.Time, end time.Time) bool {
	return !at.Before(start) && !at.After(end)
}

// SeedPublisher registers a publisher id for existence checks; test helper.
func (s *Store) SeedPublisher(publisherID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishers[publisherID] = struct{}{}
}

// SeedImpression records one impression timestamp; test helper.
func (s *Store) SeedImpression(publisherID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.impressions = append(s.impressions, impressionRecord{PublisherID: publisherID, CreatedAt: at.UTC()})
}

// SeedClick records one click timestamp; test helper.
func (s *Store) SeedClick(publisherID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clicks = append(s.clicks, clickRecord{PublisherID: publisherID, CreatedAt: at.UTC()})
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
