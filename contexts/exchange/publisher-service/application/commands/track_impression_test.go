package commands

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"adx402/contexts/exchange/publisher-service/adapters/memory"
	"adx402/contexts/exchange/publisher-service/domain/entities"
	domainerrors "adx402/contexts/exchange/publisher-service/domain/errors"
)

func newServingFixture(t *testing.T, balance int) (*memory.Store, TrackImpressionUseCase) {
	t.Helper()
	store := memory.NewStore([]entities.CatalogAd{{
		AdID:             "ad-1",
		BrandID:          "brand-1",
		ImageURL:         "https://cdn/ad-1",
		TargetURL:        "https://example.com",
		CreditBalance:    balance,
		ModerationStatus: entities.ModerationStatusApproved,
		CreatedAt:        time.Now().UTC(),
	}})
	if err := store.CreatePublisher(context.Background(), entities.Publisher{
		PublisherID:   "pub-1",
		WalletAddress: "0xpub",
		Domain:        "news.example",
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed publisher failed: %v", err)
	}
	if err := store.CreateAdSlot(context.Background(), entities.AdSlot{
		SlotID:      "slot-uuid-1",
		PublisherID: "pub-1",
		SlotName:    "sidebar",
		CreatedAt:   time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed slot failed: %v", err)
	}
	uc := TrackImpressionUseCase{
		Publishers:  store,
		Slots:       store,
		Catalog:     store,
		Impressions: store,
		Clock:       store,
		IDGenerator: store,
	}
	return store, uc
}

func TestTrackImpressionDebitsExactlyOne(t *testing.T) {
	store, uc := newServingFixture(t, 5)

	result, err := uc.Execute(context.Background(), TrackImpressionCommand{
		WalletAddress: "0xpub",
		SlotName:      "sidebar",
		AdID:          "ad-1",
	})
	if err != nil {
		t.Fatalf("track impression failed: %v", err)
	}
	if result.ImpressionID == "" {
		t.Fatalf("expected impression id")
	}
	if got := store.AdBalance("ad-1"); got != 4 {
		t.Fatalf("expected balance 4 after one impression, got %d", got)
	}
}

func TestTrackImpressionInsufficientCredits(t *testing.T) {
	store, uc := newServingFixture(t, 0)

	_, err := uc.Execute(context.Background(), TrackImpressionCommand{
		WalletAddress: "0xpub",
		SlotName:      "sidebar",
		AdID:          "ad-1",
	})
	if !errors.Is(err, domainerrors.ErrInsufficientCredits) {
		t.Fatalf("expected insufficient credits, got %v", err)
	}
	if got := store.AdBalance("ad-1"); got != 0 {
		t.Fatalf("balance must stay 0, got %d", got)
	}
}

func TestTrackImpressionUnknownSlot(t *testing.T) {
	_, uc := newServingFixture(t, 5)

	_, err := uc.Execute(context.Background(), TrackImpressionCommand{
		WalletAddress: "0xpub",
		SlotName:      "nope",
		AdID:          "ad-1",
	})
	if !errors.Is(err, domainerrors.ErrAdSlotNotFound) {
		t.Fatalf("expected slot not found, got %v", err)
	}
}

func TestTrackImpressionConcurrentNeverOverspends(t *testing.T) {
	const balance = 5
	const callers = 20

	store, uc := newServingFixture(t, balance)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), TrackImpressionCommand{
				WalletAddress: "0xpub",
				SlotName:      "sidebar",
				AdID:          "ad-1",
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else if !errors.Is(err, domainerrors.ErrInsufficientCredits) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successes != balance {
		t.Fatalf("expected exactly %d successful impressions, got %d", balance, successes)
	}
	if got := store.AdBalance("ad-1"); got != 0 {
		t.Fatalf("expected balance to drain to 0, got %d", got)
	}
}

func TestTrackClickUnknownImpression(t *testing.T) {
	store, _ := newServingFixture(t, 5)
	uc := TrackClickUseCase{Impressions: store, Clock: store, IDGenerator: store}

	_, err := uc.Execute(context.Background(), TrackClickCommand{ImpressionID: "missing"})
	if !errors.Is(err, domainerrors.ErrImpressionNotFound) {
		t.Fatalf("expected impression not found, got %v", err)
	}
	if store.ClickCount() != 0 {
		t.Fatalf("no click should be recorded")
	}
}

func TestTrackClickRecordsAgainstImpression(t *testing.T) {
	store, impressions := newServingFixture(t, 5)

	tracked, err := impressions.Execute(context.Background(), TrackImpressionCommand{
		WalletAddress: "0xpub",
		SlotName:      "sidebar",
		AdID:          "ad-1",
	})
	if err != nil {
		t.Fatalf("track impression failed: %v", err)
	}

	clicks := TrackClickUseCase{Impressions: store, Clock: store, IDGenerator: store}
	result, err := clicks.Execute(context.Background(), TrackClickCommand{ImpressionID: tracked.ImpressionID})
	if err != nil {
		t.Fatalf("track click failed: %v", err)
	}
	if result.ClickID == "" {
		t.Fatalf("expected click id")
	}
	if store.ClickCount() != 1 {
		t.Fatalf("expected one recorded click, got %d", store.ClickCount())
	}
}
