package queries

import (
	"context"
	"testing"
	"time"

	"adx402/contexts/exchange/publisher-service/adapters/memory"
	"adx402/contexts/exchange/publisher-service/domain/entities"
)

func seedPublisherWithSlot(t *testing.T, store *memory.Store, tags []string, ratios []string) {
	t.Helper()
	if err := store.CreatePublisher(context.Background(), entities.Publisher{
		PublisherID:   "pub-1",
		WalletAddress: "0xpub",
		Domain:        "news.example",
		CreatedAt:     time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed publisher failed: %v", err)
	}
	if err := store.CreateAdSlot(context.Background(), entities.AdSlot{
		SlotID:       "slot-uuid-1",
		PublisherID:  "pub-1",
		SlotName:     "sidebar",
		Tags:         tags,
		AspectRatios: ratios,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed slot failed: %v", err)
	}
}

func servableAd(id string, balance int) entities.CatalogAd {
	return entities.CatalogAd{
		AdID:             id,
		BrandID:          "brand-1",
		ImageURL:         "https://cdn/" + id,
		TargetURL:        "https://example.com",
		CreditBalance:    balance,
		ModerationStatus: entities.ModerationStatusApproved,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestGetAdSkipsZeroBalanceAndUnapproved(t *testing.T) {
	broke := servableAd("ad-broke", 0)
	pending := servableAd("ad-pending", 10)
	pending.ModerationStatus = entities.ModerationStatusPending
	funded := servableAd("ad-funded", 3)

	store := memory.NewStore([]entities.CatalogAd{broke, pending, funded})
	seedPublisherWithSlot(t, store, nil, nil)

	uc := GetAdUseCase{Publishers: store, Slots: store, Catalog: store, Clock: store}
	result, err := uc.Execute(context.Background(), GetAdQuery{WalletAddress: "0xpub", SlotName: "sidebar"})
	if err != nil {
		t.Fatalf("get ad failed: %v", err)
	}
	if !result.Found || result.Ad.AdID != "ad-funded" {
		t.Fatalf("expected ad-funded, got found=%v ad=%s", result.Found, result.Ad.AdID)
	}
}

func TestGetAdRespectsTimeWindow(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	notYet := servableAd("ad-not-yet", 5)
	notYet.StartTime = &future
	expired := servableAd("ad-expired", 5)
	expired.EndTime = &past

	store := memory.NewStore([]entities.CatalogAd{notYet, expired})
	seedPublisherWithSlot(t, store, nil, nil)

	uc := GetAdUseCase{Publishers: store, Slots: store, Catalog: store, Clock: store}
	result, err := uc.Execute(context.Background(), GetAdQuery{WalletAddress: "0xpub", SlotName: "sidebar"})
	if err != nil {
		t.Fatalf("get ad failed: %v", err)
	}
	if result.Found {
		t.Fatalf("expected no eligible ad, got %s", result.Ad.AdID)
	}
}

func TestGetAdFiltersByAspectRatio(t *testing.T) {
	square := servableAd("ad-square", 5)
	square.AspectRatio = "1:1"
	wide := servableAd("ad-wide", 9)
	wide.AspectRatio = "16:9"

	store := memory.NewStore([]entities.CatalogAd{square, wide})
	seedPublisherWithSlot(t, store, nil, []string{"1:1"})

	uc := GetAdUseCase{Publishers: store, Slots: store, Catalog: store, Clock: store}
	result, err := uc.Execute(context.Background(), GetAdQuery{WalletAddress: "0xpub", SlotName: "sidebar"})
	if err != nil {
		t.Fatalf("get ad failed: %v", err)
	}
	if !result.Found || result.Ad.AdID != "ad-square" {
		t.Fatalf("expected ad-square despite lower balance, got found=%v ad=%s", result.Found, result.Ad.AdID)
	}
}

func TestGetAdTagIntersectionIsAnyOverlap(t *testing.T) {
	crypto := servableAd("ad-crypto", 2)
	crypto.Tags = []string{"crypto", "defi"}
	sports := servableAd("ad-sports", 8)
	sports.Tags = []string{"sports"}

	store := memory.NewStore([]entities.CatalogAd{crypto, sports})
	seedPublisherWithSlot(t, store, []string{"defi", "nft"}, nil)

	uc := GetAdUseCase{Publishers: store, Slots: store, Catalog: store, Clock: store}
	result, err := uc.Execute(context.Background(), GetAdQuery{WalletAddress: "0xpub", SlotName: "sidebar"})
	if err != nil {
		t.Fatalf("get ad failed: %v", err)
	}
	if !result.Found || result.Ad.AdID != "ad-crypto" {
		t.Fatalf("expected ad-crypto via tag overlap, got found=%v ad=%s", result.Found, result.Ad.AdID)
	}
}

func TestGetAdUntaggedSlotMatchesEverything(t *testing.T) {
	tagged := servableAd("ad-tagged", 4)
	tagged.Tags = []string{"crypto"}

	store := memory.NewStore([]entities.CatalogAd{tagged})
	seedPublisherWithSlot(t, store, nil, nil)

	uc := GetAdUseCase{Publishers: store, Slots: store, Catalog: store, Clock: store}
	result, err := uc.Execute(context.Background(), GetAdQuery{WalletAddress: "0xpub", SlotName: "sidebar"})
	if err != nil {
		t.Fatalf("get ad failed: %v", err)
	}
	if !result.Found {
		t.Fatalf("expected untargeted slot to match tagged ad")
	}
}

func TestGetAdRanksByBalanceThenAge(t *testing.T) {
	older := servableAd("ad-older", 7)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := servableAd("ad-newer", 7)
	newer.CreatedAt = time.Now().UTC()
	richest := servableAd("ad-richest", 20)

	store := memory.NewStore([]entities.CatalogAd{newer, older, richest})
	seedPublisherWithSlot(t, store, nil, nil)

	uc := GetAdUseCase{Publishers: store, Slots: store, Catalog: store, Clock: store}
	result, err := uc.Execute(context.Background(), GetAdQuery{WalletAddress: "0xpub", SlotName: "sidebar"})
	if err != nil {
		t.Fatalf("get ad failed: %v", err)
	}
	if result.Ad.AdID != "ad-richest" {
		t.Fatalf("expected highest balance first, got %s", result.Ad.AdID)
	}

	// Drain the richest ad to expose the tie-break.
	drained := richest
	drained.CreditBalance = 0
	store.SeedAd(drained)

	result, err = uc.Execute(context.Background(), GetAdQuery{WalletAddress: "0xpub", SlotName: "sidebar"})
	if err != nil {
		t.Fatalf("get ad failed: %v", err)
	}
	if result.Ad.AdID != "ad-older" {
		t.Fatalf("expected created_at tie-break to pick ad-older, got %s", result.Ad.AdID)
	}
}
