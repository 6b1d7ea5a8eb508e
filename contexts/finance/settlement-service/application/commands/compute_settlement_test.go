package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"adx402/contexts/finance/settlement-service/adapters/memory"
	domainerrors "adx402/contexts/finance/settlement-service/domain/errors"

	"github.com/shopspring/decimal"
)

func newSettlementFixture() (*memory.Store, ComputeSettlementUseCase) {
	store := memory.NewStore()
	store.SeedPublisher("pub-1")
	uc := ComputeSettlementUseCase{
		Settlements: store,
		Activity:    store,
		Clock:       store,
		IDGenerator: store,
	}
	return store, uc
}

func TestComputeSettlementAggregatesPeriod(t *testing.T) {
	store, uc := newSettlementFixture()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		store.SeedImpression("pub-1", base.Add(time.Duration(i)*time.Hour))
	}
	store.SeedClick("pub-1", base.Add(time.Hour))
	// Outside the period; must not count.
	store.SeedImpression("pub-1", base.AddDate(0, 1, 0))

	settlement, err := uc.Execute(context.Background(), ComputeSettlementCommand{
		PublisherID: "pub-1",
		StartPeriod: base,
		EndPeriod:   base.AddDate(0, 0, 7),
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if settlement.ImpressionsCount != 4 {
		t.Fatalf("expected 4 impressions in period, got %d", settlement.ImpressionsCount)
	}
	if settlement.ClicksCount != 1 {
		t.Fatalf("expected 1 click in period, got %d", settlement.ClicksCount)
	}
	expected := decimal.RequireFromString("0.0001").Mul(decimal.NewFromInt(4))
	if !settlement.RewardAmount.Equal(expected) {
		t.Fatalf("expected reward %s, got %s", expected, settlement.RewardAmount)
	}
}

func TestComputeSettlementCustomRate(t *testing.T) {
	store, uc := newSettlementFixture()
	uc.ImpressionRate = decimal.RequireFromString("0.5")

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	store.SeedImpression("pub-1", base)
	store.SeedImpression("pub-1", base.Add(time.Minute))

	settlement, err := uc.Execute(context.Background(), ComputeSettlementCommand{
		PublisherID: "pub-1",
		StartPeriod: base,
		EndPeriod:   base.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if !settlement.RewardAmount.Equal(decimal.RequireFromString("1")) {
		t.Fatalf("expected reward 1, got %s", settlement.RewardAmount)
	}
}

func TestComputeSettlementUnknownPublisher(t *testing.T) {
	_, uc := newSettlementFixture()

	_, err := uc.Execute(context.Background(), ComputeSettlementCommand{
		PublisherID: "pub-missing",
		StartPeriod: time.Now().UTC().Add(-time.Hour),
		EndPeriod:   time.Now().UTC(),
	})
	if !errors.Is(err, domainerrors.ErrPublisherNotFound) {
		t.Fatalf("expected publisher not found, got %v", err)
	}
}

func TestComputeSettlementRejectsInvertedPeriod(t *testing.T) {
	_, uc := newSettlementFixture()

	now := time.Now().UTC()
	_, err := uc.Execute(context.Background(), ComputeSettlementCommand{
		PublisherID: "pub-1",
		StartPeriod: now,
		EndPeriod:   now.Add(-time.Hour),
	})
	if !errors.Is(err, domainerrors.ErrInvalidPeriod) {
		t.Fatalf("expected invalid period, got %v", err)
	}
}

func TestListSettlementsReturnsStoredRecords(t *testing.T) {
	store, uc := newSettlementFixture()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	store.SeedImpression("pub-1", base)
	if _, err := uc.Execute(context.Background(), ComputeSettlementCommand{
		PublisherID: "pub-1",
		StartPeriod: base,
		EndPeriod:   base.Add(time.Hour),
	}); err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	settlements, err := store.ListSettlements(context.Background(), "pub-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(settlements) != 1 {
		t.Fatalf("expected one settlement, got %d", len(settlements))
	}
}
