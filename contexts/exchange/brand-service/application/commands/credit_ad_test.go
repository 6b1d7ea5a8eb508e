package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"adx402/contexts/exchange/brand-service/adapters/memory"
	"adx402/contexts/exchange/brand-service/domain/entities"
	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"
)

func newCreditFixture(t *testing.T) (*memory.Store, CreditAdUseCase) {
	t.Helper()
	store := memory.NewStore([]entities.Brand{
		{BrandID: "brand-1", WalletAddress: "0xowner", Status: entities.BrandStatusActive, CreatedAt: time.Now().UTC()},
		{BrandID: "brand-2", WalletAddress: "0xother", Status: entities.BrandStatusActive, CreatedAt: time.Now().UTC()},
	})
	if err := store.CreateAd(context.Background(), entities.Ad{
		AdID:             "ad-1",
		BrandID:          "brand-1",
		ImageURL:         "https://cdn/ad-1",
		TargetURL:        "https://example.com",
		ModerationStatus: entities.ModerationStatusApproved,
		CreatedAt:        time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed ad failed: %v", err)
	}
	return store, CreditAdUseCase{Brands: store, Ads: store}
}

func TestCreditAdIncrementsBalance(t *testing.T) {
	_, uc := newCreditFixture(t)

	result, err := uc.Execute(context.Background(), CreditAdCommand{
		WalletAddress: "0xowner",
		AdID:          "ad-1",
		Amount:        25,
	})
	if err != nil {
		t.Fatalf("credit failed: %v", err)
	}
	if result.NewBalance != 25 {
		t.Fatalf("expected balance 25, got %d", result.NewBalance)
	}

	result, err = uc.Execute(context.Background(), CreditAdCommand{
		WalletAddress: "0xowner",
		AdID:          "ad-1",
		Amount:        5,
	})
	if err != nil {
		t.Fatalf("second credit failed: %v", err)
	}
	if result.NewBalance != 30 {
		t.Fatalf("credits must accumulate, got %d", result.NewBalance)
	}
}

func TestCreditAdRejectsNonPositiveAmount(t *testing.T) {
	_, uc := newCreditFixture(t)

	_, err := uc.Execute(context.Background(), CreditAdCommand{
		WalletAddress: "0xowner",
		AdID:          "ad-1",
		Amount:        0,
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredit) {
		t.Fatalf("expected invalid credit, got %v", err)
	}
}

func TestCreditAdRejectsForeignAd(t *testing.T) {
	_, uc := newCreditFixture(t)

	_, err := uc.Execute(context.Background(), CreditAdCommand{
		WalletAddress: "0xother",
		AdID:          "ad-1",
		Amount:        10,
	})
	if !errors.Is(err, domainerrors.ErrAdNotOwned) {
		t.Fatalf("expected ad not owned, got %v", err)
	}
}
