package commands

import (
	"context"
	"log/slog"
	"strings"

	application "adx402/contexts/exchange/brand-service/application"
	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"
	"adx402/contexts/exchange/brand-service/ports"
)

type CreditAdCommand struct {
	WalletAddress string
	AdID          string
	Amount        int
}

type CreditAdResult struct {
	AdID       string
	NewBalance int
}

// CreditAdUseCase funds an ad with billable impressions. A freshly uploaded
// ad stays at balance 0 until its brand tops it up.
type CreditAdUseCase struct {
	Brands ports.BrandRepository
	Ads    ports.AdRepository
	Logger *slog.Logger
}

func (uc CreditAdUseCase) Execute(ctx context.Context, cmd CreditAdCommand) (CreditAdResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.Amount <= 0 {
		return CreditAdResult{}, domainerrors.ErrInvalidCredit
	}
	brand, err := uc.Brands.GetBrandByWallet(ctx, strings.TrimSpace(cmd.WalletAddress))
	if err != nil {
		return CreditAdResult{}, err
	}
	ad, err := uc.Ads.GetAd(ctx, strings.TrimSpace(cmd.AdID))
	if err != nil {
		return CreditAdResult{}, err
	}
	if ad.BrandID != brand.BrandID {
		return CreditAdResult{}, domainerrors.ErrAdNotOwned
	}

	if err := uc.Ads.AddCredits(ctx, ad.AdID, cmd.Amount); err != nil {
		return CreditAdResult{}, err
	}
	funded, err := uc.Ads.GetAd(ctx, ad.AdID)
	if err != nil {
		return CreditAdResult{}, err
	}

	logger.Info("ad credited",
		"event", "ad_credited",
		"module", "exchange/brand-service",
		"layer", "application",
		"ad_id", ad.AdID,
		"brand_id", brand.BrandID,
		"amount", cmd.Amount,
	)
	return CreditAdResult{AdID: ad.AdID, NewBalance: funded.CreditBalance}, nil
}
