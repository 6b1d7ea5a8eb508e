package queries

import (
	"context"
	"log/slog"
	"strings"

	"adx402/contexts/exchange/brand-service/domain/entities"
	"adx402/contexts/exchange/brand-service/ports"
)

type ListAdsUseCase struct {
	Brands ports.BrandRepository
	Ads    ports.AdRepository
	Logger *slog.Logger
}

func (uc ListAdsUseCase) Execute(ctx context.Context, walletAddress string) ([]entities.Ad, error) {
	brand, err := uc.Brands.GetBrandByWallet(ctx, strings.TrimSpace(walletAddress))
	if err != nil {
		return nil, err
	}
	return uc.Ads.ListAdsByBrand(ctx, brand.BrandID)
}
