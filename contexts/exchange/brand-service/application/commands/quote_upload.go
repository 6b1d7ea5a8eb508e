package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "adx402/contexts/exchange/brand-service/application"
	domainerrors "adx402/contexts/exchange/brand-service/domain/errors"
	"adx402/contexts/exchange/brand-service/ports"

	"github.com/shopspring/decimal"
)

var (
	// Base fee for a returning brand; unknown wallets pay double as an
	// anti-abuse premium.
	uploadBasePrice    = decimal.RequireFromString("0.0005")
	uploadNewUserPrice = decimal.RequireFromString("0.001")
)

// QuoteUploadPriceUseCase is the price-quote function the payment gate calls
// before the upload handler runs. Side-effect free aside from the brand
// lookup.
type QuoteUploadPriceUseCase struct {
	Brands ports.BrandRepository
	Logger *slog.Logger
}

func (uc QuoteUploadPriceUseCase) Execute(ctx context.Context, walletAddress string) (ports.PriceQuote, error) {
	logger := application.ResolveLogger(uc.Logger)

	wallet := strings.TrimSpace(walletAddress)
	if wallet == "" {
		return ports.PriceQuote{}, domainerrors.ErrInvalidInput
	}

	price := uploadBasePrice
	if _, err := uc.Brands.GetBrandByWallet(ctx, wallet); err != nil {
		if !errors.Is(err, domainerrors.ErrBrandNotFound) {
			return ports.PriceQuote{}, err
		}
		price = uploadNewUserPrice
	}

	logger.Info("upload price quoted",
		"event", "upload_price_quoted",
		"module", "exchange/brand-service",
		"layer", "application",
		"wallet", wallet,
		"price", price.String(),
	)
	return ports.PriceQuote{
		Price:       price,
		Description: "Fee to post an ad as a brand",
	}, nil
}
