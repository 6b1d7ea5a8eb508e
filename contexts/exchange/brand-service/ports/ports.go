package ports

import (
	"context"
	"time"

	"adx402/contexts/exchange/brand-service/domain/entities"

	"github.com/shopspring/decimal"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type BrandRepository interface {
	CreateBrand(ctx context.Context, brand entities.Brand) error
	GetBrandByWallet(ctx context.Context, walletAddress string) (entities.Brand, error)
}

type AdRepository interface {
	CreateAd(ctx context.Context, ad entities.Ad) error
	GetAd(ctx context.Context, adID string) (entities.Ad, error)
	ListAdsByBrand(ctx context.Context, brandID string) ([]entities.Ad, error)
	// AddCredits applies a relative balance update so concurrent top-ups
	// never lose increments.
	AddCredits(ctx context.Context, adID string, amount int) error
}

// CreativeStore persists the uploaded creative bytes and returns a public
// URL. Upload failure must abort the ad creation before any store write.
type CreativeStore interface {
	Store(ctx context.Context, key string, contentType string, data []byte) (string, error)
}

// PriceQuote is the dynamic price returned to the payment gate for a
// mutating brand action.
type PriceQuote struct {
	Price       decimal.Decimal
	Description string
}
