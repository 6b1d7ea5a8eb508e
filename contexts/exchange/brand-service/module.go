package brandservice

import (
	"log/slog"

	httpadapter "adx402/contexts/exchange/brand-service/adapters/http"
	"adx402/contexts/exchange/brand-service/adapters/memory"
	"adx402/contexts/exchange/brand-service/application/commands"
	"adx402/contexts/exchange/brand-service/application/queries"
	"adx402/contexts/exchange/brand-service/domain/entities"
	"adx402/contexts/exchange/brand-service/ports"
)

type Module struct {
	Handler   httpadapter.Handler
	Store     *memory.Store
	Creatives *memory.CreativeStore
}

type Dependencies struct {
	Brands      ports.BrandRepository
	Ads         ports.AdRepository
	Creatives   ports.CreativeStore
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	uploadAd := commands.UploadAdUseCase{
		Brands:      deps.Brands,
		Ads:         deps.Ads,
		Creatives:   deps.Creatives,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	creditAd := commands.CreditAdUseCase{
		Brands: deps.Brands,
		Ads:    deps.Ads,
		Logger: deps.Logger,
	}
	quoteUploadPrice := commands.QuoteUploadPriceUseCase{
		Brands: deps.Brands,
		Logger: deps.Logger,
	}
	listAds := queries.ListAdsUseCase{
		Brands: deps.Brands,
		Ads:    deps.Ads,
		Logger: deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			UploadAd:         uploadAd,
			CreditAd:         creditAd,
			QuoteUploadPrice: quoteUploadPrice,
			ListAds:          listAds,
			Logger:           deps.Logger,
		},
	}
}

func NewInMemoryModule(seedBrands []entities.Brand, logger *slog.Logger) Module {
	store := memory.NewStore(seedBrands)
	creatives := memory.NewCreativeStore()
	module := NewModule(Dependencies{
		Brands:      store,
		Ads:         store,
		Creatives:   creatives,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	module.Creatives = creatives
	return module
}
