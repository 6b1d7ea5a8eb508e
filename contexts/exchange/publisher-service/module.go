package publisherservice

import (
	"log/slog"

	httpadapter "adx402/contexts/exchange/publisher-service/adapters/http"
	"adx402/contexts/exchange/publisher-service/adapters/memory"
	"adx402/contexts/exchange/publisher-service/application/commands"
	"adx402/contexts/exchange/publisher-service/application/queries"
	"adx402/contexts/exchange/publisher-service/domain/entities"
	"adx402/contexts/exchange/publisher-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Publishers  ports.PublisherRepository
	Slots       ports.SlotRepository
	Catalog     ports.AdCatalog
	Impressions ports.ImpressionRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createPublisher := commands.CreatePublisherUseCase{
		Publishers:  deps.Publishers,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	createAdSlot := commands.CreateAdSlotUseCase{
		Publishers:  deps.Publishers,
		Slots:       deps.Slots,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	trackImpression := commands.TrackImpressionUseCase{
		Publishers:  deps.Publishers,
		Slots:       deps.Slots,
		Catalog:     deps.Catalog,
		Impressions: deps.Impressions,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	trackClick := commands.TrackClickUseCase{
		Impressions: deps.Impressions,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}

	getAd := queries.GetAdUseCase{
		Publishers: deps.Publishers,
		Slots:      deps.Slots,
		Catalog:    deps.Catalog,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	getPublisher := queries.GetPublisherUseCase{
		Publishers: deps.Publishers,
		Logger:     deps.Logger,
	}
	listAdSlots := queries.ListAdSlotsUseCase{
		Publishers: deps.Publishers,
		Slots:      deps.Slots,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreatePublisher: createPublisher,
			CreateAdSlot:    createAdSlot,
			TrackImpression: trackImpression,
			TrackClick:      trackClick,
			GetAd:           getAd,
			GetPublisher:    getPublisher,
			ListAdSlots:     listAdSlots,
			Logger:          deps.Logger,
		},
	}
}

func NewInMemoryModule(seedAds []entities.CatalogAd, logger *slog.Logger) Module {
	store := memory.NewStore(seedAds)
	module := NewModule(Dependencies{
		Publishers:  store,
		Slots:       store,
		Catalog:     store,
		Impressions: store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
