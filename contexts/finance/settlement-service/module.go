package settlementservice

import (
	"log/slog"

	httpadapter "adx402/contexts/finance/settlement-service/adapters/http"
	"adx402/contexts/finance/settlement-service/adapters/memory"
	"adx402/contexts/finance/settlement-service/application/commands"
	"adx402/contexts/finance/settlement-service/application/queries"
	"adx402/contexts/finance/settlement-service/ports"

	"github.com/shopspring/decimal"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Settlements    ports.SettlementRepository
	Activity       ports.ActivityReader
	ImpressionRate decimal.Decimal
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	computeSettlement := commands.ComputeSettlementUseCase{
		Settlements:    deps.Settlements,
		Activity:       deps.Activity,
		ImpressionRate: deps.ImpressionRate,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		Logger:         deps.Logger,
	}
	listSettlements := queries.ListSettlementsUseCase{
		Settlements: deps.Settlements,
		Logger:      deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			ComputeSettlement: computeSettlement,
			ListSettlements:   listSettlements,
			Logger:            deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Settlements: store,
		Activity:    store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
