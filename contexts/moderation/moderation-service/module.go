package moderationservice

import (
	"log/slog"

	"adx402/contexts/moderation/moderation-service/adapters/memory"
	"adx402/contexts/moderation/moderation-service/application/commands"
	"adx402/contexts/moderation/moderation-service/application/workers"
	"adx402/contexts/moderation/moderation-service/domain/entities"
	"adx402/contexts/moderation/moderation-service/ports"
)

type Module struct {
	Sweep  *workers.PendingSweepJob
	Store  *memory.Store
	Oracle *memory.ScriptedOracle
}

type Dependencies struct {
	Ads       ports.PendingAdRepository
	Oracle    ports.ModerationOracle
	BatchSize int
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	review := commands.ReviewPendingUseCase{
		Ads:    deps.Ads,
		Oracle: deps.Oracle,
		Logger: deps.Logger,
	}
	return Module{
		Sweep: &workers.PendingSweepJob{
			Review:    review,
			BatchSize: deps.BatchSize,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(seedPending []entities.PendingAd, logger *slog.Logger) Module {
	store := memory.NewStore(seedPending)
	oracle := memory.NewScriptedOracle()
	module := NewModule(Dependencies{
		Ads:    store,
		Oracle: oracle,
		Logger: logger,
	})
	module.Store = store
	module.Oracle = oracle
	return module
}
