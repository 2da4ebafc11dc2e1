package components

import (
	"context"
	"log/slog"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/clock"
	"campaign-engine/internal/pkg/config"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/internal/usecase"
	"campaign-engine/internal/usecase/commands"
	"campaign-engine/internal/usecase/queries"
	"campaign-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(startSessionJanitor),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *text.Table {
		return text.NewTable(nil)
	},
	func(tbl *text.Table, cfg config.Config) *campaign.Engine {
		return campaign.NewEngine(tbl, cfg.Engine.DefaultConditionMessage)
	},
	shared.NewRegistry,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRedeemUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCampaignQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// startSessionJanitor evicts sessions idle past the configured TTL so
// abandoned browser tabs do not pin snapshots forever.
func startSessionJanitor(lc fx.Lifecycle, registry *shared.Registry, cfg config.Config, logger *slog.Logger) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Engine.SessionSweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-done:
						return
					case <-ticker.C:
						if evicted := registry.Sweep(cfg.Engine.SessionIdleTTL); evicted > 0 {
							logger.Info("Swept idle sessions", "evicted", evicted, "remaining", registry.Len())
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
