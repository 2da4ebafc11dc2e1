package components

import (
	"log/slog"

	"campaign-engine/internal/infra/cache"
	"campaign-engine/internal/infra/catalog"
	"campaign-engine/internal/pkg/config"
	"campaign-engine/internal/usecase/commands"
	"campaign-engine/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewCatalogClient,
		fx.Annotate(
			func(c *catalog.Client) *catalog.Client { return c },
			fx.As(new(queries.CampaignGateway)),
		),
		fx.Annotate(
			func(c *catalog.Client) *catalog.Client { return c },
			fx.As(new(queries.ProfileGateway)),
		),
		fx.Annotate(
			func(c *catalog.Client) *catalog.Client { return c },
			fx.As(new(commands.RedemptionGateway)),
		),
		fx.Annotate(
			NewSnapshotCache,
			fx.As(new(queries.SnapshotCache)),
		),
	),
)

func NewCatalogClient(cfg config.Config, logger *slog.Logger) *catalog.Client {
	return catalog.NewClient(cfg.Catalog, logger)
}

func NewSnapshotCache(rdb *redis.Client, cfg config.Config) *cache.SnapshotCache {
	return cache.NewSnapshotCache(rdb, cfg.Redis.SnapshotTTL)
}
