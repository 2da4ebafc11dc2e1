package components

import (
	"campaign-engine/internal/handler"
	"campaign-engine/internal/handler/api"
	"campaign-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCampaignHandler,
		api.NewSessionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
