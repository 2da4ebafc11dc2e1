package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"campaign-engine/internal/handler/api"
	"campaign-engine/internal/handler/middleware"
	"campaign-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, campaignHandler *api.CampaignHandler, sessionHandler *api.SessionHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, campaignHandler, sessionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, campaignHandler *api.CampaignHandler, sessionHandler *api.SessionHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		campaigns := apiGroup.Group("/campaigns")
		campaigns.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(campaigns, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: campaignHandler.GetCampaign},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPut, Path: "/locale", Handler: campaignHandler.UpdateLocale},
		})

		sessions := apiGroup.Group("/sessions")
		sessions.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "/:id/refresh", Handler: sessionHandler.Refresh},
				{Method: http.MethodPut, Path: "/:id/variant", Handler: sessionHandler.SelectVariant},
				{Method: http.MethodPut, Path: "/:id/sub-variant", Handler: sessionHandler.SelectSubVariant},
				{Method: http.MethodPut, Path: "/:id/address", Handler: sessionHandler.SelectAddress},
				{Method: http.MethodPut, Path: "/:id/quantity", Handler: sessionHandler.SetQuantity},
				{Method: http.MethodPost, Path: "/:id/quantity/increase", Handler: sessionHandler.IncreaseQuantity},
				{Method: http.MethodPost, Path: "/:id/quantity/decrease", Handler: sessionHandler.DecreaseQuantity},
				{Method: http.MethodDelete, Path: "/:id/selection", Handler: sessionHandler.ClearSelection},
				{Method: http.MethodPost, Path: "/:id/redeem", Handler: sessionHandler.Redeem, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
