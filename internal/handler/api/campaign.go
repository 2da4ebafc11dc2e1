package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "campaign-engine/internal/handler/dto/request"
	resdto "campaign-engine/internal/handler/dto/response"
	"campaign-engine/internal/handler/httperr"
	"campaign-engine/internal/handler/middleware"
	"campaign-engine/internal/pkg/config"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/internal/usecase/queries"
	"campaign-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignQueries queries.CampaignQueries
	registry        *shared.Registry
	textTable       *text.Table
	defaultLocale   string
}

func NewCampaignHandler(
	campaignQueries queries.CampaignQueries,
	registry *shared.Registry,
	textTable *text.Table,
	cfg config.Config,
) *CampaignHandler {
	return &CampaignHandler{
		campaignQueries: campaignQueries,
		registry:        registry,
		textTable:       textTable,
		defaultLocale:   cfg.Engine.DefaultLocale,
	}
}

// @Summary Get campaign detail
// @Description Fetch a campaign, open a selection session and return the readiness verdict plus UI action
// @Tags campaigns
// @Produce json
// @Param id path int true "Campaign ID"
// @Param locale query string false "Locale code"
// @Success 200 {object} response.DetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "", "Invalid campaign ID format", nil)
		return
	}

	locale := c.Query("locale")
	if locale == "" {
		locale = h.defaultLocale
	}

	viewer := queries.Viewer{
		LoginType: middleware.GetLoginType(c),
		Token:     middleware.GetAccessToken(c),
	}

	view, err := h.campaignQueries.Detail(c.Request.Context(), id, locale, viewer)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCampaignNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "", "Campaign not found", nil)
		case errors.Is(err, queries.ErrCatalogFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "", "Campaign catalog is unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "", "Internal server error", nil)
		}
		return
	}

	sess := h.registry.Open(view.Snapshot, locale, h.textTable)
	c.JSON(http.StatusOK, resdto.FromDetailView(sess.ID(), view, h.textTable))
}

// @Summary Update locale
// @Description Swap the active text table to another locale without restarting the engine
// @Tags locale
// @Accept json
// @Produce json
// @Param request body request.UpdateLocaleRequest true "Locale request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /locale [put]
func (h *CampaignHandler) UpdateLocale(c *gin.Context) {
	var req reqdto.UpdateLocaleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "", "Invalid request format", nil)
		return
	}

	labels, err := h.campaignQueries.Labels(c.Request.Context(), req.GetLocale())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, "", "Label catalog is unavailable", nil)
		return
	}

	h.textTable.Replace(labels)
	c.Status(http.StatusNoContent)
}
