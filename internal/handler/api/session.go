package api

import (
	"errors"
	"net/http"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/domain/selection"
	reqdto "campaign-engine/internal/handler/dto/request"
	resdto "campaign-engine/internal/handler/dto/response"
	"campaign-engine/internal/handler/httperr"
	"campaign-engine/internal/handler/middleware"
	"campaign-engine/internal/pkg/errs"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/internal/usecase/commands"
	"campaign-engine/internal/usecase/queries"
	"campaign-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnknownOption  = errs.New("option not found on campaign")
	errSessionUnknown = errs.New("session not found or expired")
)

type SessionHandler struct {
	registry        *shared.Registry
	campaignQueries queries.CampaignQueries
	redeemCommands  commands.RedeemCommands
	textTable       *text.Table
}

func NewSessionHandler(
	registry *shared.Registry,
	campaignQueries queries.CampaignQueries,
	redeemCommands commands.RedeemCommands,
	textTable *text.Table,
) *SessionHandler {
	return &SessionHandler{
		registry:        registry,
		campaignQueries: campaignQueries,
		redeemCommands:  redeemCommands,
		textTable:       textTable,
	}
}

// @Summary Refresh session snapshot
// @Description Refetch the campaign and reset the selection; stale selections never survive a reload
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.DetailResponse
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/refresh [post]
func (h *SessionHandler) Refresh(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	viewer := queries.Viewer{
		LoginType: middleware.GetLoginType(c),
		Token:     middleware.GetAccessToken(c),
	}

	view, err := h.campaignQueries.FreshDetail(c.Request.Context(), sess.Snapshot().ID, sess.Locale(), viewer)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCampaignNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "", "Campaign not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "", "Campaign catalog is unavailable", nil)
		}
		return
	}

	sess.Replace(view.Snapshot)
	c.JSON(http.StatusOK, resdto.FromDetailView(sess.ID(), view, h.textTable))
}

// @Summary Select variant
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.SelectVariantRequest true "Variant selection"
// @Success 200 {object} response.SelectionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /sessions/{id}/variant [put]
func (h *SessionHandler) SelectVariant(c *gin.Context) {
	var req reqdto.SelectVariantRequest
	if !h.bind(c, &req) {
		return
	}

	h.applySelection(c, func(snap *campaign.Snapshot, sel *selection.State) error {
		variant, ok := snap.VariantByID(req.VariantID)
		if !ok {
			return errUnknownOption
		}
		return sel.SelectVariant(variant)
	})
}

// @Summary Select sub-variant
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.SelectSubVariantRequest true "Sub-variant selection"
// @Success 200 {object} response.SelectionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /sessions/{id}/sub-variant [put]
func (h *SessionHandler) SelectSubVariant(c *gin.Context) {
	var req reqdto.SelectSubVariantRequest
	if !h.bind(c, &req) {
		return
	}

	h.applySelection(c, func(snap *campaign.Snapshot, sel *selection.State) error {
		variant := sel.Variant()
		if variant == nil {
			// No variant yet; let the state machine produce its rejection.
			return sel.SelectSubVariant(campaign.SubVariantOption{ID: req.SubVariantID})
		}
		sub, ok := snap.SubVariantOf(variant.ID, req.SubVariantID)
		if !ok {
			return errUnknownOption
		}
		return sel.SelectSubVariant(sub)
	})
}

// @Summary Select delivery address
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.SelectAddressRequest true "Address selection"
// @Success 200 {object} response.SelectionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /sessions/{id}/address [put]
func (h *SessionHandler) SelectAddress(c *gin.Context) {
	var req reqdto.SelectAddressRequest
	if !h.bind(c, &req) {
		return
	}

	h.applySelection(c, func(_ *campaign.Snapshot, sel *selection.State) error {
		return sel.SelectAddress(campaign.Address{
			ID:     req.AddressID,
			Name:   req.Name,
			Detail: req.Detail,
		})
	})
}

// @Summary Set quantity
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.SetQuantityRequest true "Quantity"
// @Success 200 {object} response.SelectionResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /sessions/{id}/quantity [put]
func (h *SessionHandler) SetQuantity(c *gin.Context) {
	var req reqdto.SetQuantityRequest
	if !h.bind(c, &req) {
		return
	}

	h.applySelection(c, func(_ *campaign.Snapshot, sel *selection.State) error {
		return sel.SetQuantity(req.Quantity)
	})
}

// @Summary Increase quantity by one
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SelectionResponse
// @Router /sessions/{id}/quantity/increase [post]
func (h *SessionHandler) IncreaseQuantity(c *gin.Context) {
	h.applySelection(c, func(_ *campaign.Snapshot, sel *selection.State) error {
		return sel.IncreaseQuantity()
	})
}

// @Summary Decrease quantity by one
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SelectionResponse
// @Router /sessions/{id}/quantity/decrease [post]
func (h *SessionHandler) DecreaseQuantity(c *gin.Context) {
	h.applySelection(c, func(_ *campaign.Snapshot, sel *selection.State) error {
		return sel.DecreaseQuantity()
	})
}

// @Summary Clear selection
// @Description Reset variant, sub-variant, address and quantity
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.SelectionResponse
// @Router /sessions/{id}/selection [delete]
func (h *SessionHandler) ClearSelection(c *gin.Context) {
	h.applySelection(c, func(_ *campaign.Snapshot, sel *selection.State) error {
		sel.ClearAll()
		return nil
	})
}

// @Summary Redeem campaign
// @Description Validate selection completeness, submit the redemption and return the next UI step
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} response.NextStepResponse
// @Failure 401 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Failure 502 {object} map[string]string
// @Router /sessions/{id}/redeem [post]
func (h *SessionHandler) Redeem(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	token := middleware.GetAccessToken(c)
	step, err := h.redeemCommands.Redeem(c.Request.Context(), sess, token)
	if err != nil {
		h.respondRedeemError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNextStep(step))
}

func (h *SessionHandler) respondRedeemError(c *gin.Context, err error) {
	code := commands.ErrorCode(err)
	switch code {
	case "token_required":
		httperr.AbortWithError(c, http.StatusUnauthorized, err, code, "Access token required", nil)
	case "redeem_in_flight":
		httperr.AbortWithError(c, http.StatusConflict, err, code, "A redemption is already in progress", nil)
	case "":
		// Transport/backend failure passed through from the gateway.
		httperr.AbortWithError(c, http.StatusBadGateway, err, "", "Redemption backend is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, code, err.Error(), nil)
	}
}

func (h *SessionHandler) session(c *gin.Context) (*shared.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "", "Invalid session ID format", nil)
		return nil, false
	}

	sess, ok := h.registry.Get(id)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errSessionUnknown, "", "Session not found or expired", nil)
		return nil, false
	}
	return sess, true
}

func (h *SessionHandler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "", "Invalid request format", nil)
		return false
	}
	return true
}

// applySelection runs one mutation under the session lock and replies with
// the updated selection, or a 422 carrying the rejection code and message.
func (h *SessionHandler) applySelection(c *gin.Context, mutate func(*campaign.Snapshot, *selection.State) error) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var resp resdto.SelectionResponse
	err := sess.Update(func(snap *campaign.Snapshot, sel *selection.State) error {
		if mutateErr := mutate(snap, sel); mutateErr != nil {
			return mutateErr
		}
		resp = resdto.FromSelection(sel)
		return nil
	})
	if err != nil {
		if errors.Is(err, errUnknownOption) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "", "Option not found on this campaign", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, selectionErrorCode(err), err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func selectionErrorCode(err error) string {
	switch {
	case errors.Is(err, selection.ErrVariantNotSupported):
		return "variant_not_supported"
	case errors.Is(err, selection.ErrVariantOutOfStock):
		return "variant_out_of_stock"
	case errors.Is(err, selection.ErrVariantRequired):
		return "variant_required"
	case errors.Is(err, selection.ErrSubVariantMismatch):
		return "sub_variant_mismatch"
	case errors.Is(err, selection.ErrSubVariantOutOfStock):
		return "sub_variant_out_of_stock"
	case errors.Is(err, selection.ErrAddressIncomplete):
		return "address_incomplete"
	case errors.Is(err, selection.ErrQuantityTooLow):
		return "quantity_too_low"
	case errors.Is(err, selection.ErrQuantityExceedsLimit):
		return "quantity_exceeds_limit"
	default:
		return "selection_rejected"
	}
}
