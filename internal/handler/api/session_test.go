//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/handler/api"
	resdto "campaign-engine/internal/handler/dto/response"
	"campaign-engine/internal/pkg/clock"
	"campaign-engine/internal/pkg/errs"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/internal/usecase/commands"
	"campaign-engine/internal/usecase/queries"
	"campaign-engine/internal/usecase/shared"
	"campaign-engine/tests/common/builder"
	"campaign-engine/tests/common/httptest"
	commandsmock "campaign-engine/tests/mock/commands"
	queriesmock "campaign-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockCampaignQueries
	mockCommands *commandsmock.MockRedeemCommands
	registry     *shared.Registry
	textTable    *text.Table
	handler      *api.SessionHandler
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCampaignQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockRedeemCommands(s.mockCtrl)
	s.registry = shared.NewRegistry(clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)))
	s.textTable = text.NewTable(nil)
	s.handler = api.NewSessionHandler(s.registry, s.mockQueries, s.mockCommands, s.textTable)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
			c.Set("login_type", campaign.LoginAuthenticated)
			c.Set("access_token", "bearer-token")
		}
		c.Next()
	}

	// Setup routes
	s.router.POST("/sessions/:id/refresh", authMiddleware, s.handler.Refresh)
	s.router.PUT("/sessions/:id/variant", s.handler.SelectVariant)
	s.router.PUT("/sessions/:id/sub-variant", s.handler.SelectSubVariant)
	s.router.PUT("/sessions/:id/address", s.handler.SelectAddress)
	s.router.PUT("/sessions/:id/quantity", s.handler.SetQuantity)
	s.router.POST("/sessions/:id/quantity/increase", s.handler.IncreaseQuantity)
	s.router.POST("/sessions/:id/quantity/decrease", s.handler.DecreaseQuantity)
	s.router.DELETE("/sessions/:id/selection", s.handler.ClearSelection)
	s.router.POST("/sessions/:id/redeem", authMiddleware, s.handler.Redeem)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) openShoppingSession() *shared.Session {
	snap := builder.NewSnapshotBuilder().AsShoppingWithVariants().Build()
	return s.registry.Open(snap, "en", s.textTable)
}

// ================================================================================
// Session lookup
// ================================================================================

func (s *SessionHandlerTestSuite) TestSessionLookup() {
	s.Run("malformed session id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/sessions/not-a-uuid/quantity",
			map[string]any{"quantity": 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid session ID")
	})

	s.Run("unknown session id returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/sessions/"+uuid.NewString()+"/quantity",
			map[string]any{"quantity": 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session not found")
	})
}

// ================================================================================
// TestSelectVariant
// ================================================================================

func (s *SessionHandlerTestSuite) TestSelectVariant() {
	s.Run("success: selection echoes the variant", func() {
		sess := s.openShoppingSession()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/sessions/"+sess.ID().String()+"/variant", map[string]any{"variant_id": "v1"}, "")

		var resp resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().NotNil(resp.VariantID)
		s.Equal("v1", *resp.VariantID)
		s.Equal(1, resp.Quantity)
	})

	s.Run("unknown variant returns 400", func() {
		sess := s.openShoppingSession()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/sessions/"+sess.ID().String()+"/variant", map[string]any{"variant_id": "nope"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Option not found")
	})

	s.Run("variant on a plain campaign returns 422", func() {
		snap := builder.NewSnapshotBuilder().
			WithVariant(campaign.VariantOption{ID: "v1", Quantity: 5}).
			Build() // privilege type, variants unsupported
		sess := s.registry.Open(snap, "en", s.textTable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/sessions/"+sess.ID().String()+"/variant", map[string]any{"variant_id": "v1"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "variant_not_supported")
	})

	s.Run("missing variant_id returns 400", func() {
		sess := s.openShoppingSession()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/sessions/"+sess.ID().String()+"/variant", map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestQuantity
// ================================================================================

func (s *SessionHandlerTestSuite) TestQuantity() {
	s.Run("set within stock", func() {
		sess := s.openShoppingSession()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/sessions/"+sess.ID().String()+"/quantity", map[string]any{"quantity": 5}, "")

		var resp resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(5, resp.Quantity)
	})

	s.Run("set beyond stock returns 422 with the localized bound", func() {
		snap := builder.NewSnapshotBuilder().WithQuantityAvailable(3).Build()
		sess := s.registry.Open(snap, "en", s.textTable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/sessions/"+sess.ID().String()+"/quantity", map[string]any{"quantity": 4}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Only 3 available")
	})

	s.Run("decrease at the floor stays at one", func() {
		sess := s.openShoppingSession()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/quantity/decrease", nil, "")

		var resp resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(1, resp.Quantity)
	})

	s.Run("increase walks up by one", func() {
		sess := s.openShoppingSession()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/quantity/increase", nil, "")

		var resp resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(2, resp.Quantity)
	})
}

// ================================================================================
// TestClearSelection
// ================================================================================

func (s *SessionHandlerTestSuite) TestClearSelection() {
	sess := s.openShoppingSession()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
		"/sessions/"+sess.ID().String()+"/variant", map[string]any{"variant_id": "v1"}, "")
	s.Equal(http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete,
		"/sessions/"+sess.ID().String()+"/selection", nil, "")

	var resp resdto.SelectionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Nil(resp.VariantID)
	s.Equal(1, resp.Quantity)
}

// ================================================================================
// TestRefresh
// ================================================================================

func (s *SessionHandlerTestSuite) TestRefresh() {
	s.Run("success: fresh snapshot replaces the session state", func() {
		sess := s.openShoppingSession()
		fresh := builder.NewSnapshotBuilder().AsShoppingWithVariants().WithItemsSold(42).Build()
		view := &queries.DetailView{
			Snapshot: fresh,
			Ready:    campaign.ReadyToUse{Ready: true},
			Button:   campaign.ResolveButton(fresh),
		}

		s.mockQueries.EXPECT().
			FreshDetail(gomock.Any(), fresh.ID, "en", gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/refresh", nil, "bearer-token")

		var resp resdto.DetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(sess.ID(), resp.SessionID)
		s.Same(fresh, sess.Snapshot())
	})

	s.Run("catalog outage returns 502", func() {
		sess := s.openShoppingSession()

		s.mockQueries.EXPECT().
			FreshDetail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrCatalogFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/refresh", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "catalog is unavailable")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *SessionHandlerTestSuite) TestRedeem() {
	s.Run("success: next step comes back classified", func() {
		sess := s.openShoppingSession()

		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), sess, "bearer-token").
			Return(commands.ShowCode{RedeemKey: "rk-1", Code: "ABCD"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/redeem", nil, "bearer-token")

		var resp resdto.NextStepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("show_code", resp.Kind)
		s.Equal("ABCD", resp.Code)
	})

	s.Run("missing token returns 401", func() {
		sess := s.openShoppingSession()

		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), sess, "").
			Return(nil, commands.ErrTokenRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/redeem", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "token_required")
	})

	s.Run("in-flight redeem returns 409", func() {
		sess := s.openShoppingSession()

		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), sess, "bearer-token").
			Return(nil, commands.ErrRedeemInFlight).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/redeem", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "redeem_in_flight")
	})

	s.Run("incomplete selection returns 422", func() {
		sess := s.openShoppingSession()

		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), sess, "bearer-token").
			Return(nil, commands.ErrInvalidVariant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/redeem", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "invalid_variant")
	})

	s.Run("backend failure returns 502", func() {
		sess := s.openShoppingSession()

		s.mockCommands.EXPECT().
			Redeem(gomock.Any(), sess, "bearer-token").
			Return(nil, errs.New("backend down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/sessions/"+sess.ID().String()+"/redeem", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "unavailable")
	})
}
