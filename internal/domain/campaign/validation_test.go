//go:build unit

package campaign_test

import (
	"testing"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func newEngine() *campaign.Engine {
	return campaign.NewEngine(text.NewTable(nil), "This campaign is currently unavailable")
}

func authenticated(points int) campaign.Context {
	return campaign.Context{LoginType: campaign.LoginAuthenticated, Points: points}
}

func TestEvaluate(t *testing.T) {
	engine := newEngine()

	t.Run("healthy snapshot is ready", func(t *testing.T) {
		verdict := engine.Evaluate(builder.NewSnapshotBuilder().Build(), authenticated(500))

		assert.True(t, verdict.Ready)
		assert.Empty(t, verdict.Reason)
		assert.Empty(t, verdict.Message)
	})

	t.Run("device login is never ready", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().Build()
		verdict := engine.Evaluate(snap, campaign.Context{LoginType: campaign.LoginDevice, Points: 500})

		assert.False(t, verdict.Ready)
		assert.Equal(t, campaign.ReasonNotAuthenticated, verdict.Reason)
		assert.NotEmpty(t, verdict.Message)
	})

	t.Run("insufficient points interpolates required and held", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().WithPointsPerUnit(100).Build()
		verdict := engine.Evaluate(snap, authenticated(30))

		assert.False(t, verdict.Ready)
		assert.Equal(t, campaign.ReasonInsufficientPoints, verdict.Reason)
		assert.Equal(t, "This campaign requires 100 points, you have 30", verdict.Message)
	})

	t.Run("earn direction skips the points check", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().
			WithPointDirection(campaign.DirectionEarn).
			WithPointsPerUnit(100).
			Build()
		verdict := engine.Evaluate(snap, authenticated(0))

		assert.True(t, verdict.Ready)
	})

	t.Run("expired campaign", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().AsExpired().Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.False(t, verdict.Ready)
		assert.Equal(t, campaign.ReasonExpired, verdict.Reason)
	})

	t.Run("expiry uses the backend clock only", func(t *testing.T) {
		// Snapshot expired relative to its own ServerTime even though the
		// local wall clock is long past both.
		serverTime := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		snap := builder.NewSnapshotBuilder().
			WithServerTime(serverTime).
			WithExpireTime(serverTime.AddDate(0, 2, 0)).
			Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.True(t, verdict.Ready)
	})

	t.Run("sold out", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().AsSoldOut().Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.False(t, verdict.Ready)
		assert.Equal(t, campaign.ReasonSoldOut, verdict.Reason)
	})

	t.Run("total redemption limit reached", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().
			WithRedeemLimitTotal(10).
			WithItemsSold(10).
			Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.False(t, verdict.Ready)
		assert.Equal(t, campaign.ReasonSoldOut, verdict.Reason)
	})

	t.Run("zero total limit means no bound", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().
			WithRedeemLimitTotal(0).
			WithItemsSold(99999).
			Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.True(t, verdict.Ready)
	})
}

func TestEvaluate_ConditionAlert(t *testing.T) {
	engine := newEngine()

	codeCases := []struct {
		code   string
		reason campaign.Reason
	}{
		{"1401", campaign.ReasonSoldOut},
		{"1402", campaign.ReasonMaxPerPerson},
		{"1403", campaign.ReasonCoolDown},
		{"1404", campaign.ReasonConditionInvalid},
		{"1405", campaign.ReasonSponsorOnly},
		{"1406", campaign.ReasonExpired},
		{"1407", campaign.ReasonNotStarted},
		{"1408", campaign.ReasonAppVersionExpired},
		{"1409", campaign.ReasonTermsViolation},
	}

	for _, tc := range codeCases {
		t.Run("alert code "+tc.code, func(t *testing.T) {
			snap := builder.NewSnapshotBuilder().WithConditionAlert(tc.code, "").Build()
			verdict := engine.Evaluate(snap, authenticated(500))

			assert.False(t, verdict.Ready)
			assert.Equal(t, tc.reason, verdict.Reason)
			assert.NotEmpty(t, verdict.Message)
		})
	}

	t.Run("alert code wins regardless of stock and expiry", func(t *testing.T) {
		// A healthy-looking snapshot carrying 1403 must still report cool
		// down, and a broken-looking one must not override it.
		snap := builder.NewSnapshotBuilder().
			WithConditionAlert("1403", "").
			AsSoldOut().
			AsExpired().
			Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.Equal(t, campaign.ReasonCoolDown, verdict.Reason)
	})

	t.Run("unknown code uses campaign caption", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().
			WithConditionAlert("9999", "Members of the gold tier only").
			Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.False(t, verdict.Ready)
		assert.Equal(t, campaign.ReasonCustom, verdict.Reason)
		assert.Equal(t, "Members of the gold tier only", verdict.Message)
	})

	t.Run("unknown code without caption falls back to the generic alert string", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().WithConditionAlert("9999", "").Build()
		verdict := engine.Evaluate(snap, authenticated(500))

		assert.Equal(t, campaign.ReasonCustom, verdict.Reason)
		assert.Equal(t, "This campaign cannot be redeemed right now", verdict.Message)
	})

	t.Run("insufficient points outranks the condition alert", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().
			WithPointsPerUnit(100).
			WithConditionAlert("1401", "").
			Build()
		verdict := engine.Evaluate(snap, authenticated(0))

		assert.Equal(t, campaign.ReasonInsufficientPoints, verdict.Reason)
	})

	t.Run("authentication outranks everything", func(t *testing.T) {
		snap := builder.NewSnapshotBuilder().
			WithConditionAlert("1409", "").
			AsSoldOut().
			Build()
		verdict := engine.Evaluate(snap, campaign.Context{LoginType: campaign.LoginDevice})

		assert.Equal(t, campaign.ReasonNotAuthenticated, verdict.Reason)
	})
}

func TestEvaluate_LocalizedMessages(t *testing.T) {
	tbl := text.NewTable(map[text.Role]string{
		text.RoleMsgSoldOut: "ขายหมดแล้ว",
	})
	engine := campaign.NewEngine(tbl, "unavailable")

	snap := builder.NewSnapshotBuilder().AsSoldOut().Build()
	verdict := engine.Evaluate(snap, authenticated(500))

	assert.Equal(t, "ขายหมดแล้ว", verdict.Message)
}
