//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/domain/selection"
	"campaign-engine/internal/pkg/clock"
	"campaign-engine/internal/pkg/errs"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/internal/usecase/commands"
	"campaign-engine/internal/usecase/shared"
	"campaign-engine/tests/common/builder"
	commandsmock "campaign-engine/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRedeemFixture(t *testing.T) (commands.RedeemCommands, *commandsmock.MockRedemptionGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := commandsmock.NewMockRedemptionGateway(ctrl)
	uc := commands.NewRedeemUseCase(gateway, clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)))
	return uc, gateway
}

func sessionFor(snap *campaign.Snapshot) *shared.Session {
	return shared.NewSession(snap, "en", text.NewTable(nil), time.Now())
}

func TestRedeem_Preconditions(t *testing.T) {
	t.Run("empty token never reaches the gateway", func(t *testing.T) {
		uc, gateway := newRedeemFixture(t)
		sess := sessionFor(builder.NewSnapshotBuilder().Build())

		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)
		_, err := uc.Redeem(context.Background(), sess, "")

		assert.ErrorIs(t, err, commands.ErrTokenRequired)
	})

	t.Run("variant-bearing buy without a selection", func(t *testing.T) {
		uc, gateway := newRedeemFixture(t)
		sess := sessionFor(builder.NewSnapshotBuilder().AsShoppingWithVariants().Build())

		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)
		_, err := uc.Redeem(context.Background(), sess, "token")

		assert.ErrorIs(t, err, commands.ErrInvalidVariant)
	})

	t.Run("selected variant with sub-variants but none chosen", func(t *testing.T) {
		uc, gateway := newRedeemFixture(t)
		snap := builder.NewSnapshotBuilder().AsShoppingWithVariants().Build()
		sess := sessionFor(snap)
		require.NoError(t, sess.Update(func(s *campaign.Snapshot, sel *selection.State) error {
			return sel.SelectVariant(s.Variants[0]) // v1 carries sub-variants
		}))

		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)
		_, err := uc.Redeem(context.Background(), sess, "token")

		assert.ErrorIs(t, err, commands.ErrSubVariantRequired)
	})

	t.Run("variant without sub-variants is complete", func(t *testing.T) {
		uc, gateway := newRedeemFixture(t)
		snap := builder.NewSnapshotBuilder().AsShoppingWithVariants().Build()
		sess := sessionFor(snap)
		require.NoError(t, sess.Update(func(s *campaign.Snapshot, sel *selection.State) error {
			return sel.SelectVariant(s.Variants[1]) // v2 has none
		}))

		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(&commands.RedeemResult{CartURL: "https://shop.example/cart"}, nil)
		step, err := uc.Redeem(context.Background(), sess, "token")

		require.NoError(t, err)
		assert.Equal(t, commands.ShowAddToCartSuccess{CartURL: "https://shop.example/cart"}, step)
	})

	t.Run("delivery draw without an address", func(t *testing.T) {
		uc, gateway := newRedeemFixture(t)
		snap := builder.NewSnapshotBuilder().
			WithType(campaign.TypeDraw).
			WithRequiresDelivery().
			Build()
		sess := sessionFor(snap)

		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)
		_, err := uc.Redeem(context.Background(), sess, "token")

		assert.ErrorIs(t, err, commands.ErrAddressRequired)
	})
}

func TestRedeem_InFlightGuard(t *testing.T) {
	uc, gateway := newRedeemFixture(t)
	sess := sessionFor(builder.NewSnapshotBuilder().Build())

	require.True(t, sess.BeginRedeem())
	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.Redeem(context.Background(), sess, "token")
	assert.ErrorIs(t, err, commands.ErrRedeemInFlight)

	// Releasing the slot lets the next attempt through.
	sess.EndRedeem()
	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(&commands.RedeemResult{RedeemKey: "rk-1", Code: "ABCD"}, nil)

	step, err := uc.Redeem(context.Background(), sess, "token")
	require.NoError(t, err)
	assert.Equal(t, commands.ShowCode{RedeemKey: "rk-1", Code: "ABCD"}, step)
}

func TestRedeem_GatewayFailureReleasesGuard(t *testing.T) {
	uc, gateway := newRedeemFixture(t)
	sess := sessionFor(builder.NewSnapshotBuilder().Build())

	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(nil, errs.New("backend down"))

	_, err := uc.Redeem(context.Background(), sess, "token")
	require.Error(t, err)
	assert.Empty(t, commands.ErrorCode(err), "backend failures carry no local code")

	// The in-flight slot must be free again after the failure.
	gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).
		Return(&commands.RedeemResult{RedeemKey: "rk-2", Code: "EFGH"}, nil)
	_, err = uc.Redeem(context.Background(), sess, "token")
	assert.NoError(t, err)
}

func TestRedeem_RequestCarriesSelection(t *testing.T) {
	uc, gateway := newRedeemFixture(t)
	snap := builder.NewSnapshotBuilder().AsShoppingWithVariants().WithID(777).Build()
	sess := sessionFor(snap)
	require.NoError(t, sess.Update(func(s *campaign.Snapshot, sel *selection.State) error {
		if err := sel.SelectVariant(s.Variants[0]); err != nil {
			return err
		}
		sub, _ := s.SubVariantOf("v1", "sv1")
		if err := sel.SelectSubVariant(sub); err != nil {
			return err
		}
		return sel.SetQuantity(2)
	}))

	gateway.EXPECT().
		Submit(gomock.Any(), commands.RedeemRequest{
			CampaignID:   777,
			VariantID:    "v1",
			SubVariantID: "sv1",
			Quantity:     2,
			Token:        "token",
		}).
		Return(&commands.RedeemResult{CartURL: "https://shop.example/cart"}, nil)

	_, err := uc.Redeem(context.Background(), sess, "token")
	assert.NoError(t, err)
}

func TestRedeem_Classification(t *testing.T) {
	result := &commands.RedeemResult{
		RedeemKey:    "rk-9",
		Code:         "WXYZ",
		PointsEarned: 40,
		CartURL:      "https://shop.example/cart",
	}

	cases := []struct {
		name   string
		mutate func(*builder.SnapshotBuilder)
		want   commands.NextStep
	}{
		{
			name:   "spend privilege shows the code",
			mutate: func(b *builder.SnapshotBuilder) {},
			want:   commands.ShowCode{RedeemKey: "rk-9", Code: "WXYZ"},
		},
		{
			name: "earn privilege shows points",
			mutate: func(b *builder.SnapshotBuilder) {
				b.WithPointDirection(campaign.DirectionEarn)
			},
			want: commands.ShowPointsEarned{RedeemKey: "rk-9", Points: 40},
		},
		{
			name:   "marketplace goes to the cart",
			mutate: func(b *builder.SnapshotBuilder) { b.WithType(campaign.TypeMarketplace) },
			want:   commands.ShowAddToCartSuccess{CartURL: "https://shop.example/cart"},
		},
		{
			name:   "draw shows the draw result",
			mutate: func(b *builder.SnapshotBuilder) { b.WithType(campaign.TypeDraw) },
			want:   commands.ShowDrawSuccess{RedeemKey: "rk-9", Code: "WXYZ", Points: 40},
		},
		{
			name:   "donate shows the draw result",
			mutate: func(b *builder.SnapshotBuilder) { b.WithType(campaign.TypeDonate) },
			want:   commands.ShowDrawSuccess{RedeemKey: "rk-9", Code: "WXYZ", Points: 40},
		},
		{
			name: "survey opens the survey website",
			mutate: func(b *builder.SnapshotBuilder) {
				b.WithType(campaign.TypeInterface).
					WithSubtype(campaign.SubtypeSurvey).
					WithWebsite("https://survey.example/q1")
			},
			want: commands.OpenWebsite{URL: "https://survey.example/q1", Kind: commands.WebsiteSurvey},
		},
		{
			name: "media opens the campaign website",
			mutate: func(b *builder.SnapshotBuilder) {
				b.WithType(campaign.TypeMedia).WithWebsite("https://media.example/clip")
			},
			want: commands.OpenWebsite{URL: "https://media.example/clip", Kind: commands.WebsiteLink},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, gateway := newRedeemFixture(t)
			b := builder.NewSnapshotBuilder()
			tc.mutate(b)
			sess := sessionFor(b.Build())

			gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(result, nil)
			step, err := uc.Redeem(context.Background(), sess, "token")

			require.NoError(t, err)
			assert.Equal(t, tc.want, step)
		})
	}

	t.Run("backend website overrides the snapshot", func(t *testing.T) {
		uc, gateway := newRedeemFixture(t)
		snap := builder.NewSnapshotBuilder().
			WithType(campaign.TypeInterface).
			WithWebsite("https://fallback.example").
			Build()
		sess := sessionFor(snap)

		gateway.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(&commands.RedeemResult{WebsiteURL: "https://fresh.example"}, nil)
		step, err := uc.Redeem(context.Background(), sess, "token")

		require.NoError(t, err)
		assert.Equal(t, commands.OpenWebsite{URL: "https://fresh.example", Kind: commands.WebsiteLink}, step)
	})
}

func TestErrorCode(t *testing.T) {
	cases := []struct {
		err  error
		code string
	}{
		{commands.ErrTokenRequired, "token_required"},
		{commands.ErrInvalidVariant, "invalid_variant"},
		{commands.ErrSubVariantRequired, "sub_variant_required"},
		{commands.ErrAddressRequired, "address_required"},
		{commands.ErrInvalidQuantity, "invalid_quantity"},
		{commands.ErrRedeemInFlight, "redeem_in_flight"},
		{errs.New("anything else"), ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, commands.ErrorCode(tc.err))
	}
}
