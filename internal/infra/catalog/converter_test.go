//go:build unit

package catalog

import (
	"testing"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/text"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnapshot(t *testing.T) {
	dto := &campaignDTO{
		ID:                   42,
		Type:                 "buy",
		Name:                 "Fall Sale",
		QuantityAvailable:    7,
		ItemsSold:            3,
		RedeemLimitPerPerson: 2,
		RedeemLimitTotal:     100,
		PointsPerUnit:        50,
		PricePerUnit:         19.99,
		StartTime:            1767225600, // 2026-01-01T00:00:00Z
		ExpireTime:           1772323200, // 2026-03-01T00:00:00Z
		ServerTime:           1769904000, // 2026-02-01T00:00:00Z
		ConditionPassed:      true,
		RequiresDelivery:     true,
		PointDirection:       "spend",
		Variants: []variantDTO{
			{
				ID: "v1", Name: "Red", Price: 19.99, Quantity: 4,
				SubVariants: []subVariantDTO{
					{ID: "sv1", Name: "S", Kind: "size", Quantity: 2},
				},
			},
			{ID: "v2", Name: "Blue", Price: 19.99, Quantity: 3},
		},
	}

	snap, err := toSnapshot(dto)
	require.NoError(t, err)

	assert.Equal(t, int64(42), snap.ID)
	assert.Equal(t, campaign.TypeBuy, snap.Type)
	assert.Equal(t, "Fall Sale", snap.Name)
	assert.Equal(t, 7, snap.QuantityAvailable)
	assert.Equal(t, 3, snap.ItemsSold)
	assert.Equal(t, 2, snap.RedeemLimitPerPerson)
	assert.Equal(t, 100, snap.RedeemLimitTotal)
	assert.Equal(t, 50, snap.PointsPerUnit)
	assert.True(t, snap.RequiresDelivery)
	assert.Equal(t, campaign.DirectionSpend, snap.PointDirection)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), snap.ServerTime)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), snap.ExpireTime)

	require.Len(t, snap.Variants, 2)
	assert.Equal(t, "v1", snap.Variants[0].ID)
	require.Len(t, snap.SubVariants["v1"], 1)
	assert.Equal(t, campaign.SubVariantSize, snap.SubVariants["v1"][0].Kind)
	assert.NotContains(t, snap.SubVariants, "v2")
}

func TestToSnapshot_Degradations(t *testing.T) {
	t.Run("unknown type falls back to privilege", func(t *testing.T) {
		snap, err := toSnapshot(&campaignDTO{Type: "hologram"})
		require.NoError(t, err)
		assert.Equal(t, campaign.TypePrivilege, snap.Type)
	})

	t.Run("unknown point direction defaults to spend", func(t *testing.T) {
		snap, err := toSnapshot(&campaignDTO{Type: "privilege", PointDirection: "sideways"})
		require.NoError(t, err)
		assert.Equal(t, campaign.DirectionSpend, snap.PointDirection)
	})

	t.Run("earn direction survives", func(t *testing.T) {
		snap, err := toSnapshot(&campaignDTO{Type: "privilege", PointDirection: "earn"})
		require.NoError(t, err)
		assert.Equal(t, campaign.DirectionEarn, snap.PointDirection)
	})
}

func TestToLabels(t *testing.T) {
	labels := toLabels(&labelsDTO{Labels: map[string]string{
		"button.redeem": "แลกรับ",
		"button.buy":    "",
		"made.up.key":   "whatever",
	}})

	assert.Equal(t, map[text.Role]string{
		text.RoleButtonRedeem: "แลกรับ",
	}, labels, "unknown keys and empty values are dropped")
}
