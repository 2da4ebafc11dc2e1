//go:build unit

package builder

import (
	"time"

	"campaign-engine/internal/domain/campaign"
)

// SnapshotBuilder assembles campaign snapshots for tests. The defaults are a
// healthy authenticated-redeemable privilege campaign; mutate from there.
type SnapshotBuilder struct {
	ID      int64
	Type    campaign.Type
	Subtype campaign.InterfaceSubtype
	Name    string

	QuantityAvailable    int
	ItemsSold            int
	RedeemLimitPerPerson int
	RedeemLimitTotal     int

	PointsPerUnit int
	PricePerUnit  float64

	StartTime  time.Time
	ExpireTime time.Time
	ServerTime time.Time

	ConditionPassed       bool
	ConditionAlertCode    string
	ConditionAlertMessage string

	RequiresDelivery bool
	PointDirection   campaign.PointDirection
	Website          string

	Variants    []campaign.VariantOption
	SubVariants map[string][]campaign.SubVariantOption
}

func NewSnapshotBuilder() *SnapshotBuilder {
	serverTime := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &SnapshotBuilder{
		ID:                1001,
		Type:              campaign.TypePrivilege,
		Name:              "Test Campaign",
		QuantityAvailable: 50,
		ItemsSold:         10,
		PointsPerUnit:     100,
		StartTime:         serverTime.AddDate(0, -1, 0),
		ExpireTime:        serverTime.AddDate(0, 1, 0),
		ServerTime:        serverTime,
		ConditionPassed:   true,
		PointDirection:    campaign.DirectionSpend,
	}
}

func (b *SnapshotBuilder) Build() *campaign.Snapshot {
	return &campaign.Snapshot{
		ID:                    b.ID,
		Type:                  b.Type,
		Subtype:               b.Subtype,
		Name:                  b.Name,
		QuantityAvailable:     b.QuantityAvailable,
		ItemsSold:             b.ItemsSold,
		RedeemLimitPerPerson:  b.RedeemLimitPerPerson,
		RedeemLimitTotal:      b.RedeemLimitTotal,
		PointsPerUnit:         b.PointsPerUnit,
		PricePerUnit:          b.PricePerUnit,
		StartTime:             b.StartTime,
		ExpireTime:            b.ExpireTime,
		ServerTime:            b.ServerTime,
		ConditionPassed:       b.ConditionPassed,
		ConditionAlertCode:    b.ConditionAlertCode,
		ConditionAlertMessage: b.ConditionAlertMessage,
		RequiresDelivery:      b.RequiresDelivery,
		PointDirection:        b.PointDirection,
		Website:               b.Website,
		Variants:              b.Variants,
		SubVariants:           b.SubVariants,
	}
}

// Fluent builder methods
func (b *SnapshotBuilder) WithID(id int64) *SnapshotBuilder {
	b.ID = id
	return b
}

func (b *SnapshotBuilder) WithType(t campaign.Type) *SnapshotBuilder {
	b.Type = t
	return b
}

func (b *SnapshotBuilder) WithSubtype(st campaign.InterfaceSubtype) *SnapshotBuilder {
	b.Subtype = st
	return b
}

func (b *SnapshotBuilder) WithQuantityAvailable(n int) *SnapshotBuilder {
	b.QuantityAvailable = n
	return b
}

func (b *SnapshotBuilder) WithItemsSold(n int) *SnapshotBuilder {
	b.ItemsSold = n
	return b
}

func (b *SnapshotBuilder) WithRedeemLimitPerPerson(n int) *SnapshotBuilder {
	b.RedeemLimitPerPerson = n
	return b
}

func (b *SnapshotBuilder) WithRedeemLimitTotal(n int) *SnapshotBuilder {
	b.RedeemLimitTotal = n
	return b
}

func (b *SnapshotBuilder) WithPointsPerUnit(n int) *SnapshotBuilder {
	b.PointsPerUnit = n
	return b
}

func (b *SnapshotBuilder) WithExpireTime(t time.Time) *SnapshotBuilder {
	b.ExpireTime = t
	return b
}

func (b *SnapshotBuilder) WithServerTime(t time.Time) *SnapshotBuilder {
	b.ServerTime = t
	return b
}

func (b *SnapshotBuilder) WithConditionAlert(code, message string) *SnapshotBuilder {
	b.ConditionPassed = false
	b.ConditionAlertCode = code
	b.ConditionAlertMessage = message
	return b
}

func (b *SnapshotBuilder) WithRequiresDelivery() *SnapshotBuilder {
	b.RequiresDelivery = true
	return b
}

func (b *SnapshotBuilder) WithPointDirection(d campaign.PointDirection) *SnapshotBuilder {
	b.PointDirection = d
	return b
}

func (b *SnapshotBuilder) WithWebsite(url string) *SnapshotBuilder {
	b.Website = url
	return b
}

func (b *SnapshotBuilder) WithVariant(v campaign.VariantOption) *SnapshotBuilder {
	b.Variants = append(b.Variants, v)
	return b
}

func (b *SnapshotBuilder) WithSubVariant(variantID string, sv campaign.SubVariantOption) *SnapshotBuilder {
	if b.SubVariants == nil {
		b.SubVariants = make(map[string][]campaign.SubVariantOption)
	}
	b.SubVariants[variantID] = append(b.SubVariants[variantID], sv)
	return b
}

func (b *SnapshotBuilder) AsSoldOut() *SnapshotBuilder {
	b.QuantityAvailable = 0
	return b
}

func (b *SnapshotBuilder) AsExpired() *SnapshotBuilder {
	b.ExpireTime = b.ServerTime.Add(-time.Hour)
	return b
}

func (b *SnapshotBuilder) AsShoppingWithVariants() *SnapshotBuilder {
	b.Type = campaign.TypeBuy
	b.Variants = []campaign.VariantOption{
		{ID: "v1", Name: "Red", Price: 9.99, Quantity: 5},
		{ID: "v2", Name: "Blue", Price: 9.99, Quantity: 3},
	}
	b.SubVariants = map[string][]campaign.SubVariantOption{
		"v1": {
			{ID: "sv1", Name: "S", Kind: campaign.SubVariantSize, Quantity: 2},
			{ID: "sv2", Name: "M", Kind: campaign.SubVariantSize, Quantity: 0},
		},
	}
	return b
}
