package campaign

import (
	"time"

	"campaign-engine/internal/pkg/errs"
)

var ErrUnknownLoginType = errs.New("unknown login type")

// VariantOption is a first-level product option on a shopping campaign.
type VariantOption struct {
	ID       string
	Name     string
	Price    float64
	Points   int
	Quantity int
}

// SubVariantOption is a second-level option scoped to one variant.
type SubVariantOption struct {
	ID       string
	Name     string
	Kind     SubVariantKind
	Price    float64
	Points   int
	Quantity int
}

// Address is an opaque selectable delivery record. Its content lifecycle is
// owned by the address provider; the engine only needs identity and whether
// it is filled in.
type Address struct {
	ID     string
	Name   string
	Detail string
}

func (a Address) Filled() bool {
	return a.ID != "" && a.Detail != ""
}

// Snapshot is the campaign detail as fetched from the catalog. It is
// immutable: a refresh replaces the whole value, never mutates it in place.
// ServerTime is the backend clock at fetch time and is the only clock the
// validation rules may consult.
type Snapshot struct {
	ID      int64
	Type    Type
	Subtype InterfaceSubtype
	Name    string

	QuantityAvailable    int
	ItemsSold            int
	RedeemLimitPerPerson int // 0 = unknown, no bound
	RedeemLimitTotal     int // 0 = unknown, no bound

	PointsPerUnit int
	PricePerUnit  float64

	StartTime  time.Time
	ExpireTime time.Time
	ServerTime time.Time

	ConditionPassed       bool
	ConditionAlertCode    string // opaque backend code, "" = absent
	ConditionAlertMessage string // campaign-supplied caption

	RequiresDelivery bool
	PointDirection   PointDirection
	Website          string

	Variants    []VariantOption
	SubVariants map[string][]SubVariantOption // keyed by variant ID
}

func (s *Snapshot) HasVariants() bool {
	return len(s.Variants) > 0
}

func (s *Snapshot) VariantByID(id string) (VariantOption, bool) {
	for _, v := range s.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantOption{}, false
}

func (s *Snapshot) SubVariantsOf(variantID string) []SubVariantOption {
	return s.SubVariants[variantID]
}

func (s *Snapshot) SubVariantOf(variantID, subVariantID string) (SubVariantOption, bool) {
	for _, sv := range s.SubVariants[variantID] {
		if sv.ID == subVariantID {
			return sv, true
		}
	}
	return SubVariantOption{}, false
}

// RemainingDays is the truncated number of whole days between the backend
// clock and expiry. Negative when already expired. The local clock is never
// consulted, so a tampered device clock cannot extend a campaign.
func (s *Snapshot) RemainingDays() int {
	return int(s.ExpireTime.Sub(s.ServerTime).Hours() / 24)
}
