// Package selection tracks the multi-step choice a user makes on one campaign
// detail view: variant, sub-variant, delivery address and quantity. The state
// is single-writer and session-scoped; callers serialize mutation.
package selection

import (
	"fmt"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/errs"
	"campaign-engine/internal/pkg/text"
)

var (
	ErrVariantNotSupported  = errs.New("campaign does not carry variants")
	ErrVariantOutOfStock    = errs.New("variant out of stock")
	ErrVariantRequired      = errs.New("no variant selected")
	ErrSubVariantMismatch   = errs.New("sub-variant does not belong to selected variant")
	ErrSubVariantOutOfStock = errs.New("sub-variant out of stock")
	ErrAddressIncomplete    = errs.New("address is not filled in")
	ErrQuantityTooLow       = errs.New("quantity must be at least 1")
	ErrQuantityExceedsLimit = errs.New("quantity exceeds available stock")
)

// State is the mutable per-session selection. All operations are synchronous,
// perform no I/O, and report rejection through the returned error: nil means
// applied.
type State struct {
	snapshot   *campaign.Snapshot
	text       *text.Table
	variant    *campaign.VariantOption
	subVariant *campaign.SubVariantOption
	address    *campaign.Address
	quantity   int
}

func New(snapshot *campaign.Snapshot, tbl *text.Table) *State {
	return &State{snapshot: snapshot, text: tbl, quantity: 1}
}

func (s *State) Variant() *campaign.VariantOption       { return s.variant }
func (s *State) SubVariant() *campaign.SubVariantOption { return s.subVariant }
func (s *State) Address() *campaign.Address             { return s.address }
func (s *State) Quantity() int                          { return s.quantity }

// SelectVariant accepts an in-stock variant on a variant-bearing campaign.
// Accepting unconditionally clears the sub-variant: it belonged to the
// previous variant and must never survive the switch.
func (s *State) SelectVariant(v campaign.VariantOption) error {
	if !s.snapshot.Type.SupportsVariants() {
		return ErrVariantNotSupported
	}
	if v.Quantity <= 0 {
		return ErrVariantOutOfStock
	}
	s.variant = &v
	s.subVariant = nil
	s.clampQuantity()
	return nil
}

func (s *State) SelectSubVariant(sv campaign.SubVariantOption) error {
	if s.variant == nil {
		return errs.Mark(errs.New(s.text.Get(text.RoleMsgVariantRequired)), ErrVariantRequired)
	}
	if _, ok := s.snapshot.SubVariantOf(s.variant.ID, sv.ID); !ok {
		return ErrSubVariantMismatch
	}
	if sv.Quantity <= 0 {
		return ErrSubVariantOutOfStock
	}
	s.subVariant = &sv
	s.clampQuantity()
	return nil
}

func (s *State) SelectAddress(a campaign.Address) error {
	if !a.Filled() {
		return errs.Mark(errs.New(s.text.Get(text.RoleMsgAddressRequired)), ErrAddressIncomplete)
	}
	s.address = &a
	return nil
}

func (s *State) SetQuantity(n int) error {
	if n < 1 {
		return ErrQuantityTooLow
	}
	if bound := s.stockBound(); n > bound {
		msg := fmt.Sprintf(s.text.Get(text.RoleMsgOnlyNAvailable), bound)
		return errs.Mark(errs.New(msg), ErrQuantityExceedsLimit)
	}
	s.quantity = n
	return nil
}

func (s *State) IncreaseQuantity() error {
	return s.SetQuantity(s.quantity + 1)
}

// DecreaseQuantity clamps silently at 1: tapping minus at the floor is not an
// error.
func (s *State) DecreaseQuantity() error {
	if s.quantity <= 1 {
		return nil
	}
	return s.SetQuantity(s.quantity - 1)
}

func (s *State) ResetQuantity() {
	s.quantity = 1
}

func (s *State) ClearVariant() {
	s.variant = nil
	s.subVariant = nil
}

func (s *State) ClearAddress() {
	s.address = nil
}

func (s *State) ClearAll() {
	s.variant = nil
	s.subVariant = nil
	s.address = nil
	s.quantity = 1
}

// clampQuantity pulls the quantity back under the bound after the active
// selection narrows. Selections are only accepted with stock >= 1, so the
// clamp never crosses the floor.
func (s *State) clampQuantity() {
	if bound := s.stockBound(); s.quantity > bound {
		s.quantity = bound
	}
}

// stockBound is the tightest quantity cap: the stock of the most specific
// active selection, intersected with the per-person redemption limit when the
// backend reports one. Stock is always a known figure, so an exhausted
// selection bounds at 0; only the limit uses 0 to mean "no bound".
func (s *State) stockBound() int {
	stock := s.snapshot.QuantityAvailable
	if s.subVariant != nil {
		stock = s.subVariant.Quantity
	} else if s.variant != nil {
		stock = s.variant.Quantity
	}
	if stock < 0 {
		stock = 0
	}

	if limit := s.snapshot.RedeemLimitPerPerson; limit > 0 && limit < stock {
		return limit
	}
	return stock
}
