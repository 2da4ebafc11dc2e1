package campaign

import "campaign-engine/internal/pkg/text"

// Button is the UI-action descriptor resolved for a campaign shape. It is a
// closed set: the marker method keeps outside packages from adding variants,
// so call sites can switch exhaustively. Labels are text roles, never literal
// strings; the active text table supplies the display text.
type Button interface {
	isButton()
}

type NoButton struct{}

type RedeemButton struct {
	Label text.Role
}

type ShoppingButton struct {
	Primary   text.Role
	Secondary text.Role // "" = no secondary action
}

// ShoppingStyledButton is the variant-picker flavor of the shopping action,
// shown when the campaign carries product options.
type ShoppingStyledButton struct {
	Primary   text.Role
	Secondary text.Role
}

type AddressButton struct {
	Label text.Role
}

type QuantityButton struct {
	Label text.Role
}

func (NoButton) isButton()             {}
func (RedeemButton) isButton()         {}
func (ShoppingButton) isButton()       {}
func (ShoppingStyledButton) isButton() {}
func (AddressButton) isButton()        {}
func (QuantityButton) isButton()       {}

// ResolveButton maps a campaign shape to its UI action. Pure. The decision
// table is ordered: the first matching row wins. The same taxonomy drives the
// post-redemption classification in the dispatcher; a change here requires
// auditing that table too.
func ResolveButton(s *Snapshot) Button {
	switch s.Type {
	case TypeEvent, TypeMedia, TypeNews:
		return NoButton{}
	case TypeBuy:
		if s.HasVariants() {
			return ShoppingStyledButton{Primary: text.RoleButtonBuy, Secondary: text.RoleButtonAddToCart}
		}
		return ShoppingButton{Primary: text.RoleButtonBuy, Secondary: text.RoleButtonAddToCart}
	case TypeMarketplace:
		return ShoppingButton{Primary: text.RoleButtonBuy}
	case TypeInterface:
		if s.Subtype == SubtypeSurvey {
			return RedeemButton{Label: text.RoleButtonTakeSurvey}
		}
		return RedeemButton{Label: text.RoleButtonOpen}
	case TypeDraw:
		if s.RequiresDelivery {
			return AddressButton{Label: text.RoleButtonDraw}
		}
		return RedeemButton{Label: text.RoleButtonDraw}
	case TypeDonate:
		return QuantityButton{Label: text.RoleButtonDonate}
	}

	if s.RequiresDelivery {
		return AddressButton{Label: text.RoleButtonDelivery}
	}
	if s.PointDirection == DirectionSpend {
		return RedeemButton{Label: text.RoleButtonRedeem}
	}
	return RedeemButton{Label: text.RoleButtonGetPoints}
}
