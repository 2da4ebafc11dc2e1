// Package text holds the runtime-swappable localized string table. The engine
// only ever selects a Role; the active table supplies the display string for
// the current locale.
package text

import "sync/atomic"

type Role string

const (
	// Button labels
	RoleButtonRedeem     Role = "button.redeem"
	RoleButtonGetPoints  Role = "button.get_points"
	RoleButtonBuy        Role = "button.buy"
	RoleButtonAddToCart  Role = "button.add_to_cart"
	RoleButtonTakeSurvey Role = "button.take_survey"
	RoleButtonOpen       Role = "button.open"
	RoleButtonDraw       Role = "button.draw"
	RoleButtonDonate     Role = "button.donate"
	RoleButtonDelivery   Role = "button.delivery"

	// Eligibility messages
	RoleMsgNotAuthenticated   Role = "msg.not_authenticated"
	RoleMsgInsufficientPoints Role = "msg.insufficient_points"
	RoleMsgExpired            Role = "msg.expired"
	RoleMsgSoldOut            Role = "msg.sold_out"
	RoleMsgMaxPerPerson       Role = "msg.max_per_person"
	RoleMsgCoolDown           Role = "msg.cool_down"
	RoleMsgConditionInvalid   Role = "msg.condition_invalid"
	RoleMsgSponsorOnly        Role = "msg.sponsor_only"
	RoleMsgNotStarted         Role = "msg.not_started"
	RoleMsgAppVersionExpired  Role = "msg.app_version_expired"
	RoleMsgTermsViolation     Role = "msg.terms_violation"
	RoleMsgConditionAlert     Role = "msg.condition_alert"

	// Selection messages
	RoleMsgOnlyNAvailable     Role = "msg.only_n_available"
	RoleMsgVariantRequired    Role = "msg.variant_required"
	RoleMsgSubVariantRequired Role = "msg.sub_variant_required"
	RoleMsgAddressRequired    Role = "msg.address_required"
)

// English fallback used whenever the active table has no entry for a role.
var defaults = map[Role]string{
	RoleButtonRedeem:     "Redeem",
	RoleButtonGetPoints:  "Get Points",
	RoleButtonBuy:        "Buy",
	RoleButtonAddToCart:  "Add to Cart",
	RoleButtonTakeSurvey: "Take Survey",
	RoleButtonOpen:       "Open",
	RoleButtonDraw:       "Draw",
	RoleButtonDonate:     "Donate",
	RoleButtonDelivery:   "Select Address",

	RoleMsgNotAuthenticated:   "Please sign in to redeem this campaign",
	RoleMsgInsufficientPoints: "This campaign requires %d points, you have %d",
	RoleMsgExpired:            "This campaign has expired",
	RoleMsgSoldOut:            "This campaign is sold out",
	RoleMsgMaxPerPerson:       "You have reached the redemption limit for this campaign",
	RoleMsgCoolDown:           "Please wait before redeeming this campaign again",
	RoleMsgConditionInvalid:   "You do not meet the conditions for this campaign",
	RoleMsgSponsorOnly:        "This campaign is limited to sponsor members",
	RoleMsgNotStarted:         "This campaign has not started yet",
	RoleMsgAppVersionExpired:  "Please update the app to redeem this campaign",
	RoleMsgTermsViolation:     "Your account is not eligible for this campaign",
	RoleMsgConditionAlert:     "This campaign cannot be redeemed right now",

	RoleMsgOnlyNAvailable:     "Only %d available",
	RoleMsgVariantRequired:    "Please select an option first",
	RoleMsgSubVariantRequired: "Please select a sub-option first",
	RoleMsgAddressRequired:    "Please select a delivery address",
}

// Valid reports whether r is a role the engine knows about. Used when
// ingesting backend label maps so unknown keys are dropped rather than stored.
func (r Role) Valid() bool {
	_, ok := defaults[r]
	return ok
}

// Table maps roles to display strings for the active locale. Replace swaps the
// whole mapping atomically, so a locale change never requires reconstructing
// the consumers holding the table.
type Table struct {
	entries atomic.Pointer[map[Role]string]
}

func NewTable(entries map[Role]string) *Table {
	t := &Table{}
	t.Replace(entries)
	return t
}

func (t *Table) Replace(entries map[Role]string) {
	if entries == nil {
		entries = map[Role]string{}
	}
	t.entries.Store(&entries)
}

func (t *Table) Get(r Role) string {
	if m := t.entries.Load(); m != nil {
		if s, ok := (*m)[r]; ok && s != "" {
			return s
		}
	}
	return defaults[r]
}
