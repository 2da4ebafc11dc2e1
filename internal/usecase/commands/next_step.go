package commands

// NextStep is the post-redemption UI action. Closed set: call sites switch
// over the concrete types and the marker method keeps the set sealed.
type NextStep interface {
	isNextStep()
}

// ShowCode presents a redemption code, the default privilege flow.
type ShowCode struct {
	RedeemKey string
	Code      string
}

// ShowPointsEarned confirms an earn-direction redemption.
type ShowPointsEarned struct {
	RedeemKey string
	Points    int
}

// ShowDrawSuccess covers draw and donate flows; code and points are optional
// extras the backend may attach.
type ShowDrawSuccess struct {
	RedeemKey string
	Code      string
	Points    int
}

// ShowAddToCartSuccess confirms a shopping redemption; the cart URL is absent
// when the backend keeps the cart server-side.
type ShowAddToCartSuccess struct {
	CartURL string
}

type WebsiteKind string

const (
	WebsiteSurvey WebsiteKind = "survey"
	WebsiteLink   WebsiteKind = "link"
)

// OpenWebsite hands the caller an external URL to open.
type OpenWebsite struct {
	URL  string
	Kind WebsiteKind
}

func (ShowCode) isNextStep()             {}
func (ShowPointsEarned) isNextStep()     {}
func (ShowDrawSuccess) isNextStep()      {}
func (ShowAddToCartSuccess) isNextStep() {}
func (OpenWebsite) isNextStep()          {}
