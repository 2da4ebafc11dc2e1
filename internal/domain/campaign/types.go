package campaign

// Type is the campaign kind reported by the catalog. Redemption semantics and
// the UI action both key off it, so the two tables in button.go and the
// dispatcher classification must stay in sync.
type Type string

const (
	TypeEvent       Type = "event"
	TypeMedia       Type = "media"
	TypeNews        Type = "news"
	TypeBuy         Type = "buy"
	TypeMarketplace Type = "marketplace"
	TypeInterface   Type = "interface"
	TypeDraw        Type = "draw"
	TypeDonate      Type = "donate"
	TypePrivilege   Type = "privilege"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeEvent, TypeMedia, TypeNews, TypeBuy, TypeMarketplace,
		TypeInterface, TypeDraw, TypeDonate, TypePrivilege:
		return true
	default:
		return false
	}
}

// SupportsVariants reports whether product option selection applies to this
// campaign kind.
func (t Type) SupportsVariants() bool {
	return t == TypeBuy || t == TypeMarketplace
}

// InterfaceSubtype distinguishes interface campaigns that open a survey from
// ones that open a plain web page.
type InterfaceSubtype string

const (
	SubtypeNone   InterfaceSubtype = ""
	SubtypeSurvey InterfaceSubtype = "survey"
	SubtypeWeb    InterfaceSubtype = "web"
)

// PointDirection says whether redeeming spends the caller's points or earns
// new ones.
type PointDirection string

const (
	DirectionSpend PointDirection = "spend"
	DirectionEarn  PointDirection = "earn"
)

// SubVariantKind tags the second selection level, e.g. a size versus a pack
// count.
type SubVariantKind string

const (
	SubVariantSize SubVariantKind = "size"
	SubVariantPack SubVariantKind = "pack"
)

// LoginType classifies the caller for validation. Device login is a valid
// session but counts as anonymous for redemption purposes.
type LoginType string

const (
	LoginAuthenticated LoginType = "user"
	LoginDevice        LoginType = "device"
)

func NewLoginType(s string) (LoginType, error) {
	switch LoginType(s) {
	case LoginAuthenticated, LoginDevice:
		return LoginType(s), nil
	default:
		return "", ErrUnknownLoginType
	}
}

// Reason is a stable identifier explaining why a campaign is not ready to
// use. Callers branch on the code; Message carries the display text.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonNotAuthenticated   Reason = "not_authenticated"
	ReasonInsufficientPoints Reason = "insufficient_points"
	ReasonExpired            Reason = "expired"
	ReasonSoldOut            Reason = "sold_out"
	ReasonMaxPerPerson       Reason = "max_per_person"
	ReasonCoolDown           Reason = "cool_down"
	ReasonConditionInvalid   Reason = "condition_invalid"
	ReasonSponsorOnly        Reason = "sponsor_only"
	ReasonNotStarted         Reason = "not_started"
	ReasonAppVersionExpired  Reason = "app_version_expired"
	ReasonTermsViolation     Reason = "terms_violation"
	ReasonCustom             Reason = "custom"
)

// ReadyToUse is the computed verdict of whether a campaign may be redeemed
// right now. It is derived from a snapshot plus caller context and never
// stored.
type ReadyToUse struct {
	Ready   bool
	Reason  Reason
	Message string
}
