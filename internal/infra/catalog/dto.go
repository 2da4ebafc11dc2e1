package catalog

// Wire shapes of the catalog backend. Field names follow the backend payload;
// the converter owns the mapping into domain values.

type campaignDTO struct {
	ID                    int64        `json:"id"`
	Type                  string       `json:"type"`
	Subtype               string       `json:"subtype,omitempty"`
	Name                  string       `json:"name"`
	QuantityAvailable     int          `json:"quantity"`
	ItemsSold             int          `json:"sold"`
	RedeemLimitPerPerson  int          `json:"redeem_most_per_person"`
	RedeemLimitTotal      int          `json:"redeem_most"`
	PointsPerUnit         int          `json:"points_per_unit"`
	PricePerUnit          float64      `json:"price_per_unit"`
	StartTime             int64        `json:"start_time"`   // unix seconds
	ExpireTime            int64        `json:"expire_time"`  // unix seconds
	ServerTime            int64        `json:"current_time"` // unix seconds, backend clock
	ConditionPassed       bool         `json:"condition_pass"`
	ConditionAlertCode    string       `json:"condition_alert_id,omitempty"`
	ConditionAlertMessage string       `json:"condition_alert_message,omitempty"`
	RequiresDelivery      bool         `json:"delivered"`
	PointDirection        string       `json:"point_direction"`
	Website               string       `json:"website,omitempty"`
	Variants              []variantDTO `json:"variants,omitempty"`
}

type variantDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Points      int             `json:"points"`
	Quantity    int             `json:"quantity"`
	SubVariants []subVariantDTO `json:"sub_variants,omitempty"`
}

type subVariantDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Price    float64 `json:"price"`
	Points   int     `json:"points"`
	Quantity int     `json:"quantity"`
}

type redeemRequestDTO struct {
	CampaignID   int64  `json:"campaign_id"`
	VariantID    string `json:"variant_id,omitempty"`
	SubVariantID string `json:"sub_variant_id,omitempty"`
	AddressID    string `json:"address_id,omitempty"`
	Quantity     int    `json:"quantity"`
}

type redeemResponseDTO struct {
	RedeemKey    string `json:"redeem_key"`
	Code         string `json:"serial,omitempty"`
	PointsEarned int    `json:"points,omitempty"`
	CartURL      string `json:"cart_url,omitempty"`
	WebsiteURL   string `json:"website,omitempty"`
}

type profileDTO struct {
	Points int `json:"points"`
}

type labelsDTO struct {
	Labels map[string]string `json:"labels"`
}
