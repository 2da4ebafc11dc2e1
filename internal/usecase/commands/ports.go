package commands

import "context"

// RedeemRequest is the single redemption call carrying everything the
// multi-step selection produced.
type RedeemRequest struct {
	CampaignID   int64
	VariantID    string
	SubVariantID string
	AddressID    string
	Quantity     int
	Token        string
}

// RedeemResult is the raw backend response reduced to the fields NextStep
// classification needs. Anything the backend did not send stays zero.
type RedeemResult struct {
	RedeemKey    string
	Code         string
	PointsEarned int
	CartURL      string
	WebsiteURL   string
}

// RedemptionGateway submits a redemption to the backend. Transport errors
// come back unmodified; retry policy is the transport's business, not ours.
type RedemptionGateway interface {
	Submit(ctx context.Context, req RedeemRequest) (*RedeemResult, error)
}
