package commands

import (
	"context"
	"errors"
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/domain/selection"
	"campaign-engine/internal/metrics"
	"campaign-engine/internal/pkg/clock"
	"campaign-engine/internal/pkg/errs"
	"campaign-engine/internal/usecase/shared"
)

// Local rejections. Each is a distinct stable value so callers can branch on
// the exact precondition that failed; none of them reach the network.
var (
	ErrTokenRequired      = errs.New("token required")
	ErrInvalidVariant     = errs.New("variant selection required")
	ErrSubVariantRequired = errs.New("sub-variant selection required")
	ErrAddressRequired    = errs.New("address selection required")
	ErrInvalidQuantity    = errs.New("invalid quantity")
	ErrRedeemInFlight     = errs.New("redemption already in flight")
)

// ErrorCode maps a redeem rejection to its stable wire code. Unrecognized
// errors are transport/backend failures passed through by the dispatcher.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrTokenRequired):
		return "token_required"
	case errors.Is(err, ErrInvalidVariant):
		return "invalid_variant"
	case errors.Is(err, ErrSubVariantRequired):
		return "sub_variant_required"
	case errors.Is(err, ErrAddressRequired):
		return "address_required"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, ErrRedeemInFlight):
		return "redeem_in_flight"
	default:
		return ""
	}
}

type RedeemCommands interface {
	Redeem(ctx context.Context, sess *shared.Session, token string) (NextStep, error)
}

type redeemUseCaseImpl struct {
	gateway RedemptionGateway
	clock   clock.Clock
}

func NewRedeemUseCase(gateway RedemptionGateway, clk clock.Clock) RedeemCommands {
	return &redeemUseCaseImpl{gateway: gateway, clock: clk}
}

// Redeem validates selection completeness locally, claims the session's
// in-flight slot, submits once, and classifies the response into a NextStep.
func (u *redeemUseCaseImpl) Redeem(ctx context.Context, sess *shared.Session, token string) (NextStep, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	var req RedeemRequest
	err := sess.Update(func(snap *campaign.Snapshot, sel *selection.State) error {
		if precondErr := checkSelection(snap, sel); precondErr != nil {
			return precondErr
		}
		req = buildRequest(snap, sel, token)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !sess.BeginRedeem() {
		return nil, ErrRedeemInFlight
	}
	defer sess.EndRedeem()

	start := u.clock.Now()
	result, err := u.gateway.Submit(ctx, req)
	if err != nil {
		metrics.RecordRedeemDuration("failure", time.Since(start).Seconds())
		// Backend failures pass through unmodified; the guard above is already
		// released by the defer, so the caller may retry.
		return nil, errs.Wrap(err, "submit redemption")
	}
	metrics.RecordRedeemDuration("success", time.Since(start).Seconds())

	return classify(sess.Snapshot(), result), nil
}

// checkSelection enforces the per-button completeness rules in a fixed
// order. Each failure returns before any network call.
func checkSelection(snap *campaign.Snapshot, sel *selection.State) error {
	switch campaign.ResolveButton(snap).(type) {
	case campaign.ShoppingStyledButton, campaign.ShoppingButton:
		if snap.Type == campaign.TypeBuy && snap.HasVariants() {
			variant := sel.Variant()
			if variant == nil {
				return ErrInvalidVariant
			}
			if len(snap.SubVariantsOf(variant.ID)) > 0 && sel.SubVariant() == nil {
				return ErrSubVariantRequired
			}
		}
	case campaign.AddressButton:
		if sel.Address() == nil {
			return ErrAddressRequired
		}
	}

	if sel.Quantity() < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

func buildRequest(snap *campaign.Snapshot, sel *selection.State, token string) RedeemRequest {
	req := RedeemRequest{
		CampaignID: snap.ID,
		Quantity:   sel.Quantity(),
		Token:      token,
	}
	if v := sel.Variant(); v != nil {
		req.VariantID = v.ID
	}
	if sv := sel.SubVariant(); sv != nil {
		req.SubVariantID = sv.ID
	}
	if a := sel.Address(); a != nil {
		req.AddressID = a.ID
	}
	return req
}

// classify picks exactly one NextStep from the raw response. The branching
// follows the same campaign-type taxonomy as the button resolver; changing
// one table means auditing the other.
func classify(snap *campaign.Snapshot, result *RedeemResult) NextStep {
	switch snap.Type {
	case campaign.TypeBuy, campaign.TypeMarketplace:
		return ShowAddToCartSuccess{CartURL: result.CartURL}
	case campaign.TypeDonate, campaign.TypeDraw:
		return ShowDrawSuccess{
			RedeemKey: result.RedeemKey,
			Code:      result.Code,
			Points:    result.PointsEarned,
		}
	case campaign.TypeInterface, campaign.TypeMedia:
		return OpenWebsite{URL: websiteURL(snap, result), Kind: websiteKind(snap)}
	}

	if snap.PointDirection == campaign.DirectionEarn {
		return ShowPointsEarned{RedeemKey: result.RedeemKey, Points: result.PointsEarned}
	}
	return ShowCode{RedeemKey: result.RedeemKey, Code: result.Code}
}

func websiteURL(snap *campaign.Snapshot, result *RedeemResult) string {
	if result.WebsiteURL != "" {
		return result.WebsiteURL
	}
	return snap.Website
}

func websiteKind(snap *campaign.Snapshot) WebsiteKind {
	if snap.Subtype == campaign.SubtypeSurvey {
		return WebsiteSurvey
	}
	return WebsiteLink
}
