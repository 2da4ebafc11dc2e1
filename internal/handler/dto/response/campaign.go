package response

import (
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/domain/selection"
	"campaign-engine/internal/pkg/ptr"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/internal/usecase/commands"
	"campaign-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type DetailResponse struct {
	SessionID uuid.UUID        `json:"sessionId"`
	Campaign  CampaignResponse `json:"campaign"`
	Ready     ReadyResponse    `json:"ready"`
	Button    ButtonResponse   `json:"button"`
}

type CampaignResponse struct {
	ID                int64            `json:"id"`
	Type              string           `json:"type"`
	Name              string           `json:"name"`
	QuantityAvailable int              `json:"quantityAvailable"`
	PointsPerUnit     int              `json:"pointsPerUnit"`
	PricePerUnit      float64          `json:"pricePerUnit"`
	ExpireTime        time.Time        `json:"expireTime"`
	RemainingDays     int              `json:"remainingDays"`
	RequiresDelivery  bool             `json:"requiresDelivery"`
	PointDirection    string           `json:"pointDirection"`
	Variants          []VariantOption  `json:"variants,omitempty"`
	SubVariants       map[string][]SubVariantOption `json:"subVariants,omitempty"`
}

type VariantOption struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Points   int     `json:"points"`
	Quantity int     `json:"quantity"`
}

type SubVariantOption struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Price    float64 `json:"price"`
	Points   int     `json:"points"`
	Quantity int     `json:"quantity"`
}

type ReadyResponse struct {
	IsReady bool   `json:"isReady"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// ButtonResponse is the UI action with labels already resolved through the
// active text table.
type ButtonResponse struct {
	Kind           string `json:"kind"`
	Label          string `json:"label,omitempty"`
	SecondaryLabel string `json:"secondaryLabel,omitempty"`
}

type SelectionResponse struct {
	VariantID    *string `json:"variantId,omitempty"`
	SubVariantID *string `json:"subVariantId,omitempty"`
	AddressID    *string `json:"addressId,omitempty"`
	Quantity     int     `json:"quantity"`
}

type NextStepResponse struct {
	Kind        string `json:"kind"`
	RedeemKey   string `json:"redeemKey,omitempty"`
	Code        string `json:"code,omitempty"`
	Points      int    `json:"points,omitempty"`
	CartURL     string `json:"cartUrl,omitempty"`
	URL         string `json:"url,omitempty"`
	WebsiteKind string `json:"websiteKind,omitempty"`
}

func FromDetailView(sessionID uuid.UUID, view *queries.DetailView, tbl *text.Table) *DetailResponse {
	return &DetailResponse{
		SessionID: sessionID,
		Campaign:  fromSnapshot(view.Snapshot),
		Ready: ReadyResponse{
			IsReady: view.Ready.Ready,
			Reason:  string(view.Ready.Reason),
			Message: view.Ready.Message,
		},
		Button: FromButton(view.Button, tbl),
	}
}

func fromSnapshot(snap *campaign.Snapshot) CampaignResponse {
	resp := CampaignResponse{
		ID:                snap.ID,
		Type:              snap.Type.String(),
		Name:              snap.Name,
		QuantityAvailable: snap.QuantityAvailable,
		PointsPerUnit:     snap.PointsPerUnit,
		PricePerUnit:      snap.PricePerUnit,
		ExpireTime:        snap.ExpireTime,
		RemainingDays:     snap.RemainingDays(),
		RequiresDelivery:  snap.RequiresDelivery,
		PointDirection:    string(snap.PointDirection),
	}

	for _, v := range snap.Variants {
		resp.Variants = append(resp.Variants, VariantOption(v))
	}
	if len(snap.SubVariants) > 0 {
		resp.SubVariants = make(map[string][]SubVariantOption, len(snap.SubVariants))
		for variantID, subs := range snap.SubVariants {
			out := make([]SubVariantOption, 0, len(subs))
			for _, sv := range subs {
				out = append(out, SubVariantOption{
					ID:       sv.ID,
					Name:     sv.Name,
					Kind:     string(sv.Kind),
					Price:    sv.Price,
					Points:   sv.Points,
					Quantity: sv.Quantity,
				})
			}
			resp.SubVariants[variantID] = out
		}
	}
	return resp
}

func FromButton(btn campaign.Button, tbl *text.Table) ButtonResponse {
	switch b := btn.(type) {
	case campaign.NoButton:
		return ButtonResponse{Kind: "none"}
	case campaign.RedeemButton:
		return ButtonResponse{Kind: "redeem", Label: tbl.Get(b.Label)}
	case campaign.ShoppingButton:
		return ButtonResponse{Kind: "shopping", Label: tbl.Get(b.Primary), SecondaryLabel: secondary(b.Secondary, tbl)}
	case campaign.ShoppingStyledButton:
		return ButtonResponse{Kind: "shopping_styled", Label: tbl.Get(b.Primary), SecondaryLabel: secondary(b.Secondary, tbl)}
	case campaign.AddressButton:
		return ButtonResponse{Kind: "address", Label: tbl.Get(b.Label)}
	case campaign.QuantityButton:
		return ButtonResponse{Kind: "quantity", Label: tbl.Get(b.Label)}
	default:
		return ButtonResponse{Kind: "none"}
	}
}

func secondary(role text.Role, tbl *text.Table) string {
	if role == "" {
		return ""
	}
	return tbl.Get(role)
}

func FromSelection(sel *selection.State) SelectionResponse {
	resp := SelectionResponse{Quantity: sel.Quantity()}
	if v := sel.Variant(); v != nil {
		resp.VariantID = ptr.To(v.ID)
	}
	if sv := sel.SubVariant(); sv != nil {
		resp.SubVariantID = ptr.To(sv.ID)
	}
	if a := sel.Address(); a != nil {
		resp.AddressID = ptr.To(a.ID)
	}
	return resp
}

func FromNextStep(step commands.NextStep) NextStepResponse {
	switch s := step.(type) {
	case commands.ShowCode:
		return NextStepResponse{Kind: "show_code", RedeemKey: s.RedeemKey, Code: s.Code}
	case commands.ShowPointsEarned:
		return NextStepResponse{Kind: "show_points_earned", RedeemKey: s.RedeemKey, Points: s.Points}
	case commands.ShowDrawSuccess:
		return NextStepResponse{Kind: "show_draw_success", RedeemKey: s.RedeemKey, Code: s.Code, Points: s.Points}
	case commands.ShowAddToCartSuccess:
		return NextStepResponse{Kind: "show_add_to_cart_success", CartURL: s.CartURL}
	case commands.OpenWebsite:
		return NextStepResponse{Kind: "open_website", URL: s.URL, WebsiteKind: string(s.Kind)}
	default:
		return NextStepResponse{Kind: "show_code"}
	}
}
