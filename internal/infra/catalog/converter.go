package catalog

import (
	"time"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/pkg/errs"
	"campaign-engine/internal/pkg/text"

	"github.com/jinzhu/copier"
)

// toSnapshot maps the wire payload into the immutable domain snapshot.
// Like-named scalar fields copy mechanically; timestamps, enums and the
// variant tree need explicit handling.
func toSnapshot(dto *campaignDTO) (*campaign.Snapshot, error) {
	snap := &campaign.Snapshot{}
	if err := copier.Copy(snap, dto); err != nil {
		return nil, errs.Wrap(err, "copy campaign fields")
	}

	snap.Type = campaign.Type(dto.Type)
	if !snap.Type.IsValid() {
		// Unknown kinds degrade to the default privilege flow rather than
		// failing the whole detail view.
		snap.Type = campaign.TypePrivilege
	}
	snap.Subtype = campaign.InterfaceSubtype(dto.Subtype)
	snap.PointDirection = campaign.PointDirection(dto.PointDirection)
	if snap.PointDirection != campaign.DirectionEarn {
		snap.PointDirection = campaign.DirectionSpend
	}

	snap.StartTime = time.Unix(dto.StartTime, 0).UTC()
	snap.ExpireTime = time.Unix(dto.ExpireTime, 0).UTC()
	snap.ServerTime = time.Unix(dto.ServerTime, 0).UTC()

	snap.Variants = make([]campaign.VariantOption, 0, len(dto.Variants))
	snap.SubVariants = make(map[string][]campaign.SubVariantOption, len(dto.Variants))
	for _, v := range dto.Variants {
		snap.Variants = append(snap.Variants, campaign.VariantOption{
			ID:       v.ID,
			Name:     v.Name,
			Price:    v.Price,
			Points:   v.Points,
			Quantity: v.Quantity,
		})
		if len(v.SubVariants) == 0 {
			continue
		}
		subs := make([]campaign.SubVariantOption, 0, len(v.SubVariants))
		for _, sv := range v.SubVariants {
			subs = append(subs, campaign.SubVariantOption{
				ID:       sv.ID,
				Name:     sv.Name,
				Kind:     campaign.SubVariantKind(sv.Kind),
				Price:    sv.Price,
				Points:   sv.Points,
				Quantity: sv.Quantity,
			})
		}
		snap.SubVariants[v.ID] = subs
	}

	return snap, nil
}

// toLabels keeps only the role keys the engine knows; anything else in the
// backend table is someone else's concern.
func toLabels(dto *labelsDTO) map[text.Role]string {
	labels := make(map[text.Role]string, len(dto.Labels))
	for key, value := range dto.Labels {
		role := text.Role(key)
		if role.Valid() && value != "" {
			labels[role] = value
		}
	}
	return labels
}
