package queries

import (
	"context"
	"log/slog"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/infra"
	"campaign-engine/internal/metrics"
	"campaign-engine/internal/pkg/errs"
	"campaign-engine/internal/pkg/text"
)

var (
	ErrCampaignNotFound = errs.New("campaign not found")
	ErrCatalogFailed    = errs.New("catalog fetch failed")
)

// CampaignGateway is the narrow contract over the catalog backend. The engine
// consumes the snapshot shape only; transport, auth headers and retries live
// behind this port.
type CampaignGateway interface {
	FetchDetail(ctx context.Context, id int64, locale string) (*campaign.Snapshot, error)
	FetchLabels(ctx context.Context, locale string) (map[text.Role]string, error)
}

// ProfileGateway supplies the caller point balance the snapshot does not
// carry.
type ProfileGateway interface {
	PointBalance(ctx context.Context, token string) (int, error)
}

// SnapshotCache is a read-through cache over detail fetches. A miss is
// (nil, nil), not an error.
type SnapshotCache interface {
	Get(ctx context.Context, id int64, locale string) (*campaign.Snapshot, error)
	Set(ctx context.Context, locale string, snap *campaign.Snapshot) error
}

// Viewer identifies the caller of a detail view for validation purposes.
type Viewer struct {
	LoginType campaign.LoginType
	Token     string
}

// DetailView is everything a detail screen needs in one read: the snapshot,
// the readiness verdict for this viewer, and the resolved UI action.
type DetailView struct {
	Snapshot *campaign.Snapshot
	Ready    campaign.ReadyToUse
	Button   campaign.Button
}

type CampaignQueries interface {
	// Detail serves from cache when possible.
	Detail(ctx context.Context, id int64, locale string, viewer Viewer) (*DetailView, error)
	// FreshDetail always hits the catalog; used by session refresh so a reload
	// never re-serves the snapshot it is trying to replace.
	FreshDetail(ctx context.Context, id int64, locale string, viewer Viewer) (*DetailView, error)
	Labels(ctx context.Context, locale string) (map[text.Role]string, error)
}

type campaignQueriesImpl struct {
	gateway CampaignGateway
	profile ProfileGateway
	cache   SnapshotCache
	engine  *campaign.Engine
	logger  *slog.Logger
}

func NewCampaignQueries(
	gateway CampaignGateway,
	profile ProfileGateway,
	cache SnapshotCache,
	engine *campaign.Engine,
	logger *slog.Logger,
) CampaignQueries {
	return &campaignQueriesImpl{
		gateway: gateway,
		profile: profile,
		cache:   cache,
		engine:  engine,
		logger:  logger,
	}
}

func (q *campaignQueriesImpl) Detail(ctx context.Context, id int64, locale string, viewer Viewer) (*DetailView, error) {
	snap, err := q.cachedSnapshot(ctx, id, locale)
	if err != nil {
		return nil, err
	}
	return q.buildView(ctx, snap, viewer)
}

func (q *campaignQueriesImpl) FreshDetail(ctx context.Context, id int64, locale string, viewer Viewer) (*DetailView, error) {
	snap, err := q.fetchSnapshot(ctx, id, locale)
	if err != nil {
		return nil, err
	}
	return q.buildView(ctx, snap, viewer)
}

func (q *campaignQueriesImpl) Labels(ctx context.Context, locale string) (map[text.Role]string, error) {
	labels, err := q.gateway.FetchLabels(ctx, locale)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogFailed)
	}
	return labels, nil
}

func (q *campaignQueriesImpl) cachedSnapshot(ctx context.Context, id int64, locale string) (*campaign.Snapshot, error) {
	snap, err := q.cache.Get(ctx, id, locale)
	if err != nil {
		// Cache trouble degrades to a catalog fetch, never to a failed read.
		q.logger.Warn("snapshot cache read failed", "campaign_id", id, "error", err)
	}
	if snap != nil {
		metrics.RecordSnapshotCache("hit")
		return snap, nil
	}
	metrics.RecordSnapshotCache("miss")
	return q.fetchSnapshot(ctx, id, locale)
}

func (q *campaignQueriesImpl) fetchSnapshot(ctx context.Context, id int64, locale string) (*campaign.Snapshot, error) {
	snap, err := q.gateway.FetchDetail(ctx, id, locale)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, errs.Mark(err, ErrCatalogFailed)
	}

	if cacheErr := q.cache.Set(ctx, locale, snap); cacheErr != nil {
		q.logger.Warn("snapshot cache write failed", "campaign_id", id, "error", cacheErr)
	}
	return snap, nil
}

func (q *campaignQueriesImpl) buildView(ctx context.Context, snap *campaign.Snapshot, viewer Viewer) (*DetailView, error) {
	points := 0
	if viewer.LoginType == campaign.LoginAuthenticated {
		balance, err := q.profile.PointBalance(ctx, viewer.Token)
		if err != nil {
			return nil, errs.Mark(err, ErrCatalogFailed)
		}
		points = balance
	}

	ready := q.engine.Evaluate(snap, campaign.Context{LoginType: viewer.LoginType, Points: points})
	metrics.RecordValidationOutcome(string(ready.Reason), ready.Ready)

	return &DetailView{
		Snapshot: snap,
		Ready:    ready,
		Button:   campaign.ResolveButton(snap),
	}, nil
}
