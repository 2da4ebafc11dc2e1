// Package catalog implements the gateway ports over the campaign catalog
// backend's HTTP API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"campaign-engine/internal/domain/campaign"
	"campaign-engine/internal/infra"
	"campaign-engine/internal/pkg/config"
	"campaign-engine/internal/pkg/text"
	"campaign-engine/internal/usecase/commands"
)

// Client talks to the catalog backend. It satisfies queries.CampaignGateway,
// queries.ProfileGateway and commands.RedemptionGateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(cfg config.CatalogConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

func (c *Client) FetchDetail(ctx context.Context, id int64, locale string) (*campaign.Snapshot, error) {
	url := fmt.Sprintf("%s/campaigns/%d?locale=%s", c.baseURL, id, locale)

	var dto campaignDTO
	if err := c.get(ctx, url, "", &dto); err != nil {
		return nil, err
	}
	return toSnapshot(&dto)
}

func (c *Client) FetchLabels(ctx context.Context, locale string) (map[text.Role]string, error) {
	url := fmt.Sprintf("%s/labels?locale=%s", c.baseURL, locale)

	var dto labelsDTO
	if err := c.get(ctx, url, "", &dto); err != nil {
		return nil, err
	}
	return toLabels(&dto), nil
}

func (c *Client) PointBalance(ctx context.Context, token string) (int, error) {
	url := c.baseURL + "/me"

	var dto profileDTO
	if err := c.get(ctx, url, token, &dto); err != nil {
		return 0, err
	}
	return dto.Points, nil
}

func (c *Client) Submit(ctx context.Context, req commands.RedeemRequest) (*commands.RedeemResult, error) {
	url := fmt.Sprintf("%s/campaigns/%d/redeem", c.baseURL, req.CampaignID)

	body, err := json.Marshal(redeemRequestDTO{
		CampaignID:   req.CampaignID,
		VariantID:    req.VariantID,
		SubVariantID: req.SubVariantID,
		AddressID:    req.AddressID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "marshal redeem request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "build redeem request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.setHeaders(httpReq, req.Token)

	var dto redeemResponseDTO
	if err := c.do(httpReq, &dto); err != nil {
		return nil, err
	}

	return &commands.RedeemResult{
		RedeemKey:    dto.RedeemKey,
		Code:         dto.Code,
		PointsEarned: dto.PointsEarned,
		CartURL:      dto.CartURL,
		WebsiteURL:   dto.WebsiteURL,
	}, nil
}

func (c *Client) get(ctx context.Context, url, token string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "build catalog request", err)
	}
	c.setHeaders(httpReq, token)
	return c.do(httpReq, out)
}

func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("X-Api-Key", c.apiKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "catalog request failed", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, "catalog resource not found", nil)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return infra.WrapGatewayErr(c.logger, infra.KindUnauthorized, "catalog rejected credentials", nil)
	case resp.StatusCode >= 500:
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable,
			fmt.Sprintf("catalog returned %d", resp.StatusCode), nil)
	case resp.StatusCode >= 400:
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse,
			fmt.Sprintf("catalog returned %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "read catalog response", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindBadResponse, "decode catalog response", err)
	}
	return nil
}
