// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/campaign-planner/internal/model"
)

// APIError is the uniform failure for any non-2xx response. No endpoint
// gets its own recovery logic; callers surface Message and move on.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Config carries everything a request needs. The token travels here
// explicitly rather than being read from ambient storage.
type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		http:    httpClient,
		logger:  logger,
	}
}

// ListStrategies fetches the strategies available for linking.
func (c *Client) ListStrategies(ctx context.Context) ([]model.Strategy, error) {
	var out []model.Strategy
	if err := c.do(ctx, http.MethodGet, "/strategy/user", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCampaigns fetches the caller's campaign plans.
func (c *Client) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	var out []model.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCampaign creates a new DRAFT campaign from a resolved payload.
func (c *Client) CreateCampaign(ctx context.Context, payload CampaignPayload) (*model.Campaign, error) {
	var out model.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCampaign replaces the attributes of a DRAFT campaign.
func (c *Client) UpdateCampaign(ctx context.Context, id string, payload CampaignPayload) (*model.Campaign, error) {
	var out model.Campaign
	if err := c.do(ctx, http.MethodPut, "/campaigns/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CampaignDetail is the full record including linked content assets.
type CampaignDetail struct {
	model.Campaign
	ContentAssets []model.ContentAsset `json:"contentAssets"`
}

// GetCampaign fetches full detail for one campaign.
func (c *Client) GetCampaign(ctx context.Context, id string) (*CampaignDetail, error) {
	var out CampaignDetail
	if err := c.do(ctx, http.MethodGet, "/campaigns/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCampaign removes a DRAFT campaign entirely.
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/campaigns/"+id, nil, nil)
}

// SaveContent persists edited preview text as the campaign's content. The
// status route doubles as the content route for backend compatibility.
func (c *Client) SaveContent(ctx context.Context, id, content string) error {
	body := map[string]string{"content": content}
	return c.do(ctx, http.MethodPatch, "/campaigns/"+id+"/status", body, nil)
}

// Preview requests AI-generated draft content for a resolved payload.
func (c *Client) Preview(ctx context.Context, payload CampaignPayload) (string, error) {
	var out struct {
		Preview string `json:"preview"`
	}
	if err := c.do(ctx, http.MethodPost, "/campaigns/preview", payload, &out); err != nil {
		return "", err
	}
	return out.Preview, nil
}

// Launch starts a campaign. A nil scheduledAt launches immediately; a
// timestamp schedules the launch for later. Timestamp validation happens in
// the lifecycle layer before this call is ever issued.
func (c *Client) Launch(ctx context.Context, id string, scheduledAt *time.Time) (*model.Campaign, error) {
	body := map[string]string{}
	if scheduledAt != nil {
		body["scheduledAt"] = scheduledAt.Format(time.RFC3339)
	}
	var out model.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns/launch/"+id, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err == nil && json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return "request failed"
}
