package webhook

import (
	"context"
	"time"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/adforgehq/adforge/config"
)

// Response is the structured reply of a generation workflow. Either section
// may be absent; present sections are loose maps because the upstream
// producers do not share a canonical serialization.
type Response struct {
	Product map[string]interface{} `json:"product"`
	Avatar  map[string]interface{} `json:"avatar"`
}

// Request is the outbound payload handed to the workflow.
type Request struct {
	Action     string `json:"action"`
	Prompt     string `json:"prompt,omitempty"`
	ProductURL string `json:"productUrl,omitempty"`
}

// Client posts generation requests to the configured webhook workflow.
type Client struct {
	url     string
	timeout time.Duration
}

func NewClient(cfg config.WebhookConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{url: cfg.GenerateURL, timeout: timeout}
}

// Generate posts the request and decodes the workflow reply.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	if c.url == "" {
		return nil, errors.New("webhook generate_url is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var resp Response
	var code int
	err := gout.POST(c.url).
		WithContext(ctx).
		SetJSON(req).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "webhook request failed")
	}
	if code >= 300 {
		return nil, errors.Errorf("webhook returned status %d", code)
	}
	zap.S().Debugf("webhook %s action=%s product=%v avatar=%v",
		c.url, req.Action, resp.Product != nil, resp.Avatar != nil)
	return &resp, nil
}
