// Package nutrition calls the external image-analysis service.
//
// The service examines a food image and returns a structured
// nutrition/safety report. Its schema belongs to the service; this client
// passes the report through untouched and the lifecycle never depends on
// its contents.
package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Client is a thin pass-through client for the analysis endpoint.
type Client struct {
	endpoint string
	apiKey   string
	httpc    *http.Client
	log      *zap.Logger
}

// New creates a client for the given endpoint. httpc may be nil, in which
// case http.DefaultClient is used; per-call deadlines come from ctx.
func New(endpoint, apiKey string, httpc *http.Client, logger *zap.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{endpoint: endpoint, apiKey: apiKey, httpc: httpc, log: logger}
}

// Enabled reports whether an analysis endpoint is configured.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

type analyzeRequest struct {
	ImageRef string `json:"image_ref"`
}

// Analyze submits the image reference and returns the service's report
// verbatim. The report is opaque: callers display it, nothing more.
func (c *Client) Analyze(ctx context.Context, imageRef string) (json.RawMessage, error) {
	body, err := json.Marshal(analyzeRequest{ImageRef: imageRef})
	if err != nil {
		return nil, fmt.Errorf("encode analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analysis service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Warn("analysis service returned error",
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("analysis service status %d", resp.StatusCode)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("analysis service returned invalid JSON")
	}
	return json.RawMessage(raw), nil
}
