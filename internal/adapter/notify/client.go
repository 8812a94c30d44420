package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/okatev/shopflow/internal/notification"
)

// HTTPClient delivers notifications through the platform notification
// service HTTP API. It implements notification.Dispatcher.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type sendRequest struct {
	Recipient string               `json:"recipient"`
	Type      string               `json:"type"`
	Data      notification.Payload `json:"data"`
}

// NewHTTPClient creates an HTTP notification client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notification url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notification url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts a typed notification to the recipient address.
func (c *HTTPClient) Send(ctx context.Context, recipient string, kind notification.Kind, payload notification.Payload) error {
	body, err := json.Marshal(sendRequest{Recipient: recipient, Type: string(kind), Data: payload})
	if err != nil {
		return err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/notifications")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("notification request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)
		return fmt.Errorf("notification error: %s", resp.Status)
	}
	return nil
}
