package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/okatev/shopflow/internal/domain/model"
)

// ErrInsufficientStock indicates the reservation service cannot hold the
// requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// Client exposes operations of the stock reservation service.
type Client interface {
	ReserveStock(ctx context.Context, productID string, quantity int, orderContextID string) (*model.Reservation, error)
	ConfirmReservation(ctx context.Context, reservationID string) error
	ReleaseStock(ctx context.Context, reservationID string) (bool, error)
}

// HTTPClient implements Client via the reservation service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type reserveRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	OrderID   string `json:"order_id"`
}

type reserveResponse struct {
	ReservationID string `json:"reservation_id"`
}

// NewHTTPClient creates an HTTP reservation client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse inventory url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("inventory url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// ReserveStock places a hold on stock scoped to one order attempt.
func (c *HTTPClient) ReserveStock(ctx context.Context, productID string, quantity int, orderContextID string) (*model.Reservation, error) {
	body, err := json.Marshal(reserveRequest{ProductID: productID, Quantity: quantity, OrderID: orderContextID})
	if err != nil {
		return nil, err
	}

	resp, err := c.post(ctx, "/api/reservations", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var data reserveResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, err
		}
		return &model.Reservation{ID: data.ReservationID, ProductID: productID, Quantity: quantity}, nil
	case http.StatusConflict:
		return nil, fmt.Errorf("product %s: %w", productID, ErrInsufficientStock)
	default:
		return nil, c.unexpectedStatus("reserve stock", resp)
	}
}

// ConfirmReservation finalizes a hold so it can no longer be released.
func (c *HTTPClient) ConfirmReservation(ctx context.Context, reservationID string) error {
	resp, err := c.post(ctx, path.Join("/api/reservations", reservationID, "confirm"), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.unexpectedStatus("confirm reservation", resp)
	}
	return nil
}

// ReleaseStock frees a hold. A missing reservation is reported as an
// unsuccessful release, not an error.
func (c *HTTPClient) ReleaseStock(ctx context.Context, reservationID string) (bool, error) {
	resp, err := c.post(ctx, path.Join("/api/reservations", reservationID, "release"), nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, c.unexpectedStatus("release stock", resp)
	}
}

func (c *HTTPClient) post(ctx context.Context, endpointPath string, body []byte) (*http.Response, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

func (c *HTTPClient) unexpectedStatus(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	c.logger.Error("inventory request failed",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	)
	return fmt.Errorf("%s: inventory error: %s", op, resp.Status)
}
