package razorpay

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
	"time"
)

// ErrNotConfigured indicates gateway credentials are missing.
var ErrNotConfigured = errors.New("payment gateway not configured")

// GatewayError carries a sanitized description of a gateway-side failure.
// Credentials never appear in the description.
type GatewayError struct {
	StatusCode  int
	Description string
}

func (e *GatewayError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("gateway error: %s", e.Description)
	}
	return fmt.Sprintf("gateway error: status %d", e.StatusCode)
}

// OrderRequest is the payment-intent creation payload. Amount is in minor
// units (paise).
type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// OrderResponse mirrors the gateway order resource.
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client exposes operations against the payment gateway.
type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)
}

// HTTPClient implements Client via the gateway HTTP API using basic auth.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder registers a payment intent with the gateway and returns the
// gateway order it minted.
func (c *HTTPClient) CreateOrder(ctx context.Context, orderReq OrderRequest) (*OrderResponse, error) {
	if c.keyID == "" || c.keySecret == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(orderReq)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL.JoinPath("/v1/orders")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var data OrderResponse
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		if data.ID == "" {
			return nil, &GatewayError{StatusCode: resp.StatusCode, Description: "empty order id in response"}
		}
		return &data, nil
	default:
		var data errorResponse
		_ = json.Unmarshal(body, &data)
		c.logger.Error("gateway order creation failed",
			slog.Int("status", resp.StatusCode),
			slog.String("code", data.Error.Code),
		)
		return nil, &GatewayError{StatusCode: resp.StatusCode, Description: data.Error.Description}
	}
}
