package codashop

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Order describes one outbound payment-initiation attempt. The price point
// selects the voucher; the variable price is always zero because no purchase
// is ever completed.
type Order struct {
	PricePointID string
	Price        string
	VoucherType  string
	UserID       string
	ZoneID       string
}

// Config controls how the codashop client reaches the upstream storefront.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client submits payment initiations to the codashop storefront. It owns no
// game-specific knowledge; callers supply the complete order.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a codashop client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// InitPayment performs a single form-encoded POST against the payment
// initiation endpoint and decodes the JSON body. Transport failures and
// non-2xx statuses are errors; a well-formed body that merely reports a
// business negative is returned as-is.
func (c *Client) InitPayment(ctx context.Context, order Order) (*InitPaymentResponse, error) {
	req, err := c.buildRequest(ctx, order)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("codashop: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload InitPaymentResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("codashop: decoding response: %w", decodeErr)
	}

	return &payload, nil
}

func (c *Client) buildRequest(ctx context.Context, order Order) (*http.Request, error) {
	form := url.Values{}
	form.Set("voucherPricePoint.id", order.PricePointID)
	form.Set("voucherPricePoint.price", order.Price)
	form.Set("voucherPricePoint.variablePrice", "0")
	form.Set("user.userId", order.UserID)
	form.Set("user.zoneId", order.ZoneID)
	form.Set("voucherTypeName", order.VoucherType)
	form.Set("shopLang", shopLang)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+initPaymentPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", originHeader)
	req.Header.Set("Referer", refererHeader)

	return req, nil
}
