// Package fxapi fetches live conversion rates from a freecurrencyapi compatible endpoint.
package fxapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/pkg/json"
	"github.com/shopspring/decimal"
)

// maxErrorBody caps how much of a failed response is copied into the error.
const maxErrorBody = 512

var _ portssvc.LiveRateProvider = (*Client)(nil)

// Client implements portssvc.LiveRateProvider.
type Client struct {
	host   string
	apiKey string
	client *http.Client
}

// NewClient creates a live rate client. host is the full latest-rates URL.
func NewClient(host, apiKey string, timeout time.Duration) *Client {
	return &Client{
		host:   host,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type latestResponse struct {
	Data map[string]decimal.Decimal `json:"data"`
}

// LatestRate returns how many units of targetCode one unit of baseCode buys right now.
func (c *Client) LatestRate(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (decimal.Decimal, error) {
	endpoint, err := url.Parse(c.host)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid live rate host %q: %w", c.host, err)
	}
	q := endpoint.Query()
	q.Set("apikey", c.apiKey)
	q.Set("base_currency", baseCode.String())
	q.Set("currencies", targetCode.String())
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, apperrors.NewExternalError("live rate request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decimal.Zero, apperrors.NewExternalError("live rate provider error",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Zero, apperrors.NewExternalError("failed to decode live rate response", err)
	}
	if result.Data == nil {
		return decimal.Zero, apperrors.NewExternalError("live rate response has no data", fmt.Errorf("base %s", baseCode))
	}
	rate, ok := result.Data[targetCode.String()]
	if !ok {
		return decimal.Zero, apperrors.NewExternalError("live rate response is missing the target currency",
			fmt.Errorf("%s not in response for base %s", targetCode, baseCode))
	}
	return rate, nil
}
