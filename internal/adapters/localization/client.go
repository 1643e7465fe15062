// Package localization resolves conversion rates from a peer landed cost service instance.
package localization

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/landed_cost_service/internal/apperrors"
	"github.com/SscSPs/landed_cost_service/internal/core/domain"
	portssvc "github.com/SscSPs/landed_cost_service/internal/core/ports/services"
	"github.com/SscSPs/landed_cost_service/pkg/json"
	"github.com/shopspring/decimal"
)

var _ portssvc.RateLookup = (*Client)(nil)

// Client implements portssvc.RateLookup over the peer's GET /api/v1/currency route.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a remote rate lookup. endpoint is the peer's origin, e.g. http://localization:8080.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type currencyEnvelope struct {
	Data *struct {
		BaseCode       string           `json:"baseCode"`
		TargetCode     string           `json:"targetCode"`
		ConversionRate *decimal.Decimal `json:"conversionRate"`
	} `json:"data"`
}

func (c *Client) ConversionRate(ctx context.Context, baseCode, targetCode domain.CurrencyCode) (decimal.Decimal, error) {
	if baseCode == targetCode {
		return decimal.NewFromInt(1), nil
	}

	q := url.Values{}
	q.Set("baseCode", baseCode.String())
	q.Set("targetCode", targetCode.String())
	endpoint := c.baseURL + "/api/v1/currency?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, apperrors.NewExternalError("currency lookup request failed", err)
	}
	defer resp.Body.Close()

	notFound := apperrors.NewNotFoundError(fmt.Sprintf("no conversion rate found for %s to %s", baseCode, targetCode))
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return decimal.Zero, notFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, apperrors.NewExternalError("currency lookup failed",
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var envelope currencyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return decimal.Zero, apperrors.NewExternalError("failed to decode currency lookup response", err)
	}
	if envelope.Data == nil {
		return decimal.Zero, notFound
	}
	if envelope.Data.ConversionRate == nil {
		return decimal.Zero, apperrors.NewExternalError("currency lookup response has no rate",
			fmt.Errorf("%s->%s", baseCode, targetCode))
	}
	return *envelope.Data.ConversionRate, nil
}
