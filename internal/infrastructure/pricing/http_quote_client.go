// Package pricing talks to the authoritative configurator price endpoint.
package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single price request.
const DefaultTimeout = 10 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

type quoteRequestBody struct {
	ProductID         int64          `json:"productId"`
	CustomDimensions  dimensionsBody `json:"customDimensions"`
	SelectedOptionIDs []int64        `json:"selectedOptionIds"`
	SelectedAddonIDs  []int64        `json:"selectedAddonIds"`
}

type dimensionsBody struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

type quoteResponseBody struct {
	BasePriceCZK      decimal.Decimal            `json:"basePriceCZK"`
	BasePriceEUR      decimal.Decimal            `json:"basePriceEUR"`
	DesignPriceCZK    decimal.Decimal            `json:"designPriceCZK"`
	DesignPriceEUR    decimal.Decimal            `json:"designPriceEUR"`
	GlazePriceCZK     decimal.Decimal            `json:"glazePriceCZK"`
	GlazePriceEUR     decimal.Decimal            `json:"glazePriceEUR"`
	RoofColorPriceCZK decimal.Decimal            `json:"roofColorPriceCZK"`
	RoofColorPriceEUR decimal.Decimal            `json:"roofColorPriceEUR"`
	AddonPricesCZK    map[string]decimal.Decimal `json:"addonPricesCZK"`
	AddonPricesEUR    map[string]decimal.Decimal `json:"addonPricesEUR"`
	TotalPriceCZK     decimal.NullDecimal        `json:"totalPriceCZK"`
	TotalPriceEUR     decimal.NullDecimal        `json:"totalPriceEUR"`
	ErrorMessage      *string                    `json:"errorMessage"`
}

// HTTPQuoteClient posts configurations to the calculate-price endpoint.
type HTTPQuoteClient struct {
	httpClient *http.Client
	url        string
	log        *zap.Logger
}

var _ interfaces.IPriceQuoteClient = (*HTTPQuoteClient)(nil)

// NewHTTPQuoteClient builds a client for url. A nil httpClient gets a
// default one with DefaultTimeout.
func NewHTTPQuoteClient(url string, httpClient *http.Client) *HTTPQuoteClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPQuoteClient{httpClient: httpClient, url: url, log: logging.Named("pricing")}
}

func (c *HTTPQuoteClient) Quote(ctx context.Context, req entities.QuoteRequest) (entities.PriceQuote, error) {
	body := quoteRequestBody{
		ProductID: req.ProductID,
		CustomDimensions: dimensionsBody{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		},
		SelectedOptionIDs: nonNil(req.SelectedOptionIDs),
		SelectedAddonIDs:  nonNil(req.SelectedAddonIDs),
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return entities.PriceQuote{}, entities.NewCalculationError(entities.CalculationErrorValidation, "cannot encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return entities.PriceQuote{}, entities.NewCalculationError(entities.CalculationErrorTransport, "cannot build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn("[pricing][client] request failed", zap.String("url", c.url), zap.Error(err))
		return entities.PriceQuote{}, entities.NewCalculationError(entities.CalculationErrorTransport, "price service unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return entities.PriceQuote{}, entities.NewCalculationError(entities.CalculationErrorTransport, "cannot read response", err)
	}

	var out quoteResponseBody
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && out.ErrorMessage != nil && strings.TrimSpace(*out.ErrorMessage) != "" {
			msg = strings.TrimSpace(*out.ErrorMessage)
		}
		c.log.Warn("[pricing][client] non-2xx response", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		ce := entities.NewCalculationError(entities.CalculationErrorHTTP, msg, nil)
		ce.StatusCode = resp.StatusCode
		return entities.PriceQuote{}, ce
	}
	if decodeErr != nil {
		return entities.PriceQuote{}, entities.NewCalculationError(entities.CalculationErrorMalformed, "malformed price response", decodeErr)
	}
	if out.ErrorMessage != nil && strings.TrimSpace(*out.ErrorMessage) != "" {
		return entities.PriceQuote{}, entities.NewCalculationError(entities.CalculationErrorServer, strings.TrimSpace(*out.ErrorMessage), nil)
	}
	if !out.TotalPriceCZK.Valid && !out.TotalPriceEUR.Valid {
		return entities.PriceQuote{}, entities.NewCalculationError(entities.CalculationErrorMalformed, "price response without totals", nil)
	}

	return out.toQuote(), nil
}

func (b quoteResponseBody) toQuote() entities.PriceQuote {
	q := entities.PriceQuote{
		Base: entities.Prices{CZK: b.BasePriceCZK, EUR: b.BasePriceEUR},
		Options: map[entities.OptionKind]entities.Prices{
			entities.OptionDesign:    {CZK: b.DesignPriceCZK, EUR: b.DesignPriceEUR},
			entities.OptionGlaze:     {CZK: b.GlazePriceCZK, EUR: b.GlazePriceEUR},
			entities.OptionRoofColor: {CZK: b.RoofColorPriceCZK, EUR: b.RoofColorPriceEUR},
		},
		Total: entities.Prices{CZK: b.TotalPriceCZK.Decimal, EUR: b.TotalPriceEUR.Decimal},
	}

	names := make(map[string]struct{}, len(b.AddonPricesCZK)+len(b.AddonPricesEUR))
	for name := range b.AddonPricesCZK {
		names[name] = struct{}{}
	}
	for name := range b.AddonPricesEUR {
		names[name] = struct{}{}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	for _, name := range sorted {
		q.Addons = append(q.Addons, entities.AddonQuote{
			Name:  name,
			Price: entities.Prices{CZK: b.AddonPricesCZK[name], EUR: b.AddonPricesEUR[name]},
		})
	}
	return q
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
