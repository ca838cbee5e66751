package interfaces

import (
	"context"

	"storefront_tracking/internal/domain/entities"
)

// IPriceQuoteClient calls the authoritative price endpoint.
//
// Failures are returned as *entities.CalculationError values so callers can
// show a precise error state.
type IPriceQuoteClient interface {
	Quote(ctx context.Context, req entities.QuoteRequest) (entities.PriceQuote, error)
}
