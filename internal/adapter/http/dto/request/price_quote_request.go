package request

import (
	"storefront_tracking/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CustomDimensionsRequest struct {
	Length decimal.NullDecimal `json:"length"`
	Width  decimal.NullDecimal `json:"width"`
	Height decimal.NullDecimal `json:"height"`
}

// CalculatePriceRequest is the payload of the configurator price endpoint.
// Field names follow the storefront's camelCase contract.
type CalculatePriceRequest struct {
	ProductID         int64                   `json:"productId"`
	CustomDimensions  CustomDimensionsRequest `json:"customDimensions"`
	SelectedOptionIDs []int64                 `json:"selectedOptionIds"`
	SelectedAddonIDs  []int64                 `json:"selectedAddonIds"`
}

// ToQuoteRequest maps the payload to the domain request. Missing dimensions
// become zero and are rejected by the use case.
func (r CalculatePriceRequest) ToQuoteRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		ProductID: r.ProductID,
		Dimensions: entities.Dimensions{
			Length: r.CustomDimensions.Length.Decimal,
			Width:  r.CustomDimensions.Width.Decimal,
			Height: r.CustomDimensions.Height.Decimal,
		},
		SelectedOptionIDs: positiveIDs(r.SelectedOptionIDs),
		SelectedAddonIDs:  positiveIDs(r.SelectedAddonIDs),
	}
}

func positiveIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	return out
}
