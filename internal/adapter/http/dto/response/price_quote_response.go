package response

import (
	"storefront_tracking/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CalculatePriceResponse is the per-unit price of a configuration, split by
// component, in both currencies.
type CalculatePriceResponse struct {
	BasePriceCZK      float64            `json:"basePriceCZK"`
	BasePriceEUR      float64            `json:"basePriceEUR"`
	DesignPriceCZK    float64            `json:"designPriceCZK"`
	DesignPriceEUR    float64            `json:"designPriceEUR"`
	GlazePriceCZK     float64            `json:"glazePriceCZK"`
	GlazePriceEUR     float64            `json:"glazePriceEUR"`
	RoofColorPriceCZK float64            `json:"roofColorPriceCZK"`
	RoofColorPriceEUR float64            `json:"roofColorPriceEUR"`
	AddonPricesCZK    map[string]float64 `json:"addonPricesCZK"`
	AddonPricesEUR    map[string]float64 `json:"addonPricesEUR"`
	TotalPriceCZK     float64            `json:"totalPriceCZK"`
	TotalPriceEUR     float64            `json:"totalPriceEUR"`
}

// CalculatePriceErrorResponse is how the price endpoint reports failures.
type CalculatePriceErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

func FromPriceQuote(q entities.PriceQuote) CalculatePriceResponse {
	res := CalculatePriceResponse{
		BasePriceCZK:   money(q.Base.CZK),
		BasePriceEUR:   money(q.Base.EUR),
		AddonPricesCZK: make(map[string]float64, len(q.Addons)),
		AddonPricesEUR: make(map[string]float64, len(q.Addons)),
		TotalPriceCZK:  money(q.Total.CZK),
		TotalPriceEUR:  money(q.Total.EUR),
	}
	if p, ok := q.Options[entities.OptionDesign]; ok {
		res.DesignPriceCZK, res.DesignPriceEUR = money(p.CZK), money(p.EUR)
	}
	if p, ok := q.Options[entities.OptionGlaze]; ok {
		res.GlazePriceCZK, res.GlazePriceEUR = money(p.CZK), money(p.EUR)
	}
	if p, ok := q.Options[entities.OptionRoofColor]; ok {
		res.RoofColorPriceCZK, res.RoofColorPriceEUR = money(p.CZK), money(p.EUR)
	}
	for _, a := range q.Addons {
		res.AddonPricesCZK[a.Name] = money(a.Price.CZK)
		res.AddonPricesEUR[a.Name] = money(a.Price.EUR)
	}
	return res
}

func money(d decimal.Decimal) float64 {
	return d.Round(entities.MoneyScale).InexactFloat64()
}
