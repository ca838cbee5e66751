package entities

import "github.com/shopspring/decimal"

// QuoteRequest asks the authoritative endpoint to price a configuration.
type QuoteRequest struct {
	ProductID         int64      `json:"productId"`
	Dimensions        Dimensions `json:"customDimensions"`
	SelectedOptionIDs []int64    `json:"selectedOptionIds"`
	SelectedAddonIDs  []int64    `json:"selectedAddonIds"`
}

// AddonQuote is the server price of one selected addon.
type AddonQuote struct {
	Name  string
	Price Prices
}

// PriceQuote is the authoritative per-unit price of a configuration, split
// by component. Addons priced at zero in both currencies are omitted.
type PriceQuote struct {
	Base    Prices
	Options map[OptionKind]Prices
	Addons  []AddonQuote
	Total   Prices
}

// Breakdown projects the quote onto one currency for display.
func (q PriceQuote) Breakdown(c Currency, quantity int) PriceBreakdown {
	b := PriceBreakdown{
		Currency: c,
		Base:     q.Base.For(c),
		Options:  make(map[OptionKind]decimal.Decimal, len(q.Options)),
		Quantity: quantity,
	}
	for kind, p := range q.Options {
		b.Options[kind] = p.For(c)
	}
	for _, a := range q.Addons {
		if v := a.Price.For(c); v.IsPositive() {
			b.Addons = append(b.Addons, BreakdownLine{Label: a.Name, Amount: v})
		}
	}
	return b
}
