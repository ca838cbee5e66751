package entities

import "github.com/shopspring/decimal"

// ProductConfigurator is the pricing model of a customisable product.
//
// Storage model (DynamoDB):
//   - PK: product_id
//
// Base price is linear in the dimensions: each centimeter of length, width
// and height has its own rate per currency.
type ProductConfigurator struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	Active       bool   `json:"active"`
	Customisable bool   `json:"customisable"`

	LengthRange DimensionRange `json:"length_range"`
	WidthRange  DimensionRange `json:"width_range"`
	HeightRange DimensionRange `json:"height_range"`

	RatePerCmLength Prices `json:"rate_per_cm_length"`
	RatePerCmWidth  Prices `json:"rate_per_cm_width"`
	RatePerCmHeight Prices `json:"rate_per_cm_height"`

	Options []Option `json:"options"`
	Addons  []Addon  `json:"addons"`
}

// ValidateDimensions checks every dimension against its range.
func (c ProductConfigurator) ValidateDimensions(d Dimensions) error {
	checks := []struct {
		dim Dimension
		rng DimensionRange
	}{
		{DimensionLength, c.LengthRange},
		{DimensionWidth, c.WidthRange},
		{DimensionHeight, c.HeightRange},
	}
	for _, chk := range checks {
		v := d.Get(chk.dim)
		if !v.IsPositive() || !chk.rng.Contains(v) {
			return &DimensionError{Dimension: chk.dim, Value: v, Range: chk.rng}
		}
	}
	return nil
}

// BasePrice is the dimension-only price of one unit, rounded and never
// negative.
func (c ProductConfigurator) BasePrice(d Dimensions, cur Currency) decimal.Decimal {
	price := d.Length.Mul(c.RatePerCmLength.For(cur)).
		Add(d.Width.Mul(c.RatePerCmWidth.For(cur))).
		Add(d.Height.Mul(c.RatePerCmHeight.For(cur))).
		Round(MoneyScale)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// FindOption looks an option up by id. Option ids are unique within a
// configurator regardless of kind.
func (c ProductConfigurator) FindOption(id int64) (Option, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

func (c ProductConfigurator) FindAddon(id int64) (Addon, bool) {
	for _, a := range c.Addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}
