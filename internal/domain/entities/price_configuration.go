package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code supported by the storefront.
type Currency string

const (
	CurrencyCZK Currency = "CZK"
	CurrencyEUR Currency = "EUR"
)

// SupportedCurrencies lists the currencies every price is kept in.
var SupportedCurrencies = []Currency{CurrencyCZK, CurrencyEUR}

func ParseCurrency(raw string) (Currency, bool) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(raw))); c {
	case CurrencyCZK, CurrencyEUR:
		return c, true
	}
	return "", false
}

// calculationScale is the precision of intermediate unit conversions (cm → m).
const calculationScale = 4

var hundred = decimal.NewFromInt(100)

// Prices holds one amount per supported currency.
type Prices struct {
	CZK decimal.Decimal `json:"czk"`
	EUR decimal.Decimal `json:"eur"`
}

func (p Prices) For(c Currency) decimal.Decimal {
	if c == CurrencyEUR {
		return p.EUR
	}
	return p.CZK
}

// Dimension names one configurable measure of a product, in centimeters.
type Dimension string

const (
	DimensionLength Dimension = "length"
	DimensionWidth  Dimension = "width"
	DimensionHeight Dimension = "height"
)

type Dimensions struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

func (d Dimensions) Get(dim Dimension) decimal.Decimal {
	switch dim {
	case DimensionLength:
		return d.Length
	case DimensionWidth:
		return d.Width
	case DimensionHeight:
		return d.Height
	}
	return decimal.Zero
}

func (d *Dimensions) Set(dim Dimension, v decimal.Decimal) bool {
	switch dim {
	case DimensionLength:
		d.Length = v
	case DimensionWidth:
		d.Width = v
	case DimensionHeight:
		d.Height = v
	default:
		return false
	}
	return true
}

// DimensionRange bounds a dimension. A zero Max means no upper bound.
type DimensionRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

func (r DimensionRange) Contains(v decimal.Decimal) bool {
	if v.LessThan(r.Min) {
		return false
	}
	return r.Max.IsZero() || !v.GreaterThan(r.Max)
}

// DimensionError reports a dimension outside its configured range.
type DimensionError struct {
	Dimension Dimension
	Value     decimal.Decimal
	Range     DimensionRange
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s %s cm is outside the allowed range %s-%s cm",
		e.Dimension, e.Value.String(), e.Range.Min.String(), e.Range.Max.String())
}

// PricingMode tells how an addon price depends on the configuration.
type PricingMode string

const (
	PricingFixed          PricingMode = "FIXED"
	PricingPerCmLength    PricingMode = "PER_CM_LENGTH"
	PricingPerCmWidth     PricingMode = "PER_CM_WIDTH"
	PricingPerCmHeight    PricingMode = "PER_CM_HEIGHT"
	PricingPerSquareMeter PricingMode = "PER_SQUARE_METER"
)

// LinearDimension returns the dimension a per-centimeter mode is priced by.
func (m PricingMode) LinearDimension() (Dimension, bool) {
	switch m {
	case PricingPerCmLength:
		return DimensionLength, true
	case PricingPerCmWidth:
		return DimensionWidth, true
	case PricingPerCmHeight:
		return DimensionHeight, true
	}
	return "", false
}

func (m PricingMode) Valid() bool {
	if m == PricingFixed || m == PricingPerSquareMeter {
		return true
	}
	_, ok := m.LinearDimension()
	return ok
}

// Addon is an optional extra (gutter, divider, shed...) selected per category.
//
// Price is used by FIXED addons, UnitPrice by the dimensional modes.
type Addon struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Mode      PricingMode `json:"pricing_type"`
	Price     Prices      `json:"price"`
	UnitPrice Prices      `json:"price_per_unit"`
	Active    bool        `json:"active"`
}

// PriceFor computes the addon price for the given dimensions, rounded to two
// places and never negative. Dimensional modes contribute zero while a
// dimension they depend on is not positive.
func (a Addon) PriceFor(dims Dimensions, c Currency) decimal.Decimal {
	var price decimal.Decimal

	switch a.Mode {
	case PricingFixed:
		price = a.Price.For(c)
	case PricingPerSquareMeter:
		unit := a.UnitPrice.For(c)
		if !unit.IsPositive() || !dims.Length.IsPositive() || !dims.Width.IsPositive() {
			return decimal.Zero
		}
		lengthM := dims.Length.DivRound(hundred, calculationScale)
		widthM := dims.Width.DivRound(hundred, calculationScale)
		price = unit.Mul(lengthM).Mul(widthM)
	default:
		dim, ok := a.Mode.LinearDimension()
		if !ok {
			return decimal.Zero
		}
		unit := a.UnitPrice.For(c)
		value := dims.Get(dim)
		if !unit.IsPositive() || !value.IsPositive() {
			return decimal.Zero
		}
		price = unit.Mul(value)
	}

	price = price.Round(MoneyScale)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// OptionKind is one of the discrete attribute selects of the configurator.
type OptionKind string

const (
	OptionDesign    OptionKind = "design"
	OptionGlaze     OptionKind = "glaze"
	OptionRoofColor OptionKind = "roof_color"
)

// OptionKinds is the fixed display order of discrete options.
var OptionKinds = []OptionKind{OptionDesign, OptionGlaze, OptionRoofColor}

// Option is a discrete choice (design, glaze, roof color) with an optional
// surcharge.
type Option struct {
	ID        int64      `json:"id"`
	Kind      OptionKind `json:"kind"`
	Name      string     `json:"name"`
	Surcharge Prices     `json:"surcharge"`
}

// BreakdownLine is one displayed row of a price breakdown.
type BreakdownLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// PriceBreakdown is a unit price split by component, in one currency.
type PriceBreakdown struct {
	Currency Currency
	Base     decimal.Decimal
	Options  map[OptionKind]decimal.Decimal
	Addons   []BreakdownLine
	Quantity int
}

// UnitPrice sums base, option surcharges and addon prices. Addons that are
// not strictly positive contribute nothing.
func (b PriceBreakdown) UnitPrice() decimal.Decimal {
	unit := b.Base
	for _, v := range b.Options {
		unit = unit.Add(v)
	}
	for _, a := range b.Addons {
		if a.Amount.IsPositive() {
			unit = unit.Add(a.Amount)
		}
	}
	return unit.Round(MoneyScale)
}

// Total is the unit price times the quantity; it is zero below one piece.
func (b PriceBreakdown) Total() decimal.Decimal {
	if b.Quantity < 1 {
		return decimal.Zero.Round(MoneyScale)
	}
	return b.UnitPrice().Mul(decimal.NewFromInt(int64(b.Quantity))).Round(MoneyScale)
}

// Lines lists the rows to display. Rows whose amount is not strictly
// positive are left out.
func (b PriceBreakdown) Lines() []BreakdownLine {
	var lines []BreakdownLine
	if b.Base.IsPositive() {
		lines = append(lines, BreakdownLine{Label: "base", Amount: b.Base})
	}
	for _, kind := range OptionKinds {
		if v, ok := b.Options[kind]; ok && v.IsPositive() {
			lines = append(lines, BreakdownLine{Label: string(kind), Amount: v})
		}
	}
	for _, a := range b.Addons {
		if a.Amount.IsPositive() {
			lines = append(lines, a)
		}
	}
	return lines
}
