package usecase

import (
	"strings"

	"storefront_tracking/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PayloadDefaults are the values filled into items that omit optional fields.
type PayloadDefaults struct {
	Currency string
	Brand    string
	Category string
	ItemName string
}

func DefaultPayloadDefaults() PayloadDefaults {
	return PayloadDefaults{
		Currency: string(entities.CurrencyCZK),
		Brand:    "Unknown brand",
		Category: "Unknown category",
		ItemName: "Unknown item",
	}
}

// EcommercePayloadBuilder normalizes raw storefront data into GA4 payloads.
//
// It has no side effects and knows nothing about consent or dedup: equal
// inputs always produce equal payloads.
type EcommercePayloadBuilder struct {
	defaults PayloadDefaults
}

func NewEcommercePayloadBuilder(defaults PayloadDefaults) EcommercePayloadBuilder {
	base := DefaultPayloadDefaults()
	if strings.TrimSpace(defaults.Currency) == "" {
		defaults.Currency = base.Currency
	}
	if strings.TrimSpace(defaults.Brand) == "" {
		defaults.Brand = base.Brand
	}
	if strings.TrimSpace(defaults.Category) == "" {
		defaults.Category = base.Category
	}
	if strings.TrimSpace(defaults.ItemName) == "" {
		defaults.ItemName = base.ItemName
	}
	defaults.Currency = strings.ToUpper(strings.TrimSpace(defaults.Currency))
	return EcommercePayloadBuilder{defaults: defaults}
}

// BuildItemPayload fills defaults, rounds the price to two places (clamping
// negatives to zero) and coerces the quantity to at least 1.
func (b EcommercePayloadBuilder) BuildItemPayload(item entities.ItemData) entities.EcommerceItem {
	quantity := 1
	if item.Quantity != nil && *item.Quantity > 1 {
		quantity = *item.Quantity
	}

	return entities.EcommerceItem{
		ItemID:       strings.TrimSpace(item.ItemID),
		ItemName:     orDefault(item.Name, b.defaults.ItemName),
		ItemBrand:    orDefault(item.Brand, b.defaults.Brand),
		ItemCategory: orDefault(item.Category, b.defaults.Category),
		Price:        roundMoney(nullToZero(item.Price)),
		Quantity:     quantity,
	}
}

// BuildEventPayload rounds the value, normalizes the currency and maps every
// item. The coupon is kept only when it is not blank.
func (b EcommercePayloadBuilder) BuildEventPayload(kind entities.EventKind, currency string, value decimal.Decimal, items []entities.ItemData, coupon string) entities.EcommerceEvent {
	mapped := make([]entities.EcommerceItem, 0, len(items))
	for _, it := range items {
		mapped = append(mapped, b.BuildItemPayload(it))
	}

	return entities.EcommerceEvent{
		Kind:     kind,
		Currency: b.NormalizeCurrency(currency),
		Value:    roundMoney(value),
		Items:    mapped,
		Coupon:   strings.TrimSpace(coupon),
	}
}

// NormalizeCurrency uppercases an ISO code, falling back to the default.
func (b EcommercePayloadBuilder) NormalizeCurrency(currency string) string {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if c == "" {
		return b.defaults.Currency
	}
	return c
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	d = d.Round(entities.MoneyScale)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

func roundNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(roundMoney(d.Decimal))
}

func orDefault(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
