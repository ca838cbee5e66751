package usecase

import (
	"testing"

	"storefront_tracking/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEcommercePayloadBuilder_BuildItemPayload(t *testing.T) {
	b := NewEcommercePayloadBuilder(DefaultPayloadDefaults())

	t.Run("fills defaults and quantity", func(t *testing.T) {
		item := b.BuildItemPayload(entities.ItemData{ItemID: " sku-1 ", Price: money("1000")})
		assert.Equal(t, "sku-1", item.ItemID)
		assert.Equal(t, "Unknown item", item.ItemName)
		assert.Equal(t, "Unknown brand", item.ItemBrand)
		assert.Equal(t, "Unknown category", item.ItemCategory)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, "1000.00", entities.FormatMoney(item.Price))
	})

	t.Run("coerces non-positive quantity", func(t *testing.T) {
		assert.Equal(t, 1, b.BuildItemPayload(entities.ItemData{ItemID: "a", Quantity: qty(0)}).Quantity)
		assert.Equal(t, 1, b.BuildItemPayload(entities.ItemData{ItemID: "a", Quantity: qty(-3)}).Quantity)
		assert.Equal(t, 4, b.BuildItemPayload(entities.ItemData{ItemID: "a", Quantity: qty(4)}).Quantity)
	})

	t.Run("rounds and clamps price", func(t *testing.T) {
		assert.Equal(t, "10.46", entities.FormatMoney(b.BuildItemPayload(entities.ItemData{Price: money("10.455")}).Price))
		assert.True(t, b.BuildItemPayload(entities.ItemData{Price: money("-1")}).Price.IsZero())
		assert.True(t, b.BuildItemPayload(entities.ItemData{}).Price.IsZero())
	})
}

func TestEcommercePayloadBuilder_BuildEventPayload(t *testing.T) {
	b := NewEcommercePayloadBuilder(PayloadDefaults{Currency: "eur", Brand: "Acme"})

	ev := b.BuildEventPayload(entities.EventBeginCheckout, "", decimal.RequireFromString("99.999"),
		[]entities.ItemData{{ItemID: "a", Name: "Shed"}, {ItemID: "b"}}, "  ")

	assert.Equal(t, entities.EventBeginCheckout, ev.Kind)
	assert.Equal(t, "EUR", ev.Currency)
	assert.Equal(t, "100.00", entities.FormatMoney(ev.Value))
	assert.Empty(t, ev.Coupon)
	assert.Len(t, ev.Items, 2)
	assert.Equal(t, "Acme", ev.Items[1].ItemBrand)
	assert.Equal(t, "Unknown category", ev.Items[1].ItemCategory)

	again := b.BuildEventPayload(entities.EventBeginCheckout, "", decimal.RequireFromString("99.999"),
		[]entities.ItemData{{ItemID: "a", Name: "Shed"}, {ItemID: "b"}}, "  ")
	assert.Equal(t, ev, again)

	assert.Equal(t, "CZK", b.NormalizeCurrency(" czk "))
}
