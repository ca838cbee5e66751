package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EventKind is the GA4 event name of an e-commerce event.
type EventKind string

const (
	EventViewItem      EventKind = "view_item"
	EventAddToCart     EventKind = "add_to_cart"
	EventBeginCheckout EventKind = "begin_checkout"
	EventPurchase      EventKind = "purchase"
	EventContactClick  EventKind = "contact_click"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventViewItem, EventAddToCart, EventBeginCheckout, EventPurchase, EventContactClick:
		return true
	}
	return false
}

// MoneyScale is the number of decimal places of every monetary value that
// leaves the service.
const MoneyScale = 2

// FormatMoney renders a monetary value the way tag managers expect it: a
// fixed two-decimal string.
func FormatMoney(d decimal.Decimal) string {
	return d.Round(MoneyScale).StringFixed(MoneyScale)
}

// ItemData is a raw catalog item as reported by the storefront page.
//
// Price is nullable so that a missing price can be told apart from a zero one.
type ItemData struct {
	ItemID   string              `json:"item_id"`
	Name     string              `json:"item_name"`
	Brand    string              `json:"item_brand,omitempty"`
	Category string              `json:"item_category,omitempty"`
	Price    decimal.NullDecimal `json:"price"`
	Quantity *int                `json:"quantity,omitempty"`
}

type ViewItemData struct {
	ItemData
	Currency string `json:"currency,omitempty"`
}

// AddToCartData is one add-to-cart action. EventID, when set, replaces the
// item id as the dedup context so repeated adds of one item can be told apart.
type AddToCartData struct {
	ItemData
	Currency string `json:"currency,omitempty"`
	EventID  string `json:"event_id,omitempty"`
}

// CheckoutData describes the cart at checkout start. Value excludes VAT.
type CheckoutData struct {
	Items    []ItemData          `json:"items"`
	Value    decimal.NullDecimal `json:"value"`
	Currency string              `json:"currency,omitempty"`
	Coupon   string              `json:"coupon,omitempty"`
}

// HeurekaItem is an order line in the shape the Heureka "Ověřeno zákazníky"
// tag expects. UnitPrice includes VAT.
type HeurekaItem struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"item_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// PurchaseData describes a completed order. Value, Tax and Shipping include
// VAT; ValueNoVAT and ShippingNoVAT are the ad-platform amounts.
type PurchaseData struct {
	TransactionID string              `json:"transaction_id"`
	Value         decimal.NullDecimal `json:"value"`
	ValueNoVAT    decimal.NullDecimal `json:"value_no_vat"`
	Tax           decimal.NullDecimal `json:"tax"`
	Shipping      decimal.NullDecimal `json:"shipping"`
	ShippingNoVAT decimal.NullDecimal `json:"shipping_no_vat"`
	Currency      string              `json:"currency,omitempty"`
	Coupon        string              `json:"coupon,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Items         []ItemData          `json:"items"`
	HeurekaItems  []HeurekaItem       `json:"heureka_items,omitempty"`
}

// EcommerceItem is a normalized line item.
type EcommerceItem struct {
	ItemID       string
	ItemName     string
	ItemBrand    string
	ItemCategory string
	Price        decimal.Decimal
	Quantity     int
}

// EcommerceEvent is a normalized e-commerce payload ready for enrichment.
type EcommerceEvent struct {
	Kind          EventKind
	Currency      string
	Value         decimal.Decimal
	Items         []EcommerceItem
	TransactionID string
	Coupon        string

	// Purchase only.
	Tax        decimal.NullDecimal
	Shipping   decimal.NullDecimal
	ValueNoVAT decimal.NullDecimal
}

// ItemsTotal is the sum of price times quantity over the line items.
func (e EcommerceEvent) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range e.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(MoneyScale)
}

// DataLayerRecord is one entry appended to the outbound queue. The "event"
// key is always present.
type DataLayerRecord map[string]any

func (r DataLayerRecord) Event() string {
	s, _ := r["event"].(string)
	return s
}

// EcommerceObject renders the GA4 "ecommerce" object of the event.
func (e EcommerceEvent) EcommerceObject() map[string]any {
	items := make([]map[string]any, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, map[string]any{
			"item_id":       it.ItemID,
			"item_name":     it.ItemName,
			"item_brand":    it.ItemBrand,
			"item_category": it.ItemCategory,
			"price":         FormatMoney(it.Price),
			"quantity":      it.Quantity,
		})
	}

	obj := map[string]any{
		"currency": e.Currency,
		"value":    FormatMoney(e.Value),
		"items":    items,
	}
	if e.TransactionID != "" {
		obj["transaction_id"] = e.TransactionID
	}
	if e.Coupon != "" {
		obj["coupon"] = e.Coupon
	}
	if e.Tax.Valid {
		obj["tax"] = FormatMoney(e.Tax.Decimal)
	}
	if e.Shipping.Valid {
		obj["shipping"] = FormatMoney(e.Shipping.Decimal)
	}
	return obj
}

// Contact types reported by contact link clicks.
const (
	ContactPhone   = "phone"
	ContactEmail   = "email"
	ContactUnknown = "unknown"
)

// ContactTypeFromHref classifies a contact link by its href scheme.
func ContactTypeFromHref(href string) string {
	href = strings.ToLower(strings.TrimSpace(href))
	switch {
	case strings.HasPrefix(href, "tel:"):
		return ContactPhone
	case strings.HasPrefix(href, "mailto:"):
		return ContactEmail
	default:
		return ContactUnknown
	}
}
