package request

import (
	"strings"

	"storefront_tracking/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ConsentRequest carries the categories accepted in the consent banner.
//
// When categories is absent the banner cookie (cc_cookie) is used instead;
// an explicit empty list means only necessary.
type ConsentRequest struct {
	Categories []string `json:"categories"`
}

type OpenPageRequest struct {
	SessionID  string   `json:"session_id"`
	Categories []string `json:"categories"`
}

func (r ConsentRequest) ResolveConsent(cookie string) entities.ConsentSet {
	return resolveConsent(r.Categories, cookie)
}

func (r OpenPageRequest) ResolveConsent(cookie string) entities.ConsentSet {
	return resolveConsent(r.Categories, cookie)
}

func (r OpenPageRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

func resolveConsent(categories []string, cookie string) entities.ConsentSet {
	if categories != nil {
		return entities.NewConsentSet(categories...)
	}
	if strings.TrimSpace(cookie) == "" {
		return entities.NewConsentSet()
	}
	set, err := entities.ParseConsentCookie(cookie)
	if err != nil {
		return entities.NewConsentSet()
	}
	return set
}

type ItemRequest struct {
	ItemID   string              `json:"item_id"`
	Name     string              `json:"item_name"`
	Brand    string              `json:"item_brand"`
	Category string              `json:"item_category"`
	Price    decimal.NullDecimal `json:"price"`
	Quantity *int                `json:"quantity"`
}

func (r ItemRequest) ToItemData() entities.ItemData {
	return entities.ItemData{
		ItemID:   strings.TrimSpace(r.ItemID),
		Name:     strings.TrimSpace(r.Name),
		Brand:    strings.TrimSpace(r.Brand),
		Category: strings.TrimSpace(r.Category),
		Price:    r.Price,
		Quantity: r.Quantity,
	}
}

type HeurekaItemRequest struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"item_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// TrackEventRequest is the body of every tracked storefront action. Which
// fields are read depends on the event kind in the path:
//
//   - view_item, add_to_cart: the top-level item fields, currency, event_id
//   - begin_checkout: items, value, currency, coupon
//   - purchase: items, value, the VAT split, transaction_id, customer_email
//   - contact_click: contact_type, or href classified by scheme
type TrackEventRequest struct {
	ItemRequest

	Currency string `json:"currency"`
	EventID  string `json:"event_id"`

	Items  []ItemRequest       `json:"items"`
	Value  decimal.NullDecimal `json:"value"`
	Coupon string              `json:"coupon"`

	TransactionID string               `json:"transaction_id"`
	ValueNoVAT    decimal.NullDecimal  `json:"value_no_vat"`
	Tax           decimal.NullDecimal  `json:"tax"`
	Shipping      decimal.NullDecimal  `json:"shipping"`
	ShippingNoVAT decimal.NullDecimal  `json:"shipping_no_vat"`
	CustomerEmail string               `json:"customer_email"`
	HeurekaItems  []HeurekaItemRequest `json:"heureka_items"`

	ContactType string `json:"contact_type"`
	Href        string `json:"href"`
}

func (r TrackEventRequest) ToViewItem() entities.ViewItemData {
	return entities.ViewItemData{ItemData: r.ToItemData(), Currency: r.Currency}
}

func (r TrackEventRequest) ToAddToCart() entities.AddToCartData {
	return entities.AddToCartData{
		ItemData: r.ToItemData(),
		Currency: r.Currency,
		EventID:  strings.TrimSpace(r.EventID),
	}
}

func (r TrackEventRequest) ToCheckout() entities.CheckoutData {
	return entities.CheckoutData{
		Items:    toItems(r.Items),
		Value:    r.Value,
		Currency: r.Currency,
		Coupon:   strings.TrimSpace(r.Coupon),
	}
}

func (r TrackEventRequest) ToPurchase() entities.PurchaseData {
	return entities.PurchaseData{
		TransactionID: strings.TrimSpace(r.TransactionID),
		Value:         r.Value,
		ValueNoVAT:    r.ValueNoVAT,
		Tax:           r.Tax,
		Shipping:      r.Shipping,
		ShippingNoVAT: r.ShippingNoVAT,
		Currency:      r.Currency,
		Coupon:        strings.TrimSpace(r.Coupon),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		Items:         toItems(r.Items),
		HeurekaItems:  toHeurekaItems(r.HeurekaItems),
	}
}

// ResolveContactType prefers an explicit contact_type and falls back to the
// scheme of the clicked link.
func (r TrackEventRequest) ResolveContactType() string {
	if v := strings.TrimSpace(r.ContactType); v != "" {
		return v
	}
	if strings.TrimSpace(r.Href) == "" {
		return ""
	}
	return entities.ContactTypeFromHref(r.Href)
}

// PurchaseFromPaymentRequest is the optional body of the purchase-from-payment
// route. Transaction id, value, currency and customer e-mail come from the
// payment itself.
type PurchaseFromPaymentRequest struct {
	Items         []ItemRequest        `json:"items"`
	ValueNoVAT    decimal.NullDecimal  `json:"value_no_vat"`
	Tax           decimal.NullDecimal  `json:"tax"`
	Shipping      decimal.NullDecimal  `json:"shipping"`
	ShippingNoVAT decimal.NullDecimal  `json:"shipping_no_vat"`
	Coupon        string               `json:"coupon"`
	HeurekaItems  []HeurekaItemRequest `json:"heureka_items"`
}

func (r PurchaseFromPaymentRequest) ToPurchaseData() entities.PurchaseData {
	return entities.PurchaseData{
		ValueNoVAT:    r.ValueNoVAT,
		Tax:           r.Tax,
		Shipping:      r.Shipping,
		ShippingNoVAT: r.ShippingNoVAT,
		Coupon:        strings.TrimSpace(r.Coupon),
		Items:         toItems(r.Items),
		HeurekaItems:  toHeurekaItems(r.HeurekaItems),
	}
}

func toItems(in []ItemRequest) []entities.ItemData {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.ItemData, 0, len(in))
	for _, it := range in {
		out = append(out, it.ToItemData())
	}
	return out
}

func toHeurekaItems(in []HeurekaItemRequest) []entities.HeurekaItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.HeurekaItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.HeurekaItem{
			ItemID:    strings.TrimSpace(it.ItemID),
			Name:      strings.TrimSpace(it.Name),
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return out
}
