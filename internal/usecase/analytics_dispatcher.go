package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Record names of the companion events read by destination-specific tags.
const (
	RecordConsentUpdate      = "consent_update"
	RecordGoogleAdsPurchase  = "google_ads_purchase"
	RecordSklikPurchase      = "sklik_purchase"
	RecordSklikBeginCheckout = "sklik_begin_checkout"
	RecordHeurekaPurchase    = "heureka_purchase"

	contactEventCategory = "Contact"
)

// flushOrder is the order in which buffered events are drained.
var flushOrder = []entities.EventKind{
	entities.EventViewItem,
	entities.EventBeginCheckout,
	entities.EventPurchase,
}

// DispatcherConfig holds destination ids attached to outgoing events.
// Empty ids are left out of the records.
type DispatcherConfig struct {
	GoogleAdsID          string
	AdsLabels            map[entities.EventKind]string
	SklikRetargetingID   string
	SklikPurchaseID      string
	SklikBeginCheckoutID string
	HeurekaAPIKey        string

	ContactValue    decimal.Decimal
	ContactCurrency string
}

// QueueOpener makes the outbound queue available. It is called until it
// succeeds once.
type QueueOpener func(ctx context.Context) (interfaces.IOutboundQueue, error)

// pendingEvent is a built payload waiting for the outbound queue, together
// with the order data that only destination enrichment needs.
type pendingEvent struct {
	key   entities.TrackedEventKey
	event entities.EcommerceEvent

	customerEmail string
	heurekaItems  []entities.HeurekaItem
	contactType   string
}

// AnalyticsDispatcher decides whether, when and with what enrichment an
// e-commerce event reaches the outbound queue.
//
// Every Track* call runs consent gate, validation, dedup check, payload build
// and then either buffers the payload (queue not open yet) or marks the key
// and pushes. None of them report failure to the caller.
//
// Lifecycle: NewAnalyticsDispatcher only constructs; Initialize opens the
// queue and drains the pending buffer. Safe for concurrent use.
type AnalyticsDispatcher struct {
	mu sync.Mutex

	cfg     DispatcherConfig
	consent interfaces.IConsentProvider
	dedup   *EventDeduplicator
	builder EcommercePayloadBuilder
	open    QueueOpener

	queue   interfaces.IOutboundQueue
	pending map[entities.EventKind]pendingEvent

	log *zap.Logger
}

func NewAnalyticsDispatcher(
	cfg DispatcherConfig,
	consent interfaces.IConsentProvider,
	dedup *EventDeduplicator,
	builder EcommercePayloadBuilder,
	open QueueOpener,
) *AnalyticsDispatcher {
	if cfg.ContactCurrency == "" {
		cfg.ContactCurrency = builder.NormalizeCurrency("")
	}
	return &AnalyticsDispatcher{
		cfg:     cfg,
		consent: consent,
		dedup:   dedup,
		builder: builder,
		open:    open,
		pending: make(map[entities.EventKind]pendingEvent, len(flushOrder)),
		log:     logging.Named("tracking"),
	}
}

// Ready reports whether the outbound queue has been opened.
func (d *AnalyticsDispatcher) Ready() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queue != nil
}

func (d *AnalyticsDispatcher) TrackViewItem(ctx context.Context, data entities.ViewItemData) {
	kind := entities.EventViewItem
	d.mu.Lock()
	defer d.mu.Unlock()

	granted := d.consent.GrantedCategories()
	if !granted.HasAny(entities.ConsentAnalytics, entities.ConsentMarketing) {
		d.log.Debug("[tracking][view_item] consent not granted; skipping")
		return
	}
	itemID := strings.TrimSpace(data.ItemID)
	if itemID == "" || !data.Price.Valid {
		d.log.Warn("[tracking][view_item] missing required item data; skipping", zap.String("item_id", itemID))
		return
	}

	key := entities.NewTrackedEventKey(kind, itemID)
	if d.dedup.HasTracked(ctx, key) {
		d.log.Info("[tracking][view_item] already tracked; skipping", zap.String("key", key.String()))
		return
	}

	item := data.ItemData
	item.Quantity = nil
	ev := d.builder.BuildEventPayload(kind, data.Currency, nullToZero(item.Price), []entities.ItemData{item}, "")

	d.dispatch(ctx, pendingEvent{key: key, event: ev}, granted, true)
}

func (d *AnalyticsDispatcher) TrackAddToCart(ctx context.Context, data entities.AddToCartData) {
	kind := entities.EventAddToCart
	d.mu.Lock()
	defer d.mu.Unlock()

	granted := d.consent.GrantedCategories()
	if !granted.HasAny(entities.ConsentAnalytics, entities.ConsentMarketing) {
		d.log.Debug("[tracking][add_to_cart] consent not granted; skipping")
		return
	}
	itemID := strings.TrimSpace(data.ItemID)
	if itemID == "" || !data.Price.Valid {
		d.log.Warn("[tracking][add_to_cart] missing required item data; skipping", zap.String("item_id", itemID))
		return
	}
	if data.Quantity == nil || *data.Quantity <= 0 {
		d.log.Warn("[tracking][add_to_cart] invalid quantity; skipping", zap.String("item_id", itemID))
		return
	}

	contextID := strings.TrimSpace(data.EventID)
	if contextID == "" {
		contextID = itemID
	}
	key := entities.NewTrackedEventKey(kind, contextID)
	if d.dedup.HasTracked(ctx, key) {
		d.log.Info("[tracking][add_to_cart] already tracked; skipping", zap.String("key", key.String()))
		return
	}

	unit := roundMoney(data.Price.Decimal)
	value := unit.Mul(decimal.NewFromInt(int64(*data.Quantity)))
	ev := d.builder.BuildEventPayload(kind, data.Currency, value, []entities.ItemData{data.ItemData}, "")

	d.dispatch(ctx, pendingEvent{key: key, event: ev}, granted, false)
}

func (d *AnalyticsDispatcher) TrackBeginCheckout(ctx context.Context, data entities.CheckoutData) {
	kind := entities.EventBeginCheckout
	d.mu.Lock()
	defer d.mu.Unlock()

	granted := d.consent.GrantedCategories()
	if !granted.HasAny(entities.ConsentAnalytics, entities.ConsentMarketing) {
		d.log.Debug("[tracking][begin_checkout] consent not granted; skipping")
		return
	}
	if len(data.Items) == 0 || !data.Value.Valid {
		d.log.Warn("[tracking][begin_checkout] missing or invalid checkout data; skipping", zap.Int("items", len(data.Items)))
		return
	}

	key := entities.NewTrackedEventKey(kind, "")
	if d.dedup.HasTracked(ctx, key) {
		d.log.Info("[tracking][begin_checkout] already tracked; skipping", zap.String("key", key.String()))
		return
	}

	ev := d.builder.BuildEventPayload(kind, data.Currency, data.Value.Decimal, data.Items, data.Coupon)
	d.checkValue(ev)

	d.dispatch(ctx, pendingEvent{key: key, event: ev}, granted, true)
}

func (d *AnalyticsDispatcher) TrackPurchase(ctx context.Context, data entities.PurchaseData) {
	kind := entities.EventPurchase
	d.mu.Lock()
	defer d.mu.Unlock()

	granted := d.consent.GrantedCategories()
	if !granted.HasAny(entities.ConsentAnalytics, entities.ConsentMarketing) {
		d.log.Debug("[tracking][purchase] consent not granted; skipping")
		return
	}
	txID := strings.TrimSpace(data.TransactionID)
	if txID == "" || len(data.Items) == 0 || !data.Value.Valid {
		d.log.Warn("[tracking][purchase] missing required order data; skipping",
			zap.String("transaction_id", txID), zap.Int("items", len(data.Items)))
		return
	}

	key := entities.NewTrackedEventKey(kind, txID)
	if d.dedup.HasTracked(ctx, key) {
		d.log.Info("[tracking][purchase] already tracked; skipping", zap.String("key", key.String()))
		return
	}

	ev := d.builder.BuildEventPayload(kind, data.Currency, data.Value.Decimal, data.Items, data.Coupon)
	ev.TransactionID = txID
	ev.Tax = roundNull(data.Tax)
	ev.Shipping = roundNull(data.Shipping)
	ev.ValueNoVAT = purchaseValueNoVAT(data)
	d.checkValue(ev)

	d.dispatch(ctx, pendingEvent{
		key:           key,
		event:         ev,
		customerEmail: strings.TrimSpace(data.CustomerEmail),
		heurekaItems:  data.HeurekaItems,
	}, granted, true)
}

// TrackContactClick reports a click on a phone or e-mail link. It needs
// marketing consent and carries a fixed conversion value.
func (d *AnalyticsDispatcher) TrackContactClick(ctx context.Context, contactType string) {
	kind := entities.EventContactClick
	d.mu.Lock()
	defer d.mu.Unlock()

	granted := d.consent.GrantedCategories()
	if !granted.Has(entities.ConsentMarketing) {
		d.log.Debug("[tracking][contact_click] marketing consent not granted; skipping")
		return
	}
	contactType = strings.ToLower(strings.TrimSpace(contactType))
	if contactType == "" {
		d.log.Warn("[tracking][contact_click] missing contact type; skipping")
		return
	}

	key := entities.NewTrackedEventKey(kind, contactType)
	if d.dedup.HasTracked(ctx, key) {
		d.log.Info("[tracking][contact_click] already tracked; skipping", zap.String("key", key.String()))
		return
	}

	ev := entities.EcommerceEvent{
		Kind:     kind,
		Currency: d.cfg.ContactCurrency,
		Value:    roundMoney(d.cfg.ContactValue),
	}
	d.dispatch(ctx, pendingEvent{key: key, event: ev, contactType: contactType}, granted, false)
}

// Initialize opens the outbound queue if needed and drains the pending
// buffer. Calling it again is a no-op apart from retrying a failed open.
func (d *AnalyticsDispatcher) Initialize(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.ensureQueue(ctx) {
		return
	}
	d.flush(ctx)
}

// OnConsentChanged is the consent notification path: it publishes the new
// Consent Mode state and then initializes the dispatcher.
func (d *AnalyticsDispatcher) OnConsentChanged(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.ensureQueue(ctx) {
		return
	}

	granted := d.consent.GrantedCategories()
	categories := make([]string, 0, 3)
	for _, c := range granted.Categories() {
		categories = append(categories, string(c))
	}
	rec := entities.DataLayerRecord{
		"event":              RecordConsentUpdate,
		"consent_mode":       granted.ConsentMode(),
		"granted_categories": categories,
	}
	if err := d.push(rec); err != nil {
		d.log.Error("[tracking][consent] push failed; dropped", zap.Error(err))
	}

	d.flush(ctx)
}

// dispatch buffers or pushes an already validated, not yet tracked event.
// Callers hold d.mu.
func (d *AnalyticsDispatcher) dispatch(ctx context.Context, p pendingEvent, granted entities.ConsentSet, bufferable bool) {
	kind := p.event.Kind
	if d.queue == nil {
		if !bufferable {
			d.log.Warn(fmt.Sprintf("[tracking][%s] outbound queue not ready; dropped", kind),
				zap.String("key", p.key.String()))
			return
		}
		d.pending[kind] = p
		d.log.Info(fmt.Sprintf("[tracking][%s] outbound queue not ready; buffered", kind),
			zap.String("key", p.key.String()))
		return
	}

	d.dedup.MarkTracked(ctx, p.key)
	d.send(p, granted)
}

// flush drains the buffer in a fixed order. Each slot is cleared once it has
// been handled, whether the push succeeded or not. Callers hold d.mu.
func (d *AnalyticsDispatcher) flush(ctx context.Context) {
	for _, kind := range flushOrder {
		p, ok := d.pending[kind]
		if !ok {
			continue
		}
		delete(d.pending, kind)

		if d.dedup.HasTracked(ctx, p.key) {
			d.log.Info(fmt.Sprintf("[tracking][%s] pending event already tracked; discarded", kind),
				zap.String("key", p.key.String()))
			continue
		}
		d.dedup.MarkTracked(ctx, p.key)
		d.send(p, d.consent.GrantedCategories())
		d.log.Info(fmt.Sprintf("[tracking][%s] pending event flushed", kind), zap.String("key", p.key.String()))
	}
}

// send enriches the event with the consent known at push time and appends
// the resulting records. Companion records follow the base record and are
// skipped when the base push fails.
func (d *AnalyticsDispatcher) send(p pendingEvent, granted entities.ConsentSet) {
	for i, rec := range d.records(p, granted.Has(entities.ConsentMarketing)) {
		if err := d.push(rec); err != nil {
			d.log.Error(fmt.Sprintf("[tracking][%s] push failed; dropped", p.event.Kind),
				zap.String("key", p.key.String()), zap.String("record", rec.Event()), zap.Error(err))
			if i == 0 {
				return
			}
			continue
		}
		d.log.Info(fmt.Sprintf("[tracking][%s] pushed", p.event.Kind),
			zap.String("key", p.key.String()), zap.String("record", rec.Event()))
	}
}

// push appends one record, turning a panicking queue into an error.
func (d *AnalyticsDispatcher) push(rec entities.DataLayerRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("outbound queue panic: %v", r)
		}
	}()
	return d.queue.Push(rec)
}

func (d *AnalyticsDispatcher) ensureQueue(ctx context.Context) bool {
	if d.queue != nil {
		return true
	}
	if d.open == nil {
		d.log.Error("[tracking][init] no outbound queue opener configured")
		return false
	}
	q, err := d.open(ctx)
	if err != nil || q == nil {
		d.log.Warn("[tracking][init] outbound queue unavailable", zap.Error(err))
		return false
	}
	d.queue = q
	d.log.Info("[tracking][init] outbound queue ready", zap.Int("pending", len(d.pending)))
	return true
}

// records renders the base record of an event plus its companions.
func (d *AnalyticsDispatcher) records(p pendingEvent, marketing bool) []entities.DataLayerRecord {
	ev := p.event
	base := entities.DataLayerRecord{"event": string(ev.Kind)}

	if ev.Kind == entities.EventContactClick {
		base["event_category"] = contactEventCategory
		base["event_label"] = p.contactType
		base["currency"] = ev.Currency
	} else {
		base["ecommerce"] = ev.EcommerceObject()
	}

	if marketing {
		d.setAds(base, ev.Kind)
		switch ev.Kind {
		case entities.EventPurchase:
			base["google_ads_value"] = entities.FormatMoney(ev.ValueNoVAT.Decimal)
		case entities.EventContactClick:
			base["google_ads_value"] = entities.FormatMoney(ev.Value)
		}
	}

	out := []entities.DataLayerRecord{base}
	switch ev.Kind {
	case entities.EventViewItem:
		setIfNotEmpty(base, "sklik_retargeting_id", d.cfg.SklikRetargetingID)

	case entities.EventBeginCheckout:
		setIfNotEmpty(base, "sklik_conversion_id", d.cfg.SklikBeginCheckoutID)
		out = append(out, entities.DataLayerRecord{
			"event":               RecordSklikBeginCheckout,
			"sklik_conversion_id": d.cfg.SklikBeginCheckoutID,
			"sklik_order_id":      nil,
			"sklik_value":         entities.FormatMoney(ev.Value),
		})

	case entities.EventPurchase:
		noVAT := entities.FormatMoney(ev.ValueNoVAT.Decimal)
		heureka := heurekaItemsRecord(p.heurekaItems)

		setIfNotEmpty(base, "sklik_conversion_id", d.cfg.SklikPurchaseID)
		base["sklik_order_id"] = ev.TransactionID
		base["sklik_value"] = noVAT
		setIfNotEmpty(base, "heureka_api_key", d.cfg.HeurekaAPIKey)
		base["heureka_email"] = p.customerEmail
		base["heureka_order_id"] = ev.TransactionID
		base["heureka_items_dl"] = heureka

		if marketing {
			ads := entities.DataLayerRecord{
				"event":          RecordGoogleAdsPurchase,
				"value":          noVAT,
				"currency":       ev.Currency,
				"transaction_id": ev.TransactionID,
			}
			d.setAds(ads, ev.Kind)
			out = append(out, ads)
		}
		out = append(out,
			entities.DataLayerRecord{
				"event":               RecordSklikPurchase,
				"sklik_conversion_id": d.cfg.SklikPurchaseID,
				"sklik_order_id":      ev.TransactionID,
				"sklik_value":         noVAT,
			},
			entities.DataLayerRecord{
				"event":            RecordHeurekaPurchase,
				"heureka_api_key":  d.cfg.HeurekaAPIKey,
				"heureka_email":    p.customerEmail,
				"heureka_order_id": ev.TransactionID,
				"heureka_items":    heureka,
			},
		)
	}
	return out
}

func (d *AnalyticsDispatcher) setAds(rec entities.DataLayerRecord, kind entities.EventKind) {
	setIfNotEmpty(rec, "google_ads_id", d.cfg.GoogleAdsID)
	setIfNotEmpty(rec, "google_ads_label", d.cfg.AdsLabels[kind])
}

// checkValue warns when the event value differs from the sum of its line
// items. A purchase value may also include shipping. The event is sent
// either way.
func (d *AnalyticsDispatcher) checkValue(ev entities.EcommerceEvent) {
	items := ev.ItemsTotal()
	value := ev.Value.Round(entities.MoneyScale)
	if value.Equal(items) {
		return
	}
	if ev.Shipping.Valid && value.Equal(items.Add(ev.Shipping.Decimal).Round(entities.MoneyScale)) {
		return
	}
	d.log.Warn(fmt.Sprintf("[tracking][%s] value does not match items", ev.Kind),
		zap.String("value", entities.FormatMoney(value)),
		zap.String("items_total", entities.FormatMoney(items)))
}

// purchaseValueNoVAT is the ad-platform conversion value: items plus shipping,
// both without VAT. Orders without a VAT split fall back to the gross value.
func purchaseValueNoVAT(data entities.PurchaseData) decimal.NullDecimal {
	if !data.ValueNoVAT.Valid {
		return decimal.NewNullDecimal(roundMoney(data.Value.Decimal))
	}
	total := data.ValueNoVAT.Decimal.Add(nullToZero(data.ShippingNoVAT))
	return decimal.NewNullDecimal(roundMoney(total))
}

func heurekaItemsRecord(items []entities.HeurekaItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		out = append(out, map[string]any{
			"item_id":    it.ItemID,
			"item_name":  it.Name,
			"unit_price": entities.FormatMoney(roundMoney(it.UnitPrice)),
			"quantity":   qty,
		})
	}
	return out
}

func setIfNotEmpty(rec entities.DataLayerRecord, key, value string) {
	if value != "" {
		rec[key] = value
	}
}
