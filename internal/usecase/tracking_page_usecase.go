package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrTrackingPageNotFound        = errors.New("tracking page not found")
	ErrInvalidPageID               = errors.New("invalid page id")
	ErrUnknownEventKind            = errors.New("unknown event kind")
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrPaymentNotFound             = errors.New("payment not found")
	ErrPaymentNotApproved          = errors.New("payment not approved")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
	ErrDataLayerStoreNotConfigured = errors.New("data layer store not configured")
)

// ITrackingPageUseCase runs the consent-gated dispatcher of each open
// storefront page.
//
// A page is opened on load, receives consent notifications and e-commerce
// actions, and is closed on unload. Track* calls never fail because of the
// event itself; errors only report an unknown page.
type ITrackingPageUseCase interface {
	OpenPage(ctx context.Context, sessionID string, consent entities.ConsentSet) (entities.TrackingPage, error)
	UpdateConsent(ctx context.Context, pageID string, consent entities.ConsentSet) (entities.TrackingPage, error)
	Activate(ctx context.Context, pageID string) (entities.TrackingPage, error)

	TrackViewItem(ctx context.Context, pageID string, data entities.ViewItemData) error
	TrackAddToCart(ctx context.Context, pageID string, data entities.AddToCartData) error
	TrackBeginCheckout(ctx context.Context, pageID string, data entities.CheckoutData) error
	TrackPurchase(ctx context.Context, pageID string, data entities.PurchaseData) error
	TrackContactClick(ctx context.Context, pageID string, contactType string) error
	TrackPurchaseFromPayment(ctx context.Context, pageID, paymentID string, order entities.PurchaseData) (entities.PurchaseData, error)

	DataLayer(ctx context.Context, pageID string) ([]entities.DataLayerRecord, error)
	ClosePage(ctx context.Context, pageID string) error
}

// consentState is the mutable consent of one page. The dispatcher reads it
// through IConsentProvider on every decision.
type consentState struct {
	mu  sync.RWMutex
	set entities.ConsentSet
}

func (s *consentState) GrantedCategories() entities.ConsentSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

func (s *consentState) replace(set entities.ConsentSet) {
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
}

type trackingPage struct {
	mu         sync.Mutex
	page       entities.TrackingPage
	consent    *consentState
	dispatcher *AnalyticsDispatcher
}

func (p *trackingPage) lastSeen() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page.UpdatedAt
}

func (p *trackingPage) snapshot() entities.TrackingPage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.page
	out.Consent = p.consent.GrantedCategories()
	out.Ready = p.dispatcher.Ready()
	return out
}

// PageRetention bounds the pages held in memory. A page idle for longer than
// IdleTTL is closed; when MaxPages are open the longest idle page is closed
// to make room for a new one. Zero disables a limit.
type PageRetention struct {
	IdleTTL  time.Duration
	MaxPages int
}

type TrackingPageUseCase struct {
	dispatcherCfg DispatcherConfig
	builder       EcommercePayloadBuilder
	retention     PageRetention
	sessions      interfaces.ISessionFlagStore
	dataLayers    interfaces.IDataLayerStore
	gateway       interfaces.IPaymentGateway

	mu    sync.RWMutex
	pages map[string]*trackingPage

	now func() time.Time
	log *zap.Logger
}

var _ ITrackingPageUseCase = (*TrackingPageUseCase)(nil)

func NewTrackingPageUseCase(
	cfg DispatcherConfig,
	defaults PayloadDefaults,
	retention PageRetention,
	sessions interfaces.ISessionFlagStore,
	dataLayers interfaces.IDataLayerStore,
	gateway interfaces.IPaymentGateway,
) *TrackingPageUseCase {
	return &TrackingPageUseCase{
		dispatcherCfg: cfg,
		builder:       NewEcommercePayloadBuilder(defaults),
		retention:     retention,
		sessions:      sessions,
		dataLayers:    dataLayers,
		gateway:       gateway,
		pages:         make(map[string]*trackingPage),
		now:           func() time.Time { return time.Now().UTC() },
		log:           logging.Named("tracking"),
	}
}

func (u *TrackingPageUseCase) OpenPage(ctx context.Context, sessionID string, consent entities.ConsentSet) (entities.TrackingPage, error) {
	if u.dataLayers == nil {
		return entities.TrackingPage{}, ErrDataLayerStoreNotConfigured
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	now := u.now()
	pageID := uuid.NewString()
	state := &consentState{set: consent}
	stores := u.dataLayers
	opener := func(ctx context.Context) (interfaces.IOutboundQueue, error) {
		return stores.Open(ctx, pageID)
	}

	p := &trackingPage{
		page: entities.TrackingPage{
			ID:        pageID,
			SessionID: sessionID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		consent: state,
		dispatcher: NewAnalyticsDispatcher(
			u.dispatcherCfg,
			state,
			NewEventDeduplicator(u.sessions, sessionID),
			u.builder,
			opener,
		),
	}

	u.mu.Lock()
	evicted := append(u.expireLocked(now), u.makeRoomLocked()...)
	u.pages[pageID] = p
	u.mu.Unlock()
	u.discardEvicted(ctx, evicted)

	u.log.Info("[tracking][usecase] page opened",
		zap.String("page_id", pageID), zap.String("session_id", sessionID),
		zap.Any("consent", consent.Categories()))
	return p.snapshot(), nil
}

// UpdateConsent stores the new consent and runs the consent notification
// path of the page's dispatcher.
func (u *TrackingPageUseCase) UpdateConsent(ctx context.Context, pageID string, consent entities.ConsentSet) (entities.TrackingPage, error) {
	p, err := u.page(pageID)
	if err != nil {
		return entities.TrackingPage{}, err
	}

	p.consent.replace(consent)
	p.dispatcher.OnConsentChanged(ctx)
	u.touch(p)

	u.log.Info("[tracking][usecase] consent updated",
		zap.String("page_id", pageID), zap.Any("consent", consent.Categories()))
	return p.snapshot(), nil
}

// Activate is the page-load path: it initializes the dispatcher, flushing
// anything buffered so far. Repeated calls are harmless.
func (u *TrackingPageUseCase) Activate(ctx context.Context, pageID string) (entities.TrackingPage, error) {
	p, err := u.page(pageID)
	if err != nil {
		return entities.TrackingPage{}, err
	}

	p.dispatcher.Initialize(ctx)
	u.touch(p)
	return p.snapshot(), nil
}

func (u *TrackingPageUseCase) TrackViewItem(ctx context.Context, pageID string, data entities.ViewItemData) error {
	p, err := u.page(pageID)
	if err != nil {
		return err
	}
	p.dispatcher.TrackViewItem(ctx, data)
	u.touch(p)
	return nil
}

func (u *TrackingPageUseCase) TrackAddToCart(ctx context.Context, pageID string, data entities.AddToCartData) error {
	p, err := u.page(pageID)
	if err != nil {
		return err
	}
	p.dispatcher.TrackAddToCart(ctx, data)
	u.touch(p)
	return nil
}

func (u *TrackingPageUseCase) TrackBeginCheckout(ctx context.Context, pageID string, data entities.CheckoutData) error {
	p, err := u.page(pageID)
	if err != nil {
		return err
	}
	p.dispatcher.TrackBeginCheckout(ctx, data)
	u.touch(p)
	return nil
}

func (u *TrackingPageUseCase) TrackPurchase(ctx context.Context, pageID string, data entities.PurchaseData) error {
	p, err := u.page(pageID)
	if err != nil {
		return err
	}
	p.dispatcher.TrackPurchase(ctx, data)
	u.touch(p)
	return nil
}

func (u *TrackingPageUseCase) TrackContactClick(ctx context.Context, pageID string, contactType string) error {
	p, err := u.page(pageID)
	if err != nil {
		return err
	}
	p.dispatcher.TrackContactClick(ctx, contactType)
	u.touch(p)
	return nil
}

// TrackPurchaseFromPayment reports an approved provider payment as a
// purchase. order may carry the line items and VAT split known to the
// storefront; transaction id, value, currency and customer e-mail come from
// the payment. Without items a single line covering the paid amount is used.
func (u *TrackingPageUseCase) TrackPurchaseFromPayment(ctx context.Context, pageID, paymentID string, order entities.PurchaseData) (entities.PurchaseData, error) {
	p, err := u.page(pageID)
	if err != nil {
		return entities.PurchaseData{}, err
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PurchaseData{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.PurchaseData{}, ErrPaymentGatewayNotConfigured
	}

	u.log.Info("[tracking][usecase] resolving payment", zap.String("page_id", pageID), zap.String("payment_id", paymentID))
	payment, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		u.log.Error("[tracking][usecase] payment lookup failed", zap.String("payment_id", paymentID), zap.Error(err))
		switch {
		case errors.Is(err, entities.ErrInvalidProviderPaymentID):
			return entities.PurchaseData{}, ErrInvalidPaymentID
		case isGatewayNotFound(err):
			return entities.PurchaseData{}, ErrPaymentNotFound
		case isGatewayUnauthorized(err):
			return entities.PurchaseData{}, ErrPaymentGatewayUnauthorized
		}
		return entities.PurchaseData{}, err
	}
	if payment.ID == "" {
		return entities.PurchaseData{}, ErrPaymentNotFound
	}
	if !payment.Approved() {
		u.log.Warn("[tracking][usecase] payment not approved",
			zap.String("payment_id", paymentID), zap.String("status", payment.Status))
		return entities.PurchaseData{}, ErrPaymentNotApproved
	}

	data := order
	data.TransactionID = payment.TransactionID()
	data.Value = decimal.NewNullDecimal(payment.Amount)
	if payment.Currency != "" {
		data.Currency = payment.Currency
	}
	if payment.PayerEmail != "" {
		data.CustomerEmail = payment.PayerEmail
	}
	if len(data.Items) == 0 {
		quantity := 1
		data.Items = []entities.ItemData{{
			ItemID:   data.TransactionID,
			Price:    decimal.NewNullDecimal(payment.Amount),
			Quantity: &quantity,
		}}
	}

	p.dispatcher.TrackPurchase(ctx, data)
	u.touch(p)
	return data, nil
}

func (u *TrackingPageUseCase) DataLayer(ctx context.Context, pageID string) ([]entities.DataLayerRecord, error) {
	if _, err := u.page(pageID); err != nil {
		return nil, err
	}
	records, err := u.dataLayers.Records(ctx, strings.TrimSpace(pageID))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []entities.DataLayerRecord{}
	}
	return records, nil
}

// ClosePage ends the page lifetime. Its dedup set and pending buffer are
// discarded; session flags stay in the session store.
func (u *TrackingPageUseCase) ClosePage(ctx context.Context, pageID string) error {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return ErrInvalidPageID
	}

	u.mu.Lock()
	_, ok := u.pages[pageID]
	delete(u.pages, pageID)
	u.mu.Unlock()
	if !ok {
		return ErrTrackingPageNotFound
	}

	if err := u.dataLayers.Discard(ctx, pageID); err != nil {
		u.log.Warn("[tracking][usecase] data layer discard failed", zap.String("page_id", pageID), zap.Error(err))
	}
	u.log.Info("[tracking][usecase] page closed", zap.String("page_id", pageID))
	return nil
}

// SweepIdlePages closes every page idle for longer than the retention TTL
// and returns how many were closed.
func (u *TrackingPageUseCase) SweepIdlePages(ctx context.Context) int {
	u.mu.Lock()
	evicted := u.expireLocked(u.now())
	u.mu.Unlock()

	u.discardEvicted(ctx, evicted)
	return len(evicted)
}

func (u *TrackingPageUseCase) expireLocked(now time.Time) []string {
	if u.retention.IdleTTL <= 0 {
		return nil
	}
	var evicted []string
	for id, p := range u.pages {
		if now.Sub(p.lastSeen()) > u.retention.IdleTTL {
			delete(u.pages, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// makeRoomLocked closes the longest idle pages until one more page fits.
func (u *TrackingPageUseCase) makeRoomLocked() []string {
	if u.retention.MaxPages <= 0 {
		return nil
	}
	var evicted []string
	for len(u.pages) >= u.retention.MaxPages {
		var oldestID string
		var oldest time.Time
		for id, p := range u.pages {
			if seen := p.lastSeen(); oldestID == "" || seen.Before(oldest) {
				oldestID, oldest = id, seen
			}
		}
		delete(u.pages, oldestID)
		evicted = append(evicted, oldestID)
	}
	return evicted
}

func (u *TrackingPageUseCase) discardEvicted(ctx context.Context, pageIDs []string) {
	for _, id := range pageIDs {
		if err := u.dataLayers.Discard(ctx, id); err != nil {
			u.log.Warn("[tracking][usecase] data layer discard failed", zap.String("page_id", id), zap.Error(err))
		}
		u.log.Info("[tracking][usecase] idle page evicted", zap.String("page_id", id))
	}
}

func (u *TrackingPageUseCase) page(pageID string) (*trackingPage, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return nil, ErrInvalidPageID
	}
	u.mu.RLock()
	p, ok := u.pages[pageID]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrTrackingPageNotFound
	}
	return p, nil
}

func (u *TrackingPageUseCase) touch(p *trackingPage) {
	p.mu.Lock()
	p.page.UpdatedAt = u.now()
	p.mu.Unlock()
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"not_found\"") || strings.Contains(msg, "\"status\":404")
}
