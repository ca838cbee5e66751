package usecase

import (
	"context"
	"sort"
	"sync"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PriceCalculatorConfig describes the product being configured.
//
// Configurator carries the rates, options and addons used for the local
// estimate; the authoritative endpoint prices the same catalog.
type PriceCalculatorConfig struct {
	Configurator        entities.ProductConfigurator
	Currency            entities.Currency
	InitialDimensions   entities.Dimensions
	RequiredOptionKinds []entities.OptionKind
}

// PriceView is what the configurator renders after every change.
type PriceView struct {
	Currency      entities.Currency
	Lines         []entities.BreakdownLine
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal
	Quantity      int
	Authoritative bool
	Calculating   bool
	Err           *entities.CalculationError
	SubmitEnabled bool
}

// PriceCalculator keeps a configurator's displayed price up to date.
//
// Every input change recomputes a local estimate synchronously. Dimension
// changes also schedule a debounced request to the authoritative endpoint;
// its answer replaces the estimate unless a newer dimension change happened
// after the request was issued.
type PriceCalculator struct {
	mu sync.Mutex

	cfg       PriceCalculatorConfig
	client    interfaces.IPriceQuoteClient
	debouncer interfaces.IDebouncer
	onChange  func(PriceView)

	ctx    context.Context
	cancel context.CancelFunc

	dims      entities.Dimensions
	options   map[entities.OptionKind]int64
	addons    map[int64]struct{}
	quantity  int
	revision  uint64
	dimsValid bool

	// generation increases on every dimension change and every issued
	// request; only a response carrying the current generation is applied.
	generation uint64
	awaiting   bool

	quote      *entities.PriceQuote
	quoteDims  entities.Dimensions
	showQuote  bool
	lastErr    *entities.CalculationError
	quoteCount int

	log *zap.Logger
}

// NewPriceCalculator builds a calculator and computes the first local
// estimate. onChange may be nil.
func NewPriceCalculator(
	cfg PriceCalculatorConfig,
	client interfaces.IPriceQuoteClient,
	debouncer interfaces.IDebouncer,
	onChange func(PriceView),
) *PriceCalculator {
	if cfg.Currency == "" {
		cfg.Currency = entities.CurrencyCZK
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &PriceCalculator{
		cfg:       cfg,
		client:    client,
		debouncer: debouncer,
		onChange:  onChange,
		ctx:       ctx,
		cancel:    cancel,
		dims:      cfg.InitialDimensions,
		options:   make(map[entities.OptionKind]int64),
		addons:    make(map[int64]struct{}),
		quantity:  1,
		log:       logging.Named("pricing"),
	}
	if err := c.validateLocked(); err != nil {
		c.lastErr = entities.NewCalculationError(entities.CalculationErrorValidation, err.Error(), err)
	} else {
		c.dimsValid = true
	}
	return c
}

// SetDimension updates one dimension (centimeters) and schedules an
// authoritative recalculation.
func (c *PriceCalculator) SetDimension(dim entities.Dimension, value decimal.Decimal) {
	c.mu.Lock()
	if !c.dims.Set(dim, value) {
		c.mu.Unlock()
		c.log.Warn("[pricing][calculator] unknown dimension ignored", zap.String("dimension", string(dim)))
		return
	}
	c.revision++
	c.generation++
	c.showQuote = false

	if err := c.validateLocked(); err != nil {
		c.dimsValid = false
		c.awaiting = false
		c.lastErr = entities.NewCalculationError(entities.CalculationErrorValidation, err.Error(), err)
		c.debouncer.Stop()
	} else {
		c.dimsValid = true
		c.scheduleLocked()
	}
	view := c.viewLocked()
	c.mu.Unlock()

	c.emit(view)
}

// SelectOption selects a discrete option for its kind. An id of zero clears
// the selection. Unknown ids are ignored.
func (c *PriceCalculator) SelectOption(kind entities.OptionKind, optionID int64) {
	c.mu.Lock()
	if optionID == 0 {
		delete(c.options, kind)
	} else {
		opt, ok := c.cfg.Configurator.FindOption(optionID)
		if !ok || opt.Kind != kind {
			c.mu.Unlock()
			c.log.Warn("[pricing][calculator] unknown option ignored",
				zap.String("kind", string(kind)), zap.Int64("option_id", optionID))
			return
		}
		c.options[kind] = optionID
	}
	c.revision++
	c.showQuote = false
	view := c.viewLocked()
	c.mu.Unlock()

	c.emit(view)
}

// SetAddon selects or deselects an addon.
func (c *PriceCalculator) SetAddon(addonID int64, selected bool) {
	c.mu.Lock()
	if selected {
		if _, ok := c.cfg.Configurator.FindAddon(addonID); !ok {
			c.mu.Unlock()
			c.log.Warn("[pricing][calculator] unknown addon ignored", zap.Int64("addon_id", addonID))
			return
		}
		c.addons[addonID] = struct{}{}
	} else {
		delete(c.addons, addonID)
	}
	c.revision++
	c.showQuote = false
	view := c.viewLocked()
	c.mu.Unlock()

	c.emit(view)
}

// SetQuantity changes the ordered quantity. The unit price is unaffected.
func (c *PriceCalculator) SetQuantity(quantity int) {
	c.mu.Lock()
	c.quantity = quantity
	view := c.viewLocked()
	c.mu.Unlock()

	c.emit(view)
}

// Refresh schedules an authoritative recalculation of the current
// configuration without changing it.
func (c *PriceCalculator) Refresh() {
	c.mu.Lock()
	if c.dimsValid {
		c.generation++
		c.scheduleLocked()
	}
	view := c.viewLocked()
	c.mu.Unlock()

	c.emit(view)
}

func (c *PriceCalculator) View() PriceView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *PriceCalculator) CanSubmit() bool {
	return c.View().SubmitEnabled
}

// QuoteRequests returns how many authoritative requests were issued.
func (c *PriceCalculator) QuoteRequests() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quoteCount
}

// Close cancels a pending recalculation and any request in flight.
func (c *PriceCalculator) Close() {
	c.debouncer.Stop()
	c.cancel()
}

func (c *PriceCalculator) scheduleLocked() {
	c.awaiting = true
	c.debouncer.Trigger(c.fetch)
}

// fetch runs on the debouncer's goroutine.
func (c *PriceCalculator) fetch() {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	rev := c.revision
	req := c.requestLocked()
	c.quoteCount++
	c.mu.Unlock()

	c.log.Debug("[pricing][calculator] requesting authoritative price",
		zap.Int64("product_id", req.ProductID), zap.Uint64("generation", gen))
	quote, err := c.client.Quote(c.ctx, req)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.log.Debug("[pricing][calculator] stale response discarded", zap.Uint64("generation", gen))
		return
	}
	c.awaiting = false
	if err != nil {
		c.lastErr = entities.AsCalculationError(err)
		c.log.Warn("[pricing][calculator] calculation failed",
			zap.String("kind", string(c.lastErr.Kind)), zap.String("message", c.lastErr.Message))
	} else {
		c.lastErr = nil
		c.quote = &quote
		c.quoteDims = req.Dimensions
		c.showQuote = rev == c.revision
	}
	view := c.viewLocked()
	c.mu.Unlock()

	c.emit(view)
}

func (c *PriceCalculator) requestLocked() entities.QuoteRequest {
	req := entities.QuoteRequest{
		ProductID:         c.cfg.Configurator.ProductID,
		Dimensions:        c.dims,
		SelectedOptionIDs: []int64{},
		SelectedAddonIDs:  []int64{},
	}
	for _, kind := range entities.OptionKinds {
		if id, ok := c.options[kind]; ok {
			req.SelectedOptionIDs = append(req.SelectedOptionIDs, id)
		}
	}
	for id := range c.addons {
		req.SelectedAddonIDs = append(req.SelectedAddonIDs, id)
	}
	sort.Slice(req.SelectedAddonIDs, func(i, j int) bool { return req.SelectedAddonIDs[i] < req.SelectedAddonIDs[j] })
	return req
}

func (c *PriceCalculator) validateLocked() error {
	return c.cfg.Configurator.ValidateDimensions(c.dims)
}

// breakdownLocked returns the authoritative breakdown when it matches the
// current configuration, otherwise the local estimate. The estimate uses the
// last authoritative base while dimensions are unchanged since it was
// computed.
func (c *PriceCalculator) breakdownLocked() (entities.PriceBreakdown, bool) {
	cur := c.cfg.Currency
	if c.showQuote && c.quote != nil {
		return c.quote.Breakdown(cur, c.quantity), true
	}

	conf := c.cfg.Configurator
	b := entities.PriceBreakdown{
		Currency: cur,
		Base:     conf.BasePrice(c.dims, cur),
		Options:  make(map[entities.OptionKind]decimal.Decimal, len(c.options)),
		Quantity: c.quantity,
	}
	if c.quote != nil && sameDimensions(c.quoteDims, c.dims) {
		b.Base = c.quote.Base.For(cur)
	}

	for _, kind := range entities.OptionKinds {
		id, ok := c.options[kind]
		if !ok {
			continue
		}
		if opt, found := conf.FindOption(id); found {
			b.Options[kind] = opt.Surcharge.For(cur)
		}
	}

	ids := make([]int64, 0, len(c.addons))
	for id := range c.addons {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		addon, found := conf.FindAddon(id)
		if !found || !addon.Active {
			continue
		}
		if v := addon.PriceFor(c.dims, cur); v.IsPositive() {
			b.Addons = append(b.Addons, entities.BreakdownLine{Label: addon.Name, Amount: v})
		}
	}
	return b, false
}

func (c *PriceCalculator) viewLocked() PriceView {
	b, authoritative := c.breakdownLocked()
	view := PriceView{
		Currency:      c.cfg.Currency,
		Lines:         b.Lines(),
		UnitPrice:     b.UnitPrice(),
		Total:         b.Total(),
		Quantity:      c.quantity,
		Authoritative: authoritative,
		Calculating:   c.awaiting,
		Err:           c.lastErr,
	}
	view.SubmitEnabled = c.quantity >= 1 &&
		c.lastErr == nil &&
		!c.awaiting &&
		c.requiredSelectedLocked()
	return view
}

func (c *PriceCalculator) requiredSelectedLocked() bool {
	for _, kind := range c.cfg.RequiredOptionKinds {
		if _, ok := c.options[kind]; !ok {
			return false
		}
	}
	return true
}

func (c *PriceCalculator) emit(view PriceView) {
	if c.onChange != nil {
		c.onChange(view)
	}
}

func sameDimensions(a, b entities.Dimensions) bool {
	return a.Length.Equal(b.Length) && a.Width.Equal(b.Width) && a.Height.Equal(b.Height)
}
