package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidProductID       = errors.New("invalid product id")
	ErrProductNotFound        = errors.New("product not found")
	ErrProductNotCustomisable = errors.New("product is not active or not customisable")
	ErrIncompleteDimensions   = errors.New("incomplete dimensions")
	ErrDimensionOutOfRange    = errors.New("dimension out of range")
	ErrOptionNotFound         = errors.New("option not found")
	ErrDuplicateOptionKind    = errors.New("more than one option selected for the same kind")
	ErrCatalogNotConfigured   = errors.New("product catalog not configured")
)

// IPriceQuoteUseCase computes the authoritative price of a configuration.
//
// Rules:
//   - the product must be active and customisable
//   - all three dimensions are required and must lie within the configured ranges
//   - unknown option ids are an error, unknown or inactive addons are skipped
type IPriceQuoteUseCase interface {
	CalculatePrice(ctx context.Context, req entities.QuoteRequest) (entities.PriceQuote, error)
}

type PriceQuoteUseCase struct {
	repo interfaces.IProductConfiguratorRepository
	log  *zap.Logger
}

var _ IPriceQuoteUseCase = (*PriceQuoteUseCase)(nil)

func NewPriceQuoteUseCase(repo interfaces.IProductConfiguratorRepository) *PriceQuoteUseCase {
	return &PriceQuoteUseCase{repo: repo, log: logging.Named("pricing")}
}

func (u *PriceQuoteUseCase) CalculatePrice(ctx context.Context, req entities.QuoteRequest) (entities.PriceQuote, error) {
	u.log.Info("[pricing][usecase] calculate start",
		zap.Int64("product_id", req.ProductID),
		zap.Int("options", len(req.SelectedOptionIDs)),
		zap.Int("addons", len(req.SelectedAddonIDs)))

	if req.ProductID <= 0 {
		return entities.PriceQuote{}, ErrInvalidProductID
	}
	if u.repo == nil {
		return entities.PriceQuote{}, ErrCatalogNotConfigured
	}

	conf, err := u.repo.GetByProductID(ctx, req.ProductID)
	if err != nil {
		u.log.Error("[pricing][usecase] catalog read failed", zap.Int64("product_id", req.ProductID), zap.Error(err))
		return entities.PriceQuote{}, err
	}
	if conf.ProductID == 0 {
		return entities.PriceQuote{}, ErrProductNotFound
	}
	if !conf.Active || !conf.Customisable {
		return entities.PriceQuote{}, ErrProductNotCustomisable
	}

	dims := req.Dimensions
	if dims.Length.IsZero() || dims.Width.IsZero() || dims.Height.IsZero() {
		return entities.PriceQuote{}, ErrIncompleteDimensions
	}
	if err := conf.ValidateDimensions(dims); err != nil {
		return entities.PriceQuote{}, fmt.Errorf("%w: %v", ErrDimensionOutOfRange, err)
	}

	quote := entities.PriceQuote{Options: make(map[entities.OptionKind]entities.Prices, len(entities.OptionKinds))}
	for _, c := range entities.SupportedCurrencies {
		setPrice(&quote.Base, c, conf.BasePrice(dims, c))
	}

	for _, id := range req.SelectedOptionIDs {
		opt, ok := conf.FindOption(id)
		if !ok {
			return entities.PriceQuote{}, fmt.Errorf("%w: %d", ErrOptionNotFound, id)
		}
		if _, dup := quote.Options[opt.Kind]; dup {
			return entities.PriceQuote{}, fmt.Errorf("%w: %s", ErrDuplicateOptionKind, opt.Kind)
		}
		var p entities.Prices
		for _, c := range entities.SupportedCurrencies {
			setPrice(&p, c, opt.Surcharge.For(c).Round(entities.MoneyScale))
		}
		quote.Options[opt.Kind] = p
	}

	seen := make(map[int64]struct{}, len(req.SelectedAddonIDs))
	for _, id := range req.SelectedAddonIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		addon, ok := conf.FindAddon(id)
		if !ok {
			u.log.Warn("[pricing][usecase] addon not found; skipped", zap.Int64("addon_id", id))
			continue
		}
		if !addon.Active {
			u.log.Warn("[pricing][usecase] addon inactive; skipped", zap.Int64("addon_id", id), zap.String("name", addon.Name))
			continue
		}

		var p entities.Prices
		positive := false
		for _, c := range entities.SupportedCurrencies {
			v := addon.PriceFor(dims, c)
			setPrice(&p, c, v)
			positive = positive || v.IsPositive()
		}
		if positive {
			quote.Addons = append(quote.Addons, entities.AddonQuote{Name: addon.Name, Price: p})
		}
	}

	for _, c := range entities.SupportedCurrencies {
		setPrice(&quote.Total, c, quote.Breakdown(c, 1).UnitPrice())
	}

	u.log.Info("[pricing][usecase] calculate done",
		zap.Int64("product_id", req.ProductID),
		zap.String("total_czk", entities.FormatMoney(quote.Total.CZK)),
		zap.String("total_eur", entities.FormatMoney(quote.Total.EUR)))
	return quote, nil
}

func setPrice(p *entities.Prices, c entities.Currency, v decimal.Decimal) {
	switch c {
	case entities.CurrencyEUR:
		p.EUR = v
	default:
		p.CZK = v
	}
}
