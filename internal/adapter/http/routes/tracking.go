package routes

import (
	"storefront_tracking/internal/adapter/http/handlers"
	"storefront_tracking/internal/config"
	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	PathTrackingPages = "/tracking/pages"
)

func addTrackingRoutes(rg *gin.RouterGroup, trackingHandler *handlers.TrackingHandler) {
	pages := rg.Group(PathTrackingPages)
	{
		pages.POST("", trackingHandler.OpenPage)
		pages.PUT("/:page_id/consent", trackingHandler.UpdateConsent)
		pages.POST("/:page_id/activate", trackingHandler.Activate)
		pages.POST("/:page_id/events/:kind", trackingHandler.TrackEvent)
		pages.POST("/:page_id/purchases/:payment_id", trackingHandler.PurchaseFromPayment)
		pages.GET("/:page_id/datalayer", trackingHandler.GetDataLayer)
		pages.DELETE("/:page_id", trackingHandler.ClosePage)
	}
}

func dispatcherConfig(cfg config.TrackingConfig, log *zap.Logger) usecase.DispatcherConfig {
	labels := make(map[entities.EventKind]string, len(cfg.AdsLabels))
	for kind, label := range cfg.AdsLabels {
		if label != "" {
			labels[entities.EventKind(kind)] = label
		}
	}

	contactValue, err := decimal.NewFromString(cfg.ContactValue)
	if err != nil {
		log.Warn("invalid contact conversion value; using zero", zap.String("value", cfg.ContactValue), zap.Error(err))
		contactValue = decimal.Zero
	}

	return usecase.DispatcherConfig{
		GoogleAdsID:          cfg.GoogleAdsID,
		AdsLabels:            labels,
		SklikRetargetingID:   cfg.SklikRetargeting,
		SklikPurchaseID:      cfg.SklikPurchase,
		SklikBeginCheckoutID: cfg.SklikCheckout,
		HeurekaAPIKey:        cfg.HeurekaAPIKey,
		ContactValue:         contactValue,
		ContactCurrency:      cfg.DefaultCurrency,
	}
}

func payloadDefaults(cfg config.TrackingConfig) usecase.PayloadDefaults {
	return usecase.PayloadDefaults{
		Currency: cfg.DefaultCurrency,
		Brand:    cfg.DefaultBrand,
		Category: cfg.DefaultCategory,
		ItemName: cfg.DefaultItemName,
	}
}
