package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "storefront_tracking/docs" // generated by swag init
	"storefront_tracking/internal/adapter/http/handlers"
	"storefront_tracking/internal/adapter/persistence/repository"
	"storefront_tracking/internal/config"
	"storefront_tracking/internal/infrastructure/database"
	"storefront_tracking/internal/infrastructure/datalayer"
	"storefront_tracking/internal/infrastructure/payments"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run will start the server
func Run(cfg config.Config) {
	log := logging.Named("http")
	setMiddlewares(log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, log)

	log.Info("[http] listening", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func getRoutes(cfg config.Config, log *zap.Logger) {
	ddb := database.ConnectDynamoDB()

	sessionFlagRepo := repository.NewSessionFlagDynamoRepository(ddb, cfg.SessionFlagsTable, cfg.SessionFlagTTL)
	configuratorRepo := repository.NewProductConfiguratorDynamoRepository(ddb, cfg.ProductConfiguratorsTable)
	dataLayers := datalayer.NewMemoryStore(datalayer.DefaultMaxRecords)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured; purchase-from-payment disabled", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	priceQuoteUseCase := usecase.NewPriceQuoteUseCase(configuratorRepo)
	trackingUseCase := usecase.NewTrackingPageUseCase(
		dispatcherConfig(cfg.Tracking, log),
		payloadDefaults(cfg.Tracking),
		usecase.PageRetention{IdleTTL: cfg.Tracking.PageIdleTTL, MaxPages: cfg.Tracking.MaxOpenPages},
		sessionFlagRepo,
		dataLayers,
		paymentGateway,
	)

	go sweepIdlePages(context.Background(), trackingUseCase, cfg.Tracking.PageIdleTTL, log)

	priceHandler := handlers.NewPriceHandler(priceQuoteUseCase)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, priceHandler)
	addTrackingRoutes(v1, trackingHandler)
}

// sweepIdlePages closes idle tracking pages until ctx is done.
func sweepIdlePages(ctx context.Context, uc *usecase.TrackingPageUseCase, idleTTL time.Duration, log *zap.Logger) {
	if idleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(idleTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := uc.SweepIdlePages(ctx); n > 0 {
				log.Info("[tracking] idle pages swept", zap.Int("pages", n))
			}
		}
	}
}

func setMiddlewares(log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
