package handlers

import (
	"errors"
	"net/http"

	request "storefront_tracking/internal/adapter/http/dto/request"
	response "storefront_tracking/internal/adapter/http/dto/response"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase"
	"storefront_tracking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPricePayload = pkg.NewDomainErrorSimple("INVALID_PRICE_INPUT", "Invalid price request payload", http.StatusBadRequest)
)

// PriceHandler serves the authoritative configurator price.
type PriceHandler struct {
	usecase usecase.IPriceQuoteUseCase
	log     *zap.Logger
}

func NewPriceHandler(uc usecase.IPriceQuoteUseCase) *PriceHandler {
	return &PriceHandler{usecase: uc, log: logging.Named("http")}
}

// CalculatePrice godoc
// @Summary      Calculate the price of a product configuration
// @Description  Prices dimensions, discrete options and addons in CZK and EUR.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request  body      request.CalculatePriceRequest  true  "Configuration"
// @Success      200      {object}  response.CalculatePriceResponse
// @Failure      400      {object}  response.CalculatePriceErrorResponse
// @Failure      404      {object}  response.CalculatePriceErrorResponse
// @Failure      500      {object}  response.CalculatePriceErrorResponse
// @Router       /product/calculate-price [post]
func (h *PriceHandler) CalculatePrice(c *gin.Context) {
	var payload request.CalculatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("[pricing][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidPricePayload.HTTPStatus, response.CalculatePriceErrorResponse{ErrorMessage: errInvalidPricePayload.Message})
		return
	}

	quote, err := h.usecase.CalculatePrice(c.Request.Context(), payload.ToQuoteRequest())
	if err != nil {
		appErr := mapPriceQuoteError(err)
		h.log.Warn("[pricing][handler] calculate failed",
			zap.Int64("product_id", payload.ProductID), zap.String("code", appErr.Code), zap.Error(err))
		c.JSON(appErr.HTTPStatus, response.CalculatePriceErrorResponse{ErrorMessage: appErr.Message})
		return
	}

	c.JSON(http.StatusOK, response.FromPriceQuote(quote))
}

func mapPriceQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrIncompleteDimensions):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Product id and all custom dimensions are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDimensionOutOfRange):
		return pkg.NewDomainError("DIMENSION_OUT_OF_RANGE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOptionNotFound):
		return pkg.NewDomainError("OPTION_NOT_FOUND", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateOptionKind):
		return pkg.NewDomainError("DUPLICATE_OPTION_KIND", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotCustomisable):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_CUSTOMISABLE", "Product is not active or not customisable", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogNotConfigured):
		return pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Product catalog unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
