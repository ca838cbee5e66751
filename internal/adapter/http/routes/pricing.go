package routes

import (
	"storefront_tracking/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProduct = "/product"
)

func addPricingRoutes(rg *gin.RouterGroup, priceHandler *handlers.PriceHandler) {
	product := rg.Group(PathProduct)
	{
		product.POST("/calculate-price", priceHandler.CalculatePrice)
	}
}
