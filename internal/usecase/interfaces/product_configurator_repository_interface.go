package interfaces

import (
	"context"

	"storefront_tracking/internal/domain/entities"
)

// IProductConfiguratorRepository abstracts DynamoDB persistence for product
// configurators.
//
// GetByProductID returns a zero value (ProductID == 0) when nothing is stored.
type IProductConfiguratorRepository interface {
	GetByProductID(ctx context.Context, productID int64) (entities.ProductConfigurator, error)
	Save(ctx context.Context, c entities.ProductConfigurator) error
}
