package interfaces

import (
	"context"

	"storefront_tracking/internal/domain/entities"
)

// IDataLayerStore owns the outbound queues of open tracking pages.
//
// Open is idempotent per page. Records returns the queue content in push
// order and nil for a page that was never opened.
type IDataLayerStore interface {
	Open(ctx context.Context, pageID string) (IOutboundQueue, error)
	Records(ctx context.Context, pageID string) ([]entities.DataLayerRecord, error)
	Discard(ctx context.Context, pageID string) error
}
