package interfaces

import "storefront_tracking/internal/domain/entities"

// IOutboundQueue is the append-only event queue read by the tag manager
// runtime (the GTM dataLayer). The tracking code only ever appends.
type IOutboundQueue interface {
	Push(record entities.DataLayerRecord) error
}
