package interfaces

import (
	"context"

	"storefront_tracking/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The tracking service uses it to look up a confirmed payment and report it
// as a purchase conversion.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, providerPaymentID string) (entities.ProviderPayment, error)
}
