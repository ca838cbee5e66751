package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ProviderPaymentStatusApproved is the only status that yields a purchase.
const ProviderPaymentStatusApproved = "approved"

// ErrInvalidProviderPaymentID is returned by gateways for ids the provider
// cannot hold.
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

// ProviderPayment is the part of a payment provider record the storefront
// needs to report a purchase.
//
// ExternalReference carries the storefront order code when the checkout set
// it; otherwise the provider payment id identifies the transaction.
type ProviderPayment struct {
	ID                string
	Status            string
	ExternalReference string
	Currency          string
	Amount            decimal.Decimal
	PayerEmail        string
}

// TransactionID returns the id a purchase event is keyed on.
func (p ProviderPayment) TransactionID() string {
	if p.ExternalReference != "" {
		return p.ExternalReference
	}
	return p.ID
}

func (p ProviderPayment) Approved() bool {
	return p.Status == ProviderPaymentStatusApproved
}
