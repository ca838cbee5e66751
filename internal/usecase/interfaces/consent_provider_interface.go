package interfaces

import "storefront_tracking/internal/domain/entities"

// IConsentProvider exposes the visitor's current consent.
//
// It is owned by the consent banner integration. Callers query it once per
// decision and must not cache the answer: consent can change at any time.
type IConsentProvider interface {
	GrantedCategories() entities.ConsentSet
}
