package entities

// TrackedEventKey identifies one dispatch: an event kind plus the context it
// happened in (item id, transaction id, or a page-scoped constant).
//
// Once a key is marked tracked no equal key is dispatched again during the
// same page lifetime.
type TrackedEventKey struct {
	Kind      EventKind
	ContextID string
}

// PageScopeContext is the context id used by events without a natural key.
const PageScopeContext = "page"

func NewTrackedEventKey(kind EventKind, contextID string) TrackedEventKey {
	if contextID == "" {
		contextID = PageScopeContext
	}
	return TrackedEventKey{Kind: kind, ContextID: contextID}
}

func (k TrackedEventKey) String() string {
	return string(k.Kind) + "_" + k.ContextID
}

// CheckoutVisitedFlag is the session-scoped flag that keeps begin_checkout
// from firing again after a reload within one browsing session.
const CheckoutVisitedFlag = "checkout_visited"
