package entities

import "time"

// TrackingPage is one page lifetime of a storefront visitor as seen by the
// tracking service. Dedup state and the pending buffer live and die with it.
//
// SessionID identifies the browsing session and scopes flags that must
// survive a reload (checkout_visited).
type TrackingPage struct {
	ID        string     `json:"page_id"`
	SessionID string     `json:"session_id"`
	Consent   ConsentSet `json:"-"`
	Ready     bool       `json:"ready"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
