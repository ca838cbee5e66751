package interfaces

import "context"

// ISessionFlagStore persists boolean flags scoped to one browsing session.
//
// Flags outlive a single page. Expiry is the store's own policy; callers
// never clear a flag.
type ISessionFlagStore interface {
	IsSet(ctx context.Context, sessionID, flag string) (bool, error)
	Set(ctx context.Context, sessionID, flag string) error
}
