package usecase

import (
	"context"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// EventDeduplicator remembers which events were dispatched during one page
// lifetime.
//
// The set lives in memory and is discarded with the page. begin_checkout is
// also mirrored into the session flag store so a reload mid-checkout does not
// fire it again. Nothing is ever evicted.
//
// Not safe for concurrent use; the dispatcher serializes access.
type EventDeduplicator struct {
	tracked   map[entities.TrackedEventKey]struct{}
	sessions  interfaces.ISessionFlagStore
	sessionID string
	log       *zap.Logger
}

// NewEventDeduplicator builds a page-scoped deduplicator. sessions may be nil,
// in which case begin_checkout is deduplicated per page only.
func NewEventDeduplicator(sessions interfaces.ISessionFlagStore, sessionID string) *EventDeduplicator {
	return &EventDeduplicator{
		tracked:   make(map[entities.TrackedEventKey]struct{}),
		sessions:  sessions,
		sessionID: sessionID,
		log:       logging.Named("dedup"),
	}
}

func (d *EventDeduplicator) HasTracked(ctx context.Context, key entities.TrackedEventKey) bool {
	if _, ok := d.tracked[key]; ok {
		return true
	}
	if !d.persistsKind(key.Kind) {
		return false
	}

	set, err := d.sessions.IsSet(ctx, d.sessionID, entities.CheckoutVisitedFlag)
	if err != nil {
		d.log.Warn("[dedup][session] flag read failed; treating as unset",
			zap.String("session_id", d.sessionID), zap.String("key", key.String()), zap.Error(err))
		return false
	}
	return set
}

func (d *EventDeduplicator) MarkTracked(ctx context.Context, key entities.TrackedEventKey) {
	d.tracked[key] = struct{}{}
	if !d.persistsKind(key.Kind) {
		return
	}

	if err := d.sessions.Set(ctx, d.sessionID, entities.CheckoutVisitedFlag); err != nil {
		d.log.Error("[dedup][session] flag write failed",
			zap.String("session_id", d.sessionID), zap.String("key", key.String()), zap.Error(err))
	}
}

func (d *EventDeduplicator) persistsKind(kind entities.EventKind) bool {
	return kind == entities.EventBeginCheckout && d.sessions != nil && d.sessionID != ""
}
