package usecase

import (
	"context"
	"errors"
	"sync"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// recordingQueue is an in-memory outbound queue.
type recordingQueue struct {
	mu      sync.Mutex
	records []entities.DataLayerRecord
	panicOn string
	failOn  string
}

func (q *recordingQueue) Push(rec entities.DataLayerRecord) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.panicOn != "" && rec.Event() == q.panicOn {
		panic("queue broken")
	}
	if q.failOn != "" && rec.Event() == q.failOn {
		return errors.New("queue rejected record")
	}
	q.records = append(q.records, rec)
	return nil
}

func (q *recordingQueue) events() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, 0, len(q.records))
	for _, r := range q.records {
		out = append(out, r.Event())
	}
	return out
}

func (q *recordingQueue) byEvent(name string) []entities.DataLayerRecord {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []entities.DataLayerRecord
	for _, r := range q.records {
		if r.Event() == name {
			out = append(out, r)
		}
	}
	return out
}

// mutableConsent lets a test change consent between calls.
type mutableConsent struct {
	mu  sync.Mutex
	set entities.ConsentSet
}

func newConsent(categories ...string) *mutableConsent {
	return &mutableConsent{set: entities.NewConsentSet(categories...)}
}

func (c *mutableConsent) GrantedCategories() entities.ConsentSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set
}

func (c *mutableConsent) grant(categories ...string) {
	c.mu.Lock()
	c.set = entities.NewConsentSet(categories...)
	c.mu.Unlock()
}

func openerFor(q interfaces.IOutboundQueue) QueueOpener {
	return func(context.Context) (interfaces.IOutboundQueue, error) {
		return q, nil
	}
}

// memorySessions is a session flag store backed by a map.
type memorySessions struct {
	mu       sync.Mutex
	flags    map[string]struct{}
	readErr  error
	writeErr error
}

func newMemorySessions() *memorySessions {
	return &memorySessions{flags: make(map[string]struct{})}
}

func (s *memorySessions) IsSet(_ context.Context, sessionID, flag string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return false, s.readErr
	}
	_, ok := s.flags[sessionID+"/"+flag]
	return ok, nil
}

func (s *memorySessions) Set(_ context.Context, sessionID, flag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.flags[sessionID+"/"+flag] = struct{}{}
	return nil
}

func money(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func qty(n int) *int {
	return &n
}

func ecommerceOf(rec entities.DataLayerRecord) map[string]any {
	obj, _ := rec["ecommerce"].(map[string]any)
	return obj
}

func itemsOf(rec entities.DataLayerRecord) []map[string]any {
	items, _ := ecommerceOf(rec)["items"].([]map[string]any)
	return items
}
