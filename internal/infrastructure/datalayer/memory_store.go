// Package datalayer keeps the outbound event queues of open tracking pages
// in memory, where the tag manager bridge reads them.
package datalayer

import (
	"context"
	"errors"
	"strings"
	"sync"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/usecase/interfaces"
)

var (
	ErrInvalidPageID = errors.New("invalid page id")
	ErrMissingEvent  = errors.New("data layer record without event name")
	ErrQueueFull     = errors.New("data layer queue full")
)

// DefaultMaxRecords bounds a single page queue.
const DefaultMaxRecords = 500

// Queue is an append-only list of data layer records.
type Queue struct {
	mu      sync.Mutex
	records []entities.DataLayerRecord
	max     int
}

var _ interfaces.IOutboundQueue = (*Queue)(nil)

func NewQueue(max int) *Queue {
	if max <= 0 {
		max = DefaultMaxRecords
	}
	return &Queue{max: max}
}

// Push appends a copy of the record. Records must name their event.
func (q *Queue) Push(record entities.DataLayerRecord) error {
	if record.Event() == "" {
		return ErrMissingEvent
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.records) >= q.max {
		return ErrQueueFull
	}
	cp := make(entities.DataLayerRecord, len(record))
	for k, v := range record {
		cp[k] = v
	}
	q.records = append(q.records, cp)
	return nil
}

// Records returns the queue content in push order.
func (q *Queue) Records() []entities.DataLayerRecord {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]entities.DataLayerRecord, len(q.records))
	copy(out, q.records)
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.records)
}

// MemoryStore holds one Queue per tracking page.
type MemoryStore struct {
	mu         sync.RWMutex
	queues     map[string]*Queue
	maxRecords int
}

var _ interfaces.IDataLayerStore = (*MemoryStore)(nil)

func NewMemoryStore(maxRecords int) *MemoryStore {
	return &MemoryStore{queues: make(map[string]*Queue), maxRecords: maxRecords}
}

func (s *MemoryStore) Open(_ context.Context, pageID string) (interfaces.IOutboundQueue, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return nil, ErrInvalidPageID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[pageID]
	if !ok {
		q = NewQueue(s.maxRecords)
		s.queues[pageID] = q
	}
	return q, nil
}

func (s *MemoryStore) Records(_ context.Context, pageID string) ([]entities.DataLayerRecord, error) {
	s.mu.RLock()
	q, ok := s.queues[strings.TrimSpace(pageID)]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return q.Records(), nil
}

func (s *MemoryStore) Discard(_ context.Context, pageID string) error {
	s.mu.Lock()
	delete(s.queues, strings.TrimSpace(pageID))
	s.mu.Unlock()
	return nil
}
