package session

import (
	"sync"

	"github.com/seekerhq/seeker/models"
)

// DefaultCapacity is how many records a History keeps when the caller
// does not ask for a specific size.
const DefaultCapacity = 5

// History is a bounded, mutex-guarded ring of completed query records.
// Once capacity is reached the oldest entry falls off. Construct with
// NewHistory; the zero value has no capacity.
type History struct {
	capacity int
	entries  []models.QueryResult
	mu       sync.Mutex
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Add records a completed query, evicting the oldest entry when full.
func (h *History) Add(r models.QueryResult) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, r)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
	}
}

// Entries returns copies of the stored records, most recent first.
func (h *History) Entries() []models.QueryResult {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]models.QueryResult, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}

// At returns the i-th most recent record (0 is the newest).
func (h *History) At(i int) (models.QueryResult, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if i < 0 || i >= len(h.entries) {
		return models.QueryResult{}, false
	}
	return h.entries[len(h.entries)-1-i], true
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
