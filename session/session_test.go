package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/seekerhq/seeker/models"
)

func record(n int) models.QueryResult {
	return models.QueryResult{
		Question:  fmt.Sprintf("q%d", n),
		Answer:    fmt.Sprintf("a%d", n),
		Timestamp: time.Unix(int64(n), 0),
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	t.Parallel()
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Add(record(i))
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	want := []string{"q5", "q4", "q3"}
	for i, entry := range h.Entries() {
		if entry.Question != want[i] {
			t.Fatalf("Entries()[%d].Question = %q, want %q", i, entry.Question, want[i])
		}
	}
}

func TestHistoryDefaultCapacity(t *testing.T) {
	t.Parallel()
	for _, capacity := range []int{0, -1} {
		h := NewHistory(capacity)
		for i := 0; i < DefaultCapacity+2; i++ {
			h.Add(record(i))
		}
		if h.Len() != DefaultCapacity {
			t.Fatalf("NewHistory(%d): Len = %d, want %d", capacity, h.Len(), DefaultCapacity)
		}
	}
}

func TestHistoryAt(t *testing.T) {
	t.Parallel()
	h := NewHistory(3)
	h.Add(record(1))
	h.Add(record(2))

	got, ok := h.At(0)
	if !ok || got.Question != "q2" {
		t.Fatalf("At(0) = %+v, %v", got, ok)
	}
	got, ok = h.At(1)
	if !ok || got.Question != "q1" {
		t.Fatalf("At(1) = %+v, %v", got, ok)
	}
	if _, ok := h.At(2); ok {
		t.Fatalf("At(2) must be out of range")
	}
	if _, ok := h.At(-1); ok {
		t.Fatalf("At(-1) must be out of range")
	}
}

func TestHistoryEntriesAreCopies(t *testing.T) {
	t.Parallel()
	h := NewHistory(3)
	h.Add(record(1))

	entries := h.Entries()
	entries[0].Answer = "mutated"

	got, _ := h.At(0)
	if got.Answer != "a1" {
		t.Fatalf("stored record mutated: %q", got.Answer)
	}
}

func TestHistoryConcurrentAccess(t *testing.T) {
	t.Parallel()
	h := NewHistory(DefaultCapacity)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.Add(record(n*100 + j))
				h.Entries()
				h.Len()
			}
		}(i)
	}
	wg.Wait()
	if h.Len() != DefaultCapacity {
		t.Fatalf("Len = %d, want %d", h.Len(), DefaultCapacity)
	}
}
