package hashing

import (
	"sort"

	"golang.org/x/exp/maps"
)

// PositionHistory counts how often each position signature has occurred
// in a game. The zero value is not usable; call NewPositionHistory.
type PositionHistory struct {
	counts map[string]int
	total  int
}

// NewPositionHistory creates an empty position history.
func NewPositionHistory() *PositionHistory {
	return &PositionHistory{counts: make(map[string]int)}
}

// Record adds one occurrence of signature and returns its new count.
func (h *PositionHistory) Record(signature string) int {
	h.counts[signature]++
	h.total++
	return h.counts[signature]
}

// Count returns the number of recorded occurrences of signature.
func (h *PositionHistory) Count(signature string) int {
	return h.counts[signature]
}

// Len returns the total number of recorded occurrences.
func (h *PositionHistory) Len() int {
	return h.total
}

// Distinct returns the number of distinct signatures recorded.
func (h *PositionHistory) Distinct() int {
	return len(h.counts)
}

// Signatures returns the recorded signatures in sorted order.
func (h *PositionHistory) Signatures() []string {
	keys := maps.Keys(h.counts)
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy of the history.
func (h *PositionHistory) Clone() *PositionHistory {
	return &PositionHistory{counts: maps.Clone(h.counts), total: h.total}
}

// Reset clears the history.
func (h *PositionHistory) Reset() {
	maps.Clear(h.counts)
	h.total = 0
}
