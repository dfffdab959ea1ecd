package hashing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPositionHistory(t *testing.T) {
	h := NewPositionHistory()

	if got := h.Record("start"); got != 1 {
		t.Errorf("Record(start) = %d, want 1", got)
	}
	h.Record("e4")
	if got := h.Record("start"); got != 2 {
		t.Errorf("second Record(start) = %d, want 2", got)
	}

	if got := h.Count("start"); got != 2 {
		t.Errorf("Count(start) = %d, want 2", got)
	}
	if got := h.Count("never"); got != 0 {
		t.Errorf("Count(never) = %d, want 0", got)
	}
	if h.Len() != 3 || h.Distinct() != 2 {
		t.Errorf("Len, Distinct = %d, %d, want 3, 2", h.Len(), h.Distinct())
	}
	if diff := cmp.Diff([]string{"e4", "start"}, h.Signatures()); diff != "" {
		t.Errorf("Signatures() mismatch (-want +got):\n%s", diff)
	}
}

func TestPositionHistory_CloneIsIndependent(t *testing.T) {
	h := NewPositionHistory()
	h.Record("a")

	clone := h.Clone()
	clone.Record("a")
	clone.Record("b")

	if h.Count("a") != 1 || h.Count("b") != 0 || h.Len() != 1 {
		t.Errorf("original changed after clone mutation: a=%d b=%d len=%d", h.Count("a"), h.Count("b"), h.Len())
	}
	if clone.Count("a") != 2 || clone.Len() != 3 {
		t.Errorf("clone counts a=%d len=%d, want 2, 3", clone.Count("a"), clone.Len())
	}
}

func TestPositionHistory_Reset(t *testing.T) {
	h := NewPositionHistory()
	h.Record("a")
	h.Reset()
	if h.Len() != 0 || h.Count("a") != 0 || len(h.Signatures()) != 0 {
		t.Error("Reset() did not clear the history")
	}
}
