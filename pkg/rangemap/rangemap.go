// Package rangemap provides an ordered map from disjoint half-open integer
// ranges to values.
//
// The map maintains two invariants at all times: no two stored ranges
// overlap, and entries are ordered by ascending start offset. Insertion uses
// overwrite semantics: any part of an existing entry covered by the new
// range is discarded, and the non-overlapping remainders (if any) are kept
// as their own entries.
//
// The structure is a sorted slice searched with binary search. Point lookups
// are O(log n); insertion and removal are O(n) in the number of entries
// shifted, which matches the access pattern of attribute spans on a line
// (frequent lookups, few spans, infrequent edits).
//
// RangeMap is not safe for concurrent use; callers serialize access.
// Snapshots returned by Entries are not invalidated by later mutation but
// do not observe it either.
package rangemap

import (
	"fmt"
	"sort"
)

// Range is a half-open interval [Start, End) over byte offsets.
type Range struct {
	Start int
	End   int
}

// Len returns the number of offsets covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range covers no offsets.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Contains reports whether offset i falls inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Overlaps reports whether the two ranges share at least one offset.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// String formats the range as [Start, End).
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Entry pairs a stored range with its value.
type Entry[V any] struct {
	Range Range
	Value V
}

// RangeMap maps disjoint half-open integer ranges to values of type V.
// The zero value is an empty map ready for use.
type RangeMap[V any] struct {
	entries []Entry[V]
}

// New returns an empty RangeMap.
func New[V any]() *RangeMap[V] {
	return &RangeMap[V]{}
}

// Len returns the number of entries.
func (m *RangeMap[V]) Len() int {
	return len(m.entries)
}

// Clear removes all entries.
func (m *RangeMap[V]) Clear() {
	m.entries = m.entries[:0]
}

// search returns the index of the first entry whose End is greater than i,
// i.e. the first entry that could contain or follow offset i.
func (m *RangeMap[V]) search(i int) int {
	return sort.Search(len(m.entries), func(j int) bool {
		return m.entries[j].Range.End > i
	})
}

// Get returns the value of the entry whose range contains offset i.
func (m *RangeMap[V]) Get(i int) (V, bool) {
	if j := m.search(i); j < len(m.entries) && m.entries[j].Range.Contains(i) {
		return m.entries[j].Value, true
	}
	var zero V
	return zero, false
}

// GetKeyValue returns the value of the entry whose range contains offset i
// along with the exact boundaries of the stored range.
func (m *RangeMap[V]) GetKeyValue(i int) (Range, V, bool) {
	if j := m.search(i); j < len(m.entries) && m.entries[j].Range.Contains(i) {
		return m.entries[j].Range, m.entries[j].Value, true
	}
	var zero V
	return Range{}, zero, false
}

// Insert adds the entry (r, v), overwriting any overlapping parts of
// existing entries. An existing entry extending beyond r on either side is
// trimmed to its remainder outside r; an existing entry wholly inside r is
// removed. Panics if r is empty: callers are required to reject empty
// ranges before calling.
func (m *RangeMap[V]) Insert(r Range, v V) {
	if r.Empty() {
		panic(fmt.Sprintf("rangemap: insert of empty range %v", r))
	}

	// First entry that can overlap r.
	lo := m.search(r.Start)

	// Collect the trimmed remainders of every entry overlapping r, then
	// splice [left?, new, right?] over the overlapped region in one pass.
	var keep []Entry[V]
	hi := lo
	for hi < len(m.entries) && m.entries[hi].Range.Overlaps(r) {
		old := m.entries[hi]
		if left := (Range{old.Range.Start, r.Start}); !left.Empty() {
			keep = append(keep, Entry[V]{left, old.Value})
		}
		if right := (Range{r.End, old.Range.End}); !right.Empty() {
			keep = append(keep, Entry[V]{right, old.Value})
		}
		hi++
	}

	// The new entry sorts between any left remainder and any right
	// remainder; remainders of distinct old entries cannot both be on the
	// same side of r, so insertion position is len(keep) minus trailing
	// right remainders (at most one).
	replacement := make([]Entry[V], 0, len(keep)+1)
	for _, e := range keep {
		if e.Range.Start < r.Start {
			replacement = append(replacement, e)
		}
	}
	replacement = append(replacement, Entry[V]{r, v})
	for _, e := range keep {
		if e.Range.Start >= r.End {
			replacement = append(replacement, e)
		}
	}

	m.entries = append(m.entries[:lo], append(replacement, m.entries[hi:]...)...)
}

// Remove deletes the entry whose range equals r exactly. A range that is
// not a current key indicates a bookkeeping bug in the caller (keys must
// come from enumeration of this same map), so Remove panics rather than
// silently doing nothing.
func (m *RangeMap[V]) Remove(r Range) {
	j := m.search(r.Start)
	if j >= len(m.entries) || m.entries[j].Range != r {
		panic(fmt.Sprintf("rangemap: remove of missing range %v", r))
	}
	m.entries = append(m.entries[:j], m.entries[j+1:]...)
}

// Entries returns a snapshot of all entries in ascending order by start.
// The returned slice is a copy: it remains valid after later mutation of
// the map but does not reflect it.
func (m *RangeMap[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(m.entries))
	copy(out, m.entries)
	return out
}
