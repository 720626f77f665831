package rangemap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func entries(pairs ...Entry[string]) []Entry[string] {
	return pairs
}

func TestRange_Contains(t *testing.T) {
	r := Range{2, 5}
	for _, tt := range []struct {
		i    int
		want bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	} {
		if got := r.Contains(tt.i); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestRange_Overlaps(t *testing.T) {
	for _, tt := range []struct {
		a, b Range
		want bool
	}{
		{Range{0, 3}, Range{3, 6}, false},
		{Range{0, 3}, Range{2, 6}, true},
		{Range{2, 6}, Range{0, 3}, true},
		{Range{0, 10}, Range{4, 5}, true},
		{Range{4, 5}, Range{0, 10}, true},
	} {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRangeMap_Insert_Disjoint(t *testing.T) {
	m := New[string]()
	m.Insert(Range{5, 8}, "b")
	m.Insert(Range{0, 3}, "a")
	m.Insert(Range{10, 12}, "c")

	want := entries(
		Entry[string]{Range{0, 3}, "a"},
		Entry[string]{Range{5, 8}, "b"},
		Entry[string]{Range{10, 12}, "c"},
	)
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeMap_Insert_TrimsOverlap(t *testing.T) {
	m := New[string]()
	m.Insert(Range{0, 5}, "b")
	m.Insert(Range{3, 8}, "c")

	want := entries(
		Entry[string]{Range{0, 3}, "b"},
		Entry[string]{Range{3, 8}, "c"},
	)
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeMap_Insert_SplitsContainingEntry(t *testing.T) {
	m := New[string]()
	m.Insert(Range{0, 10}, "a")
	m.Insert(Range{4, 6}, "b")

	want := entries(
		Entry[string]{Range{0, 4}, "a"},
		Entry[string]{Range{4, 6}, "b"},
		Entry[string]{Range{6, 10}, "a"},
	)
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeMap_Insert_SwallowsCoveredEntries(t *testing.T) {
	m := New[string]()
	m.Insert(Range{1, 3}, "a")
	m.Insert(Range{4, 6}, "b")
	m.Insert(Range{7, 9}, "c")
	m.Insert(Range{0, 10}, "d")

	want := entries(Entry[string]{Range{0, 10}, "d"})
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeMap_Insert_ExactReplace(t *testing.T) {
	m := New[string]()
	m.Insert(Range{2, 6}, "a")
	m.Insert(Range{2, 6}, "b")

	want := entries(Entry[string]{Range{2, 6}, "b"})
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeMap_Insert_NoOverlapStaysDisjoint(t *testing.T) {
	// After any sequence of inserts, no two entries may overlap and order
	// must be ascending by start.
	m := New[int]()
	inserts := []Range{
		{0, 5}, {3, 8}, {8, 12}, {1, 2}, {0, 20}, {5, 6}, {19, 25}, {10, 11},
	}
	for i, r := range inserts {
		m.Insert(r, i)
		got := m.Entries()
		for j := 1; j < len(got); j++ {
			prev, cur := got[j-1].Range, got[j].Range
			if prev.Start >= cur.Start {
				t.Fatalf("after insert %v: entries out of order: %v before %v", r, prev, cur)
			}
			if prev.Overlaps(cur) {
				t.Fatalf("after insert %v: overlapping entries %v and %v", r, prev, cur)
			}
		}
	}
}

func TestRangeMap_Insert_EmptyRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty range insert")
		}
	}()
	New[string]().Insert(Range{3, 3}, "x")
}

func TestRangeMap_Get(t *testing.T) {
	m := New[string]()
	m.Insert(Range{2, 5}, "a")
	m.Insert(Range{7, 9}, "b")

	for _, tt := range []struct {
		i      int
		want   string
		wantOK bool
	}{
		{0, "", false},
		{2, "a", true},
		{4, "a", true},
		{5, "", false},
		{6, "", false},
		{7, "b", true},
		{8, "b", true},
		{9, "", false},
	} {
		got, ok := m.Get(tt.i)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Get(%d) = (%q, %v), want (%q, %v)", tt.i, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRangeMap_GetKeyValue(t *testing.T) {
	m := New[string]()
	m.Insert(Range{2, 8}, "a")

	r, v, ok := m.GetKeyValue(5)
	if !ok {
		t.Fatal("GetKeyValue(5) reported no entry")
	}
	if r != (Range{2, 8}) || v != "a" {
		t.Errorf("GetKeyValue(5) = (%v, %q), want ([2, 8), %q)", r, v, "a")
	}

	if _, _, ok := m.GetKeyValue(8); ok {
		t.Error("GetKeyValue(8) reported an entry past the half-open end")
	}
}

func TestRangeMap_Remove(t *testing.T) {
	m := New[string]()
	m.Insert(Range{0, 3}, "a")
	m.Insert(Range{5, 8}, "b")

	m.Remove(Range{0, 3})

	want := entries(Entry[string]{Range{5, 8}, "b"})
	if diff := cmp.Diff(want, m.Entries()); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeMap_Remove_MissingKeyPanics(t *testing.T) {
	m := New[string]()
	m.Insert(Range{0, 5}, "a")

	defer func() {
		if recover() == nil {
			t.Error("expected panic removing a non-key range")
		}
	}()
	m.Remove(Range{0, 4})
}

func TestRangeMap_Entries_Snapshot(t *testing.T) {
	m := New[string]()
	m.Insert(Range{0, 3}, "a")

	snap := m.Entries()
	m.Insert(Range{0, 3}, "b")

	if snap[0].Value != "a" {
		t.Errorf("snapshot observed later mutation: got %q", snap[0].Value)
	}
}

func TestRangeMap_Clear(t *testing.T) {
	m := New[string]()
	m.Insert(Range{0, 3}, "a")
	m.Insert(Range{4, 6}, "b")

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", m.Len())
	}
	if _, ok := m.Get(1); ok {
		t.Error("Get(1) found an entry after Clear")
	}
}
