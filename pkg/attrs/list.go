package attrs

import "github.com/go-drift/textattrs/pkg/rangemap"

// SpanEntry is one attribute override: a half-open byte range and the
// attributes applied inside it.
type SpanEntry struct {
	Range rangemap.Range
	Attrs Attrs
}

// AttrsList holds the attribute assignment for one logical unit of text,
// typically a line: a default Attrs plus non-overlapping override spans
// keyed by byte offset.
//
// AttrsList is not safe for concurrent use. One list is owned and mutated
// by a single caller at a time; Spans snapshots are not invalidated by
// later mutation but do not observe it.
type AttrsList struct {
	defaults Attrs
	spans    rangemap.RangeMap[Attrs]
}

// NewList returns an empty attribute list with the given defaults.
func NewList(defaults Attrs) *AttrsList {
	return &AttrsList{defaults: defaults}
}

// Defaults returns the fallback attributes for offsets outside any span.
func (l *AttrsList) Defaults() Attrs {
	return l.defaults
}

// Spans returns a snapshot of the current override spans in ascending order
// by start offset.
func (l *AttrsList) Spans() []SpanEntry {
	entries := l.spans.Entries()
	out := make([]SpanEntry, len(entries))
	for i, e := range entries {
		out[i] = SpanEntry{Range: e.Range, Attrs: e.Value}
	}
	return out
}

// ClearSpans removes all override spans. Defaults are unaffected.
func (l *AttrsList) ClearSpans() {
	l.spans.Clear()
}

// AddSpan applies a to the byte range [start, end), replacing any
// previously assigned attributes inside it and leaving attributes outside
// it untouched. A zero-length range is ignored: not an error, spans of no
// offsets are simply never stored.
func (l *AttrsList) AddSpan(start, end int, a Attrs) {
	if start == end {
		return
	}
	l.spans.Insert(rangemap.Range{Start: start, End: end}, a)
}

// GetSpan returns the attributes in effect at byte offset i: the value of
// the span containing i, or the defaults when no span covers it.
func (l *AttrsList) GetSpan(i int) Attrs {
	if a, ok := l.spans.Get(i); ok {
		return a
	}
	return l.defaults
}

// SplitOff splits the list at byte offset index: offsets below index remain
// in l, offsets at and after index move to the returned list renumbered
// from zero. A span straddling index is cut in two, its left part staying
// in l and its right part starting the new list at offset zero. The new
// list gets the same defaults as l.
//
// For every offset i the attribute assignment is preserved: l.GetSpan(i)
// is unchanged for i < index, and new.GetSpan(i-index) equals the original
// l.GetSpan(i) for i >= index.
func (l *AttrsList) SplitOff(index int) *AttrsList {
	out := NewList(l.defaults)

	type removal struct {
		key    rangemap.Range
		resize bool
	}
	var removes []removal
	for _, span := range l.spans.Entries() {
		switch {
		case span.Range.End <= index:
			// Fully below the split point, stays as is.
		case span.Range.Start >= index:
			removes = append(removes, removal{span.Range, false})
		default:
			removes = append(removes, removal{span.Range, true})
		}
	}

	for _, rm := range removes {
		r, a, ok := l.spans.GetKeyValue(rm.key.Start)
		if !ok {
			panic("attrs: span missing during split")
		}
		l.spans.Remove(rm.key)

		if rm.resize {
			out.spans.Insert(rangemap.Range{Start: 0, End: r.End - index}, a)
			l.spans.Insert(rangemap.Range{Start: r.Start, End: index}, a)
		} else {
			out.spans.Insert(rangemap.Range{Start: r.Start - index, End: r.End - index}, a)
		}
	}
	return out
}

// Eq reports whether two lists have equal defaults and identical spans.
func (l *AttrsList) Eq(other *AttrsList) bool {
	if !l.defaults.Equal(other.defaults) {
		return false
	}
	a, b := l.spans.Entries(), other.spans.Entries()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Range != b[i].Range || !a[i].Value.Equal(b[i].Value) {
			return false
		}
	}
	return true
}
