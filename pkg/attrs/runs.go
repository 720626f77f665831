package attrs

import "github.com/go-drift/textattrs/pkg/rangemap"

// Run is a maximal sub-range of a text unit over which attributes are
// uniform. Shaping consumes lines as a sequence of runs.
type Run struct {
	Range rangemap.Range
	Attrs Attrs
}

// Runs decomposes the first length bytes of the unit into maximal uniform
// runs. Offsets not covered by any span carry the defaults; adjacent runs
// with equal attributes are coalesced, so consecutive runs always differ.
// Spans reaching past length are clipped. A non-positive length yields nil.
func (l *AttrsList) Runs(length int) []Run {
	if length <= 0 {
		return nil
	}

	var runs []Run
	emit := func(start, end int, a Attrs) {
		if start >= end {
			return
		}
		if n := len(runs); n > 0 && runs[n-1].Range.End == start && runs[n-1].Attrs.Equal(a) {
			runs[n-1].Range.End = end
			return
		}
		runs = append(runs, Run{Range: rangemap.Range{Start: start, End: end}, Attrs: a})
	}

	pos := 0
	for _, span := range l.Spans() {
		if span.Range.Start >= length {
			break
		}
		emit(pos, span.Range.Start, l.defaults)
		end := min(span.Range.End, length)
		emit(span.Range.Start, end, span.Attrs)
		pos = end
	}
	emit(pos, length, l.defaults)
	return runs
}

// ShapeRuns decomposes like Runs but additionally coalesces adjacent runs
// whose attributes are Compatible, keeping the first run's attributes.
// This is the grouping a shaper uses: color and metadata changes inside a
// shaped run do not force a boundary.
func (l *AttrsList) ShapeRuns(length int) []Run {
	runs := l.Runs(length)
	out := runs[:0]
	for _, r := range runs {
		if n := len(out); n > 0 && out[n-1].Attrs.Compatible(r.Attrs) {
			out[n-1].Range.End = r.Range.End
			continue
		}
		out = append(out, r)
	}
	return out
}
