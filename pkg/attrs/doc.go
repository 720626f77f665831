// Package attrs assigns style attributes to byte-offset ranges of text for
// consumption by a shaping/layout pipeline.
//
// Attrs is an immutable-style value describing color, font family, stretch,
// slant, weight, scaling and an opaque metadata tag. Builder methods return
// modified copies:
//
//	a := attrs.New().
//	    WithColor(attrs.RGB(0xC0, 0x40, 0x40)).
//	    WithWeight(attrs.WeightBold)
//
// AttrsList maps non-overlapping byte ranges of one text unit (typically a
// line) to Attrs values over a default. Inserting a span overwrites any
// previously assigned attributes inside its range, and SplitOff partitions
// a list when the owning line is split, preserving the per-offset
// assignment on both sides.
//
// Runs and ShapeRuns decompose a unit into the maximal uniform runs a
// shaper consumes; Matches and Compatible are the predicates the font
// matching and shaping collaborators evaluate against Attrs values.
package attrs
