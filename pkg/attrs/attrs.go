package attrs

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"strings"
)

// Stretch selects the width class of a face, following the usWidthClass
// steps of the OpenType OS/2 table.
type Stretch int

const (
	StretchUltraCondensed Stretch = 1
	StretchExtraCondensed Stretch = 2
	StretchCondensed      Stretch = 3
	StretchSemiCondensed  Stretch = 4
	StretchNormal         Stretch = 5
	StretchSemiExpanded   Stretch = 6
	StretchExpanded       Stretch = 7
	StretchExtraExpanded  Stretch = 8
	StretchUltraExpanded  Stretch = 9
)

// String returns a human-readable representation of the stretch.
func (s Stretch) String() string {
	switch s {
	case StretchUltraCondensed:
		return "ultra-condensed"
	case StretchExtraCondensed:
		return "extra-condensed"
	case StretchCondensed:
		return "condensed"
	case StretchSemiCondensed:
		return "semi-condensed"
	case StretchNormal:
		return "normal"
	case StretchSemiExpanded:
		return "semi-expanded"
	case StretchExpanded:
		return "expanded"
	case StretchExtraExpanded:
		return "extra-expanded"
	case StretchUltraExpanded:
		return "ultra-expanded"
	default:
		return "unknown"
	}
}

// Style selects the slant of a face.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// String returns a human-readable representation of the style.
func (s Style) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "normal"
	}
}

// Weight is a numeric font weight on the usual 100-900 scale.
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// String returns a human-readable representation of the font weight.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "thin"
	case WeightExtraLight:
		return "extra-light"
	case WeightLight:
		return "light"
	case WeightNormal:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightSemibold:
		return "semibold"
	case WeightBold:
		return "bold"
	case WeightExtraBold:
		return "extra-bold"
	case WeightBlack:
		return "black"
	default:
		return "unknown"
	}
}

// FaceInfo describes a candidate font face offered by a font-matching
// collaborator. See pkg/fontface for extraction from OpenType data.
type FaceInfo struct {
	// PostScriptName is the face's PostScript name (name table ID 6).
	PostScriptName string

	// Family is the face's family name.
	Family string

	Style   Style
	Weight  Weight
	Stretch Stretch
}

// Attrs is one set of text attributes. It is a plain value: builder methods
// return modified copies, and stored spans hold independent snapshots.
//
// Equality and hashing cover every field. Scaling is compared and hashed by
// bit pattern (total order), so a NaN scaling stays equal to itself and the
// equality/hash contract holds; see Equal.
type Attrs struct {
	// Color applies when HasColor is set; otherwise the consumer's own
	// default color is used.
	Color    Color
	HasColor bool

	Family  Family
	Stretch Stretch
	Style   Style
	Weight  Weight

	// Scaling is a font size multiplier applied by the layout consumer.
	Scaling float32

	// Metadata is an opaque tag carried alongside the attributes for
	// caller-side bookkeeping. It never influences matching or shaping
	// compatibility.
	Metadata int
}

// New returns attributes with sane defaults: no color, a regular sans-serif
// font, scaling 1.0 and zero metadata.
func New() Attrs {
	return Attrs{
		Family:  FamilySansSerif,
		Stretch: StretchNormal,
		Style:   StyleNormal,
		Weight:  WeightNormal,
		Scaling: 1.0,
	}
}

// WithColor returns a copy with the given text color.
func (a Attrs) WithColor(c Color) Attrs {
	a.Color = c
	a.HasColor = true
	return a
}

// WithFamily returns a copy with the given font family.
func (a Attrs) WithFamily(f Family) Attrs {
	a.Family = f
	return a
}

// WithStretch returns a copy with the given stretch.
func (a Attrs) WithStretch(s Stretch) Attrs {
	a.Stretch = s
	return a
}

// WithStyle returns a copy with the given style.
func (a Attrs) WithStyle(s Style) Attrs {
	a.Style = s
	return a
}

// WithWeight returns a copy with the given weight.
func (a Attrs) WithWeight(w Weight) Attrs {
	a.Weight = w
	return a
}

// WithScaling returns a copy with the given scaling factor.
func (a Attrs) WithScaling(scaling float32) Attrs {
	a.Scaling = scaling
	return a
}

// WithMetadata returns a copy with the given metadata tag.
func (a Attrs) WithMetadata(metadata int) Attrs {
	a.Metadata = metadata
	return a
}

// Equal reports whether every field of a equals the corresponding field of
// other. Scaling compares by bit pattern rather than IEEE equality: two
// values whose scaling bits match are equal even when both are NaN, and
// -0 differs from +0. attrs_test.go pins the field count so a new field
// cannot be added without updating Equal and Hash.
func (a Attrs) Equal(other Attrs) bool {
	return a.Color == other.Color &&
		a.HasColor == other.HasColor &&
		a.Family == other.Family &&
		a.Stretch == other.Stretch &&
		a.Style == other.Style &&
		a.Weight == other.Weight &&
		math.Float32bits(a.Scaling) == math.Float32bits(other.Scaling) &&
		a.Metadata == other.Metadata
}

// Hash returns a hash covering every field, consistent with Equal.
func (a Attrs) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint32(buf[:4], uint32(a.Color))
	h.Write(buf[:4])
	if a.HasColor {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	h.Write([]byte{byte(a.Family.Kind)})
	h.Write([]byte(a.Family.Name))
	h.Write([]byte{0}) // name terminator
	binary.LittleEndian.PutUint64(buf[:], uint64(a.Stretch))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(a.Style))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(a.Weight))
	h.Write(buf[:])
	binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(a.Scaling))
	h.Write(buf[:4])
	binary.LittleEndian.PutUint64(buf[:], uint64(a.Metadata))
	h.Write(buf[:])

	return h.Sum64()
}

// Matches reports whether a candidate face satisfies these attributes. A
// face whose PostScript name signals an emoji face always matches: emoji
// fonts carry no meaningful style axis, so style, weight and stretch are
// not compared for them. Every other face must match style, weight and
// stretch exactly.
func (a Attrs) Matches(face FaceInfo) bool {
	return strings.Contains(face.PostScriptName, "Emoji") ||
		(face.Style == a.Style &&
			face.Weight == a.Weight &&
			face.Stretch == a.Stretch)
}

// Compatible reports whether text carrying a and text carrying other may be
// shaped together as one run: family, stretch, style, weight must be equal
// and scaling must compare equal under total order. Color and metadata are
// deliberately excluded; they do not affect shaping.
func (a Attrs) Compatible(other Attrs) bool {
	return a.Family == other.Family &&
		a.Stretch == other.Stretch &&
		a.Style == other.Style &&
		a.Weight == other.Weight &&
		math.Float32bits(a.Scaling) == math.Float32bits(other.Scaling)
}
