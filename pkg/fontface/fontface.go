// Package fontface extracts face descriptors from OpenType font data for
// use with the attrs matching predicate.
//
// A font-matching collaborator offers candidate faces as attrs.FaceInfo
// values; this package builds those from parsed fonts using the name table
// (family, subfamily, PostScript name). Style, weight and stretch are
// inferred from subfamily keywords, the same heuristic font databases apply
// to fonts whose OS/2 metadata is absent or unreliable.
package fontface

import (
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/go-drift/textattrs/pkg/attrs"
	"github.com/go-drift/textattrs/pkg/errors"
)

// Parse parses OpenType data and extracts its face descriptor.
func Parse(data []byte) (attrs.FaceInfo, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return attrs.FaceInfo{}, errors.New("fontface.Parse", errors.KindFont, err)
	}
	return FromFont(f)
}

// FromFont extracts a face descriptor from a parsed font. The family name
// prefers the typographic family (name ID 16) over the legacy family (ID 1);
// subfamily likewise. A missing PostScript name is left empty rather than
// treated as an error.
func FromFont(f *sfnt.Font) (attrs.FaceInfo, error) {
	var buf sfnt.Buffer

	family, err := f.Name(&buf, sfnt.NameIDTypographicFamily)
	if err != nil {
		family, err = f.Name(&buf, sfnt.NameIDFamily)
		if err != nil {
			return attrs.FaceInfo{}, errors.Newf("fontface.FromFont", errors.KindFont,
				"font carries no family name: %v", err)
		}
	}

	subfamily, err := f.Name(&buf, sfnt.NameIDTypographicSubfamily)
	if err != nil {
		subfamily, _ = f.Name(&buf, sfnt.NameIDSubfamily)
	}

	psName, _ := f.Name(&buf, sfnt.NameIDPostScript)

	style, weight, stretch := ParseSubfamily(subfamily)
	return attrs.FaceInfo{
		PostScriptName: psName,
		Family:         family,
		Style:          style,
		Weight:         weight,
		Stretch:        stretch,
	}, nil
}

// ParseSubfamily infers style, weight and stretch from a subfamily string
// such as "Bold Italic" or "SemiCondensed ExtraLight". Unrecognized or
// empty input yields the normal value on every axis.
func ParseSubfamily(subfamily string) (attrs.Style, attrs.Weight, attrs.Stretch) {
	// Keyword spellings vary across foundries ("Semi Bold", "SemiBold",
	// "semi-bold"); strip separators before matching.
	s := strings.ToLower(subfamily)
	s = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)

	style := attrs.StyleNormal
	switch {
	case strings.Contains(s, "italic"):
		style = attrs.StyleItalic
	case strings.Contains(s, "oblique"):
		style = attrs.StyleOblique
	}

	return style, parseWeight(s), parseStretch(s)
}

// parseWeight matches weight keywords. Compound names are checked before
// their substrings ("extrabold" before "bold").
func parseWeight(s string) attrs.Weight {
	switch {
	case strings.Contains(s, "thin"), strings.Contains(s, "hairline"):
		return attrs.WeightThin
	case strings.Contains(s, "extralight"), strings.Contains(s, "ultralight"):
		return attrs.WeightExtraLight
	case strings.Contains(s, "semilight"), strings.Contains(s, "light"):
		return attrs.WeightLight
	case strings.Contains(s, "medium"):
		return attrs.WeightMedium
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"), strings.Contains(s, "demi"):
		return attrs.WeightSemibold
	case strings.Contains(s, "extrabold"), strings.Contains(s, "ultrabold"):
		return attrs.WeightExtraBold
	case strings.Contains(s, "black"), strings.Contains(s, "heavy"):
		return attrs.WeightBlack
	case strings.Contains(s, "bold"):
		return attrs.WeightBold
	default:
		return attrs.WeightNormal
	}
}

// parseStretch matches width-class keywords, longest spellings first.
func parseStretch(s string) attrs.Stretch {
	switch {
	case strings.Contains(s, "ultracondensed"):
		return attrs.StretchUltraCondensed
	case strings.Contains(s, "extracondensed"):
		return attrs.StretchExtraCondensed
	case strings.Contains(s, "semicondensed"):
		return attrs.StretchSemiCondensed
	case strings.Contains(s, "condensed"), strings.Contains(s, "narrow"):
		return attrs.StretchCondensed
	case strings.Contains(s, "ultraexpanded"):
		return attrs.StretchUltraExpanded
	case strings.Contains(s, "extraexpanded"):
		return attrs.StretchExtraExpanded
	case strings.Contains(s, "semiexpanded"):
		return attrs.StretchSemiExpanded
	case strings.Contains(s, "expanded"), strings.Contains(s, "wide"):
		return attrs.StretchExpanded
	default:
		return attrs.StretchNormal
	}
}
