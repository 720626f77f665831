// Package theme loads named attribute presets from YAML documents.
//
// A theme document carries a schema version, default attributes, and a map
// of named presets. Preset fields left unset inherit from the theme
// defaults, which in turn inherit from attrs.New():
//
//	version: v1
//	defaults:
//	  family: monospace
//	presets:
//	  comment:
//	    color: "#6A9955"
//	    style: italic
//	  keyword:
//	    color: "#569CD6"
//	    weight: bold
package theme

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/textattrs/pkg/attrs"
	"github.com/go-drift/textattrs/pkg/errors"
)

// Theme is a resolved set of named attribute presets over shared defaults.
type Theme struct {
	defaults attrs.Attrs
	presets  map[string]attrs.Attrs
}

// document is the YAML shape of a theme file.
type document struct {
	Version  string              `yaml:"version"`
	Defaults attrSpec            `yaml:"defaults"`
	Presets  map[string]attrSpec `yaml:"presets"`
}

// attrSpec is one attribute override block. Pointer fields distinguish
// "unset" (inherit) from an explicit value.
type attrSpec struct {
	Color    *string     `yaml:"color"`
	Family   *string     `yaml:"family"`
	Stretch  *string     `yaml:"stretch"`
	Style    *string     `yaml:"style"`
	Weight   *weightSpec `yaml:"weight"`
	Scaling  *float32    `yaml:"scaling"`
	Metadata *int        `yaml:"metadata"`
}

// weightSpec accepts either a numeric weight (700) or a keyword (bold).
type weightSpec attrs.Weight

func (w *weightSpec) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		*w = weightSpec(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	weight, ok := weightKeywords[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("unknown weight %q", s)
	}
	*w = weightSpec(weight)
	return nil
}

var weightKeywords = map[string]attrs.Weight{
	"thin":        attrs.WeightThin,
	"extra-light": attrs.WeightExtraLight,
	"light":       attrs.WeightLight,
	"normal":      attrs.WeightNormal,
	"regular":     attrs.WeightNormal,
	"medium":      attrs.WeightMedium,
	"semibold":    attrs.WeightSemibold,
	"bold":        attrs.WeightBold,
	"extra-bold":  attrs.WeightExtraBold,
	"black":       attrs.WeightBlack,
}

var stretchKeywords = map[string]attrs.Stretch{
	"ultra-condensed": attrs.StretchUltraCondensed,
	"extra-condensed": attrs.StretchExtraCondensed,
	"condensed":       attrs.StretchCondensed,
	"semi-condensed":  attrs.StretchSemiCondensed,
	"normal":          attrs.StretchNormal,
	"semi-expanded":   attrs.StretchSemiExpanded,
	"expanded":        attrs.StretchExpanded,
	"extra-expanded":  attrs.StretchExtraExpanded,
	"ultra-expanded":  attrs.StretchUltraExpanded,
}

var styleKeywords = map[string]attrs.Style{
	"normal":  attrs.StyleNormal,
	"italic":  attrs.StyleItalic,
	"oblique": attrs.StyleOblique,
}

var genericFamilies = map[string]attrs.Family{
	"sans-serif": attrs.FamilySansSerif,
	"serif":      attrs.FamilySerif,
	"cursive":    attrs.FamilyCursive,
	"fantasy":    attrs.FamilyFantasy,
	"monospace":  attrs.FamilyMonospace,
}

// Load reads a theme document from r.
func Load(r io.Reader) (*Theme, error) {
	const op = "theme.Load"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, errors.Newf(op, errors.KindConfig, "invalid version %q", doc.Version)
	}
	if semver.Major(doc.Version) != "v1" {
		return nil, errors.Newf(op, errors.KindConfig, "unsupported version %q", doc.Version)
	}

	defaults, err := doc.Defaults.apply(attrs.New())
	if err != nil {
		return nil, errors.New(op, errors.KindParse, fmt.Errorf("defaults: %w", err))
	}

	presets := make(map[string]attrs.Attrs, len(doc.Presets))
	for name, spec := range doc.Presets {
		a, err := spec.apply(defaults)
		if err != nil {
			return nil, errors.New(op, errors.KindParse, fmt.Errorf("preset %q: %w", name, err))
		}
		presets[name] = a
	}

	return &Theme{defaults: defaults, presets: presets}, nil
}

// LoadFile reads a theme document from path.
func LoadFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("theme.LoadFile", errors.KindConfig, err)
	}
	defer f.Close()
	return Load(f)
}

// Defaults returns the theme's default attributes.
func (t *Theme) Defaults() attrs.Attrs {
	return t.defaults
}

// Preset returns the named preset.
func (t *Theme) Preset(name string) (attrs.Attrs, bool) {
	a, ok := t.presets[name]
	return a, ok
}

// Names returns the preset names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.presets))
	for name := range t.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewList returns an empty attribute list seeded with the theme defaults.
func (t *Theme) NewList() *attrs.AttrsList {
	return attrs.NewList(t.defaults)
}

// apply overlays the spec's set fields onto base.
func (s attrSpec) apply(base attrs.Attrs) (attrs.Attrs, error) {
	out := base
	if s.Color != nil {
		c, err := parseColor(*s.Color)
		if err != nil {
			return attrs.Attrs{}, err
		}
		out = out.WithColor(c)
	}
	if s.Family != nil {
		if fam, ok := genericFamilies[strings.ToLower(*s.Family)]; ok {
			out = out.WithFamily(fam)
		} else {
			out = out.WithFamily(attrs.FamilyName(*s.Family))
		}
	}
	if s.Stretch != nil {
		stretch, ok := stretchKeywords[strings.ToLower(*s.Stretch)]
		if !ok {
			return attrs.Attrs{}, fmt.Errorf("unknown stretch %q", *s.Stretch)
		}
		out = out.WithStretch(stretch)
	}
	if s.Style != nil {
		style, ok := styleKeywords[strings.ToLower(*s.Style)]
		if !ok {
			return attrs.Attrs{}, fmt.Errorf("unknown style %q", *s.Style)
		}
		out = out.WithStyle(style)
	}
	if s.Weight != nil {
		out = out.WithWeight(attrs.Weight(*s.Weight))
	}
	if s.Scaling != nil {
		out = out.WithScaling(*s.Scaling)
	}
	if s.Metadata != nil {
		out = out.WithMetadata(*s.Metadata)
	}
	return out, nil
}

// parseColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA" color literals.
func parseColor(s string) (attrs.Color, error) {
	hex := s
	alpha := uint8(0xFF)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("bad color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = s[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return attrs.RGBA(r, g, b, alpha), nil
}
