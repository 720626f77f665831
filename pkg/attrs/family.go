package attrs

// FamilyKind distinguishes named font families from the generic CSS-style
// family classes.
type FamilyKind int

const (
	// FamilyKindSansSerif is a generic sans-serif family (the default).
	FamilyKindSansSerif FamilyKind = iota

	// FamilyKindSerif is a generic serif family.
	FamilyKindSerif

	// FamilyKindCursive is a generic cursive family.
	FamilyKindCursive

	// FamilyKindFantasy is a generic fantasy family.
	FamilyKindFantasy

	// FamilyKindMonospace is a generic monospace family.
	FamilyKindMonospace

	// FamilyKindNamed is a family identified by name.
	FamilyKindNamed
)

// Family describes a requested font family: either one of the generic
// classes or a concrete family name. Family owns its name string; values
// stored in spans never reference caller storage.
type Family struct {
	Kind FamilyKind

	// Name is the family name. Set only when Kind is FamilyKindNamed.
	Name string
}

// Generic family values.
var (
	FamilySansSerif = Family{Kind: FamilyKindSansSerif}
	FamilySerif     = Family{Kind: FamilyKindSerif}
	FamilyCursive   = Family{Kind: FamilyKindCursive}
	FamilyFantasy   = Family{Kind: FamilyKindFantasy}
	FamilyMonospace = Family{Kind: FamilyKindMonospace}
)

// FamilyName returns a named family.
func FamilyName(name string) Family {
	return Family{Kind: FamilyKindNamed, Name: name}
}

// String returns the generic class keyword, or the family name for a named
// family.
func (f Family) String() string {
	switch f.Kind {
	case FamilyKindSerif:
		return "serif"
	case FamilyKindCursive:
		return "cursive"
	case FamilyKindFantasy:
		return "fantasy"
	case FamilyKindMonospace:
		return "monospace"
	case FamilyKindNamed:
		return f.Name
	default:
		return "sans-serif"
	}
}
