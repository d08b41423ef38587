// Package element defines the chemical element records and the dataset they come from.
package element

// Category is the chemical family an element belongs to.
type Category string

const (
	CategoryAlkaliMetal         Category = "Alkali Metal"
	CategoryAlkalineEarthMetal  Category = "Alkaline Earth Metal"
	CategoryTransitionMetal     Category = "Transition Metal"
	CategoryPostTransitionMetal Category = "Post-Transition Metal"
	CategoryMetalloid           Category = "Metalloid"
	CategoryNonmetal            Category = "Nonmetal"
	CategoryHalogen             Category = "Halogen"
	CategoryNobleGas            Category = "Noble Gas"
	CategoryLanthanide          Category = "Lanthanide"
	CategoryActinide            Category = "Actinide"
	CategoryUnknown             Category = "Unknown" // unclassified
)

// Known lists the named categories in table order (left to right, then f-block).
var Known = []Category{
	CategoryAlkaliMetal,
	CategoryAlkalineEarthMetal,
	CategoryTransitionMetal,
	CategoryPostTransitionMetal,
	CategoryMetalloid,
	CategoryNonmetal,
	CategoryHalogen,
	CategoryNobleGas,
	CategoryLanthanide,
	CategoryActinide,
}

// Group labels used for the f-block rows instead of a numeric group.
const (
	GroupLanthanide = "Lanthanide"
	GroupActinide   = "Actinide"
)

// Element is a single entry of the periodic table.
// Number is the identity: everything derived from the dataset refers to
// elements by number and never mutates them.
type Element struct {
	Number         int      `koanf:"number"`
	Symbol         string   `koanf:"symbol"`
	Name           string   `koanf:"name"`
	Group          string   `koanf:"group"` // "1".."18", "Lanthanide" or "Actinide"
	Period         int      `koanf:"period"`
	Category       Category `koanf:"category"`
	State          string   `koanf:"state"`
	AtomicMass     float64  `koanf:"atomic_mass"`
	ElectronConfig string   `koanf:"electron_config"`
	Summary        string   `koanf:"summary"`
}

// IsKnown reports whether c is one of the named categories.
func (c Category) IsKnown() bool {
	for _, k := range Known {
		if k == c {
			return true
		}
	}
	return false
}
