package reference

// Category selects the flake output attribute a partial reference expands into.
type Category int

const (
	// Buildable targets live under "packages". Runnable targets use it too.
	Buildable Category = iota
	// Checkable targets live under "checks".
	Checkable
)

// String returns the flake output attribute name for the category.
func (c Category) String() string {
	switch c {
	case Buildable:
		return "packages"
	case Checkable:
		return "checks"
	}
	return "unknown"
}

// Resolve returns the attribute path for ref. Local and remote references are
// already fully qualified; a partial name becomes ".#category.system.name".
func Resolve(ref Reference, category, system string) string {
	switch r := ref.(type) {
	case Partial:
		return localSigil + category + "." + system + "." + r.Name
	default:
		return ref.String()
	}
}
