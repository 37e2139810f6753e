package naming

// Mangler rewrites a reserved name into a candidate script name.
// Implementations must be deterministic.
type Mangler interface {
	Mangle(name string) string
}

// AffixMangler decorates a name with a fixed prefix and suffix.
type AffixMangler struct {
	Prefix string
	Suffix string
}

// DefaultMangler appends a single underscore: "class" becomes "class_".
var DefaultMangler Mangler = AffixMangler{Suffix: "_"}

// Mangle implements Mangler.
func (m AffixMangler) Mangle(name string) string {
	return m.Prefix + name + m.Suffix
}

// ManglerFunc adapts a function to the Mangler interface.
type ManglerFunc func(name string) string

// Mangle implements Mangler.
func (f ManglerFunc) Mangle(name string) string {
	return f(name)
}
