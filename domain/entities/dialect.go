package entities

// Dialect describes how a script runtime spells the bootstrap statements.
//
// Declare and Release are text/template sources. Declare is executed once per
// binding with fields .Slot, .ScriptName and .Original (already quoted by
// Quote). Release is executed once with field .Slot.
type Dialect struct {
	// Name identifies the script language (e.g. "javascript").
	Name string

	// Declare declares one script-visible variable from the transfer slot.
	Declare string

	// Release removes the transfer slot from the script namespace.
	Release string

	// Quote renders s as a string literal of the script language.
	Quote func(s string) string
}
