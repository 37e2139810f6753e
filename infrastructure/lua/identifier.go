package lua

// IsIdentifier implements ports.IdentifierChecker. Lua names are ASCII
// letters, digits and underscores, not starting with a digit.
func (r *Runtime) IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
