package website

import "strings"

// Identifier derives the symbol stem used in generated code from a relative
// path: the path is uppercased and every rune outside [A-Z0-9] becomes a
// single underscore. The mapping is pure and deterministic; it is part of
// the generated-code contract, so changing it breaks downstream consumers
// of the emitted symbol names.
func Identifier(rel string) string {
	var b strings.Builder
	b.Grow(len(rel))
	for _, r := range strings.ToUpper(rel) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
