package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// bytesPerLine matches the usual bin2c layout.
const bytesPerLine = 12

// cBytes renders raw content as the body of a C array initializer: every
// byte as a hexadecimal literal, comma-separated, wrapped at bytesPerLine.
// Zero-length content renders as the empty string so the initializer
// collapses to {}.
func cBytes(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(data) * 6)
	for i, v := range data {
		if i == 0 {
			b.WriteString("\n    ")
		} else if i%bytesPerLine == 0 {
			b.WriteString(",\n    ")
		} else {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", v)
	}
	b.WriteByte('\n')
	return b.String()
}

// GetFuncMap returns the template functions shared by all framework
// variants.
func GetFuncMap() template.FuncMap {
	return template.FuncMap{
		"cbytes": cBytes,
		"Upper":  strings.ToUpper,
		"Lower":  strings.ToLower,
	}
}
