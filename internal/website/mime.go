package website

import (
	"mime"
	"path"
	"strings"
)

// FallbackType is served when no MIME type can be resolved for a file
// extension. Unknown extensions never abort a run; they fall back here
// and are logged at Warn by the walker.
const FallbackType = "application/octet-stream"

// mimeTypes covers the extensions commonly found in compiled website
// bundles. Embedded HTTP servers want the bare type without parameters,
// so this table takes precedence over mime.TypeByExtension which appends
// charset parameters.
var mimeTypes = map[string]string{
	".html":        "text/html",
	".htm":         "text/html",
	".css":         "text/css",
	".js":          "application/javascript",
	".mjs":         "application/javascript",
	".json":        "application/json",
	".map":         "application/json",
	".xml":         "text/xml",
	".txt":         "text/plain",
	".png":         "image/png",
	".jpg":         "image/jpeg",
	".jpeg":        "image/jpeg",
	".gif":         "image/gif",
	".svg":         "image/svg+xml",
	".ico":         "image/x-icon",
	".webp":        "image/webp",
	".pdf":         "application/pdf",
	".woff":        "font/woff",
	".woff2":       "font/woff2",
	".ttf":         "font/ttf",
	".eot":         "application/vnd.ms-fontobject",
	".wasm":        "application/wasm",
	".webmanifest": "application/manifest+json",
}

// TypeForName resolves the MIME type for a logical file name. The second
// return value reports whether the extension was recognized; on false the
// fallback type is returned.
func TypeForName(name string) (string, bool) {
	ext := strings.ToLower(path.Ext(name))
	if t, ok := mimeTypes[ext]; ok {
		return t, true
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t, true
	}
	return FallbackType, false
}
