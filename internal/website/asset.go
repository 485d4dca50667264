// Package website models a compiled static website tree as a list of
// servable assets. It performs the traversal, the compressed/uncompressed
// deduplication and the symbol naming that the code generator builds on.
package website

import "fmt"

// IndexFile is the logical name that, when present at the source root,
// is additionally served at "/".
const IndexFile = "index.html"

// Asset represents one servable file after dedup.
type Asset struct {
	// StoredPath is the path relative to the source root as it exists on
	// disk, forward-slash separated. May carry a ".gz" suffix.
	StoredPath string
	// LogicalPath is StoredPath with any compression suffix stripped.
	LogicalPath string
	// ContentType is the MIME type derived from the logical name, even
	// when the stored bytes are compressed.
	ContentType string
	// Compressed is true when the stored file is a gzip variant.
	Compressed bool
}

// Route returns the HTTP path the asset is served under.
func (a Asset) Route() string {
	return "/" + a.LogicalPath
}

// Identifier returns the C symbol stem for the asset, derived from the
// stored path (so a gzip variant keeps its _GZ suffix in the symbol).
func (a Asset) Identifier() string {
	return Identifier(a.StoredPath)
}

// Site is the route table: every asset in traversal order, plus the root
// index asset when one exists.
type Site struct {
	Assets []Asset
	// Index points at the asset whose logical path is exactly "index.html",
	// or nil. An index.html in a subdirectory does not qualify.
	Index *Asset
}

// CheckIdentifiers verifies that every asset maps to a distinct, valid C
// identifier. Two paths colliding on the same symbol, or a symbol starting
// with a digit, would produce uncompilable or silently wrong output, so
// both fail with a diagnostic naming the offending files.
func (s *Site) CheckIdentifiers() error {
	seen := make(map[string]string, len(s.Assets))
	for _, a := range s.Assets {
		id := a.Identifier()
		if id == "" || (id[0] >= '0' && id[0] <= '9') {
			return fmt.Errorf("file %q maps to %q which is not a valid C identifier; rename the file", a.StoredPath, id)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("identifier collision: %q and %q both map to %s; rename one of the files", prev, a.StoredPath, id)
		}
		seen[id] = a.StoredPath
	}
	return nil
}
