package website

import (
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	billy "github.com/go-git/go-billy/v5"
)

const gzSuffix = ".gz"

// Walk performs a fresh depth-first traversal of the source filesystem and
// returns the deduplicated asset list in traversal order. Directory entries
// are visited in name order, so the same tree always produces the same
// list regardless of the filesystem backend.
//
// Dedup rule: within a directory, a file F is dropped when F.gz exists
// beside it; the gzip variant is kept under F's logical name and content
// type. Filesystem errors are propagated, not masked.
func Walk(fs billy.Filesystem, excludes []string) (*Site, error) {
	site := &Site{}
	if err := walkDir(fs, ".", excludes, site); err != nil {
		return nil, err
	}
	for i := range site.Assets {
		if site.Assets[i].LogicalPath == IndexFile {
			site.Index = &site.Assets[i]
			break
		}
	}
	return site, nil
}

func walkDir(fs billy.Filesystem, dir string, excludes []string, site *Site) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read source directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	siblings := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			siblings[e.Name()] = true
		}
	}

	for _, e := range entries {
		name := e.Name()
		rel := name
		if dir != "." {
			rel = path.Join(dir, name)
		}

		skip, err := excluded(rel, excludes)
		if err != nil {
			return err
		}
		if skip {
			slog.Debug("excluded", "path", rel)
			continue
		}

		if e.IsDir() {
			if err := walkDir(fs, rel, excludes, site); err != nil {
				return err
			}
			continue
		}

		compressed := strings.HasSuffix(name, gzSuffix) && name != gzSuffix
		if !compressed && siblings[name+gzSuffix] {
			// The gzip sibling wins; this copy is never emitted.
			slog.Debug("shadowed by gzip sibling", "path", rel)
			continue
		}

		logical := rel
		if compressed {
			logical = strings.TrimSuffix(rel, gzSuffix)
		}

		contentType, known := TypeForName(logical)
		if !known {
			slog.Warn("unknown content type, using fallback", "path", rel, "type", contentType)
		}

		site.Assets = append(site.Assets, Asset{
			StoredPath:  rel,
			LogicalPath: logical,
			ContentType: contentType,
			Compressed:  compressed,
		})
	}
	return nil
}

func excluded(rel string, patterns []string) (bool, error) {
	for _, pat := range patterns {
		ok, err := doublestar.Match(pat, rel)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern %q: %w", pat, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
