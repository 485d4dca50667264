// Package generator turns a walked website tree into an embedded C
// header/source pair for one of the supported framework variants.
package generator

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/klauspost/compress/gzip"

	"github.com/site2c/site2c/internal/config"
	"github.com/site2c/site2c/internal/website"
	"github.com/site2c/site2c/version"
)

// banner is the data every generated file's head comment is built from.
type banner struct {
	Author  string
	Year    int
	Version string
}

// assetView is the per-asset template payload. Bytes are only alive for
// the duration of one fragment render.
type assetView struct {
	StoredPath  string
	Ident       string
	Qualifier   string
	ContentType string
	Route       string
	Length      int
	Bytes       []byte
	Compressed  bool
	IsIndex     bool
}

type routeView struct {
	Route string
	Ident string
}

type registerView struct {
	Routes []routeView
	Index  *routeView
}

// Generate walks the source filesystem and writes the header and source
// files for the configured target into cfg.Output.
//
// A failure after emission has started invalidates the whole output pair;
// the returned error says so and the caller must not use the files.
func Generate(cfg *config.Config, src billy.Filesystem) error {
	fw, err := Lookup(cfg.Target)
	if err != nil {
		return err
	}

	site, err := website.Walk(src, cfg.Exclude)
	if err != nil {
		return err
	}
	if err := site.CheckIdentifiers(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", cfg.Output, err)
	}

	hdr := banner{
		Author:  cfg.Author,
		Year:    time.Now().Year(),
		Version: version.Version,
	}

	headerPath := filepath.Join(cfg.Output, fw.HeaderFile)
	if err := renderFile(fw.headerTmpl, headerPath, hdr); err != nil {
		return fmt.Errorf("failed to generate %s: %w", headerPath, err)
	}
	slog.Info("generated header", "path", headerPath, "target", fw.Name)

	sourcePath := filepath.Join(cfg.Output, fw.SourceFile)
	f, err := os.Create(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", sourcePath, err)
	}
	defer f.Close()

	if err := emitSource(f, fw, site, src, hdr); err != nil {
		return fmt.Errorf("generation failed, output pair under %s is not usable: %w", cfg.Output, err)
	}
	slog.Info("generated source", "path", sourcePath, "assets", len(site.Assets))
	return nil
}

// emitSource streams the source file: prologue, then one fragment per
// asset in traversal order, then the aggregate registration function.
func emitSource(w io.Writer, fw *Framework, site *website.Site, src billy.Filesystem, hdr banner) error {
	if err := renderFragment(w, fw.prologueTmpl, hdr); err != nil {
		return err
	}

	for _, a := range site.Assets {
		data, err := util.ReadFile(src, a.StoredPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", a.StoredPath, err)
		}
		if a.Compressed {
			raw, err := verifyGzip(data)
			if err != nil {
				return fmt.Errorf("%s is not a valid gzip stream: %w", a.StoredPath, err)
			}
			slog.Debug("verified gzip asset", "path", a.StoredPath, "stored", len(data), "raw", raw)
		}

		view := assetView{
			StoredPath:  a.StoredPath,
			Ident:       a.Identifier(),
			Qualifier:   fw.StorageQualifier,
			ContentType: a.ContentType,
			Route:       a.Route(),
			Length:      len(data),
			Bytes:       data,
			Compressed:  a.Compressed,
			IsIndex:     site.Index != nil && a.StoredPath == site.Index.StoredPath,
		}
		if err := renderFragment(w, fw.assetTmpl, view); err != nil {
			return fmt.Errorf("failed to emit %s: %w", a.StoredPath, err)
		}
	}

	reg := registerView{Routes: make([]routeView, 0, len(site.Assets))}
	for _, a := range site.Assets {
		reg.Routes = append(reg.Routes, routeView{Route: a.Route(), Ident: a.Identifier()})
	}
	if site.Index != nil {
		reg.Index = &routeView{Route: "/", Ident: site.Index.Identifier()}
	}
	return renderFragment(w, fw.registerTmpl, reg)
}

// verifyGzip decodes the stream once and returns the uncompressed size.
// A truncated or corrupt pre-compressed asset would otherwise only fail
// on the device.
func verifyGzip(data []byte) (int64, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	defer zr.Close()

	n, err := io.Copy(io.Discard, zr)
	if err != nil {
		return 0, err
	}
	return n, nil
}
