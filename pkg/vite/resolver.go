// Package vite resolves Vite entrypoints into HTML tags and URLs.
//
// A Resolver works in one of two modes. While the dev server runs it writes
// a hot file, and every asset is served from the dev server unbundled. When
// the hot file is absent, entrypoints are looked up in the manifest produced
// by `vite build`. The mode is checked again on every call.
package vite

import (
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"

	oerrors "github.com/opmodel/vitetags/internal/errors"
)

// DefaultBuildDirectory is where `vite build` writes its output by default.
const DefaultBuildDirectory = "public/assets"

// Re-exported error kinds, for use with errors.Is.
var (
	ErrParse        = oerrors.ErrParse
	ErrNotFound     = oerrors.ErrNotFound
	ErrInvalidState = oerrors.ErrInvalidState
)

// Options configures a Resolver.
type Options struct {
	// HotFile is the path of the dev server hot file.
	// Default: public/hot.json
	HotFile string

	// Entrypoints are the source paths of the application entrypoints.
	Entrypoints []string

	// AssetsURL is the base URL for built assets, e.g. a CDN origin.
	// A trailing slash is removed. Default: ""
	AssetsURL string

	// BuildDirectory contains manifest.json.
	// Default: public/assets
	BuildDirectory string

	// Reload lists globs of files that trigger a full page reload. It is
	// carried for watchers and not used during resolution.
	Reload []string

	// ScriptAttributes adds attributes to every script tag.
	ScriptAttributes AttributeProvider

	// StyleAttributes adds attributes to every stylesheet tag.
	StyleAttributes AttributeProvider

	// FS is the file system holding the hot file and the manifest.
	// Default: the OS file system, read-only.
	FS afero.Fs

	// Logger receives debug output. Default: log.Default()
	Logger *log.Logger
}

// Resolver generates tags and URLs for Vite assets. It is safe for
// concurrent use.
type Resolver struct {
	opts   Options
	fs     afero.Fs
	logger *log.Logger

	// manifest is set once by the first successful load and never cleared.
	manifest atomic.Pointer[Manifest]
	loads    singleflight.Group
}

// New creates a Resolver, applying defaults to opts.
func New(opts Options) *Resolver {
	if opts.HotFile == "" {
		opts.HotFile = DefaultHotFile
	}
	if opts.BuildDirectory == "" {
		opts.BuildDirectory = DefaultBuildDirectory
	}
	opts.AssetsURL = strings.TrimSuffix(opts.AssetsURL, "/")

	r := &Resolver{
		opts:   opts,
		fs:     opts.FS,
		logger: opts.Logger,
	}
	if r.fs == nil {
		r.fs = afero.NewReadOnlyFs(afero.NewOsFs())
	}
	if r.logger == nil {
		r.logger = log.Default()
	}

	r.logger.Debug("vite config",
		"hotFile", opts.HotFile,
		"buildDirectory", opts.BuildDirectory,
		"assetsUrl", opts.AssetsURL,
		"entrypoints", opts.Entrypoints,
	)
	return r
}

// Entrypoints returns the configured entrypoints.
func (r *Resolver) Entrypoints() []string {
	return append([]string(nil), r.opts.Entrypoints...)
}

// Reload returns the configured reload globs.
func (r *Resolver) Reload() []string {
	return append([]string(nil), r.opts.Reload...)
}

// IsHot reports whether the dev server hot file exists right now.
func (r *Resolver) IsHot() bool {
	ok, err := afero.Exists(r.fs, r.opts.HotFile)
	return err == nil && ok
}

// detect checks the mode once for a top-level call. It returns the hot file
// in hot mode and nil in manifest mode.
func (r *Resolver) detect() (*HotFile, error) {
	if !r.IsHot() {
		return nil, nil
	}
	return readHotFile(r.fs, r.opts.HotFile)
}

// Mode reports whether the dev server is running together with the base URL
// assets are served from, checking the hot file once.
func (r *Resolver) Mode() (hot bool, assetsURL string, err error) {
	h, err := r.detect()
	if err != nil {
		return false, "", err
	}
	if h != nil {
		return true, h.URL, nil
	}
	return false, r.opts.AssetsURL, nil
}

// DevURL returns the dev server URL in hot mode and "" otherwise.
func (r *Resolver) DevURL() (string, error) {
	hot, err := r.detect()
	if err != nil || hot == nil {
		return "", err
	}
	return hot.URL, nil
}

// AssetsURL returns the dev server URL in hot mode and the configured
// assets URL otherwise.
func (r *Resolver) AssetsURL() (string, error) {
	_, assetsURL, err := r.Mode()
	return assetsURL, err
}

// AssetPath returns the URL of asset. In manifest mode asset must be a
// manifest entry.
func (r *Resolver) AssetPath(asset string) (string, error) {
	hot, err := r.detect()
	if err != nil {
		return "", err
	}
	if hot != nil {
		return hot.asset(asset), nil
	}

	manifest, err := r.loadManifest()
	if err != nil {
		return "", err
	}
	chunk, err := manifest.ChunkByEntry(asset)
	if err != nil {
		return "", err
	}
	return r.builtAsset(chunk.File), nil
}

// Manifest returns the build manifest. The file is read on the first call
// only; later calls return the same value without touching the file system.
// It fails with ErrInvalidState while the dev server is running.
func (r *Resolver) Manifest() (*Manifest, error) {
	if r.IsHot() {
		return nil, oerrors.NewInvalidStateError(
			"Cannot read the manifest file when running in hot mode",
			"Stop the dev server or remove "+r.opts.HotFile,
		)
	}
	return r.loadManifest()
}

// ManifestPath returns the location of manifest.json.
func (r *Resolver) ManifestPath() string {
	return filepath.Join(r.opts.BuildDirectory, ManifestFilename)
}

func (r *Resolver) loadManifest() (*Manifest, error) {
	if m := r.manifest.Load(); m != nil {
		return m, nil
	}

	v, err, _ := r.loads.Do("manifest", func() (any, error) {
		if m := r.manifest.Load(); m != nil {
			return m, nil
		}
		m, err := readManifest(r.fs, r.ManifestPath())
		if err != nil {
			return nil, err
		}
		r.manifest.Store(m)
		r.logger.Debug("manifest loaded", "path", r.ManifestPath(), "entries", m.Len())
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Manifest), nil
}

// builtAsset joins the assets URL and an emitted file.
func (r *Resolver) builtAsset(file string) string {
	return r.opts.AssetsURL + "/" + file
}
