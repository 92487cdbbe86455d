package vite

import (
	"errors"
	"fmt"

	oerrors "github.com/opmodel/vitetags/internal/errors"
)

// Well-known dev server modules.
const (
	viteClientModule   = "@vite/client"
	reactRefreshModule = "@react-refresh"
)

// GenerateEntryPointTags returns the tags for a single entrypoint.
func (r *Resolver) GenerateEntryPointTags(entrypoint string, attrs Attributes) ([]Element, error) {
	return r.GenerateEntryPointsTags([]string{entrypoint}, attrs)
}

// GenerateEntryPointsTags returns the tags needed to load entrypoints.
//
// In hot mode the list starts with the Vite client script followed by one
// tag per entrypoint. In manifest mode every entrypoint contributes a tag for
// its output file and one per associated stylesheet; duplicates are dropped
// and stylesheets are moved ahead of scripts.
//
// attrs apply to every generated tag. Either all tags are returned or the
// first error.
func (r *Resolver) GenerateEntryPointsTags(entrypoints []string, attrs Attributes) ([]Element, error) {
	hot, err := r.detect()
	if err != nil {
		return nil, err
	}
	if hot != nil {
		return r.hotTags(hot, entrypoints, attrs), nil
	}

	manifest, err := r.loadManifest()
	if err != nil {
		return nil, err
	}
	return r.manifestTags(manifest, entrypoints, attrs)
}

func (r *Resolver) hotTags(hot *HotFile, entrypoints []string, attrs Attributes) []Element {
	client := hot.asset(viteClientModule)
	tags := make([]Element, 0, len(entrypoints)+1)
	tags = append(tags, Element{
		Tag:        "script",
		Attributes: Merge(Attrs("type", "module", "src", client), attrs, Attrs("src", client)),
		Children:   []string{},
	})

	for _, entrypoint := range entrypoints {
		tags = append(tags, r.makeTag(entrypoint, hot.asset(entrypoint), attrs))
	}
	return tags
}

// pathTag pairs a tag with the emitted file it loads.
type pathTag struct {
	path string
	tag  Element
}

func (r *Resolver) manifestTags(manifest *Manifest, entrypoints []string, attrs Attributes) ([]Element, error) {
	var tags []pathTag

	for _, entrypoint := range entrypoints {
		chunk, err := manifest.ChunkByEntry(entrypoint)
		if err != nil {
			return nil, err
		}
		tags = append(tags, r.chunkTag(chunk.File, chunk.Integrity, attrs))

		for _, css := range chunk.CSS {
			integrity := ""
			cssChunk, err := manifest.ChunkByFile(css)
			switch {
			case err == nil:
				integrity = cssChunk.Integrity
			case errors.Is(err, oerrors.ErrNotFound):
				r.logger.Debug("stylesheet has no manifest entry", "file", css)
			default:
				return nil, err
			}
			tags = append(tags, r.chunkTag(css, integrity, attrs))
		}
	}

	return stylesFirst(uniqueByPath(tags)), nil
}

func (r *Resolver) chunkTag(file, integrity string, attrs Attributes) pathTag {
	if integrity != "" {
		attrs = attrs.Set("integrity", integrity)
	}
	return pathTag{
		path: file,
		tag:  r.makeTag(file, r.builtAsset(file), attrs),
	}
}

// uniqueByPath keeps the first tag for every path.
func uniqueByPath(tags []pathTag) []pathTag {
	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if seen[t.path] {
			continue
		}
		seen[t.path] = true
		out = append(out, t)
	}
	return out
}

// stylesFirst moves stylesheets ahead of scripts, keeping the relative
// order within each group.
func stylesFirst(tags []pathTag) []Element {
	out := make([]Element, 0, len(tags))
	for _, t := range tags {
		if t.tag.Kind() == KindStyle {
			out = append(out, t.tag)
		}
	}
	for _, t := range tags {
		if t.tag.Kind() != KindStyle {
			out = append(out, t.tag)
		}
	}
	return out
}

// makeTag builds the element for src served at url. Attribute precedence,
// lowest first: kind default, configured provider, attrs, then the URL.
func (r *Resolver) makeTag(src, url string, attrs Attributes) Element {
	if IsStylePath(src) {
		return Element{
			Tag: "link",
			Attributes: Merge(
				Attrs("rel", "stylesheet"),
				r.opts.StyleAttributes.resolve(src, url),
				attrs,
				Attrs("href", url),
			),
		}
	}

	return Element{
		Tag: "script",
		Attributes: Merge(
			Attrs("type", "module"),
			r.opts.ScriptAttributes.resolve(src, url),
			attrs,
			Attrs("src", url),
		),
		Children: []string{},
	}
}

// ReactHMRScript returns the React fast refresh preamble. It returns nil
// outside hot mode.
func (r *Resolver) ReactHMRScript(attrs Attributes) (*Element, error) {
	hot, err := r.detect()
	if err != nil || hot == nil {
		return nil, err
	}

	return &Element{
		Tag:        "script",
		Attributes: Merge(Attrs("type", "module"), attrs),
		Children: []string{
			"",
			fmt.Sprintf("import RefreshRuntime from '%s'", hot.asset(reactRefreshModule)),
			"RefreshRuntime.injectIntoGlobalHook(window)",
			"window.$RefreshReg$ = () => {}",
			"window.$RefreshSig$ = () => (type) => type",
			"window.__vite_plugin_react_preamble_installed__ = true",
			"",
		},
	}, nil
}
