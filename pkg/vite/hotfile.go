package vite

import (
	"encoding/json"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/vitetags/internal/errors"
)

// DefaultHotFile is the hot file location used when none is configured.
const DefaultHotFile = "public/hot.json"

// HotFile is the descriptor written by the dev server while it runs.
type HotFile struct {
	// URL is the dev server origin, e.g. http://localhost:5173.
	URL string `json:"url"`
}

// readHotFile reads and decodes the hot file. A missing file is a parse
// error: callers only read after the mode check saw it.
func readHotFile(fs afero.Fs, path string) (*HotFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, oerrors.NewParseError("reading hot file", path, err)
	}

	if err := validateDocument(hotFileSchema, data); err != nil {
		return nil, oerrors.NewParseError("invalid hot file", path, err)
	}

	var hot HotFile
	if err := json.Unmarshal(data, &hot); err != nil {
		return nil, oerrors.NewParseError("decoding hot file", path, err)
	}
	return &hot, nil
}

// asset joins the dev server URL and an asset path.
func (h *HotFile) asset(asset string) string {
	return h.URL + "/" + asset
}
