package vite

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/vitetags/internal/errors"
)

// ManifestFilename is the manifest file name inside the build directory.
const ManifestFilename = "manifest.json"

// Chunk is one manifest entry.
type Chunk struct {
	File           string   `json:"file"`
	Src            string   `json:"src,omitempty"`
	Name           string   `json:"name,omitempty"`
	IsEntry        bool     `json:"isEntry,omitempty"`
	IsDynamicEntry bool     `json:"isDynamicEntry,omitempty"`
	Imports        []string `json:"imports,omitempty"`
	DynamicImports []string `json:"dynamicImports,omitempty"`
	CSS            []string `json:"css,omitempty"`
	Assets         []string `json:"assets,omitempty"`
	Integrity      string   `json:"integrity,omitempty"`
}

// Manifest maps source paths to chunks, keeping the order in which the
// keys appear in the file.
type Manifest struct {
	path   string
	keys   []string
	chunks map[string]*Chunk
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.keys)
}

// Each calls fn for every entry in file order.
func (m *Manifest) Each(fn func(src string, chunk *Chunk)) {
	for _, key := range m.keys {
		fn(key, m.chunks[key])
	}
}

// ChunkByEntry returns the chunk for a source entrypoint.
func (m *Manifest) ChunkByEntry(name string) (*Chunk, error) {
	chunk, ok := m.chunks[name]
	if !ok {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("Cannot find entry %q in manifest", name),
			m.path,
			"Make sure the file is listed in the Vite entrypoints and rebuild",
		)
	}
	return chunk, nil
}

// ChunkByFile returns the first chunk whose emitted file is fileName.
func (m *Manifest) ChunkByFile(fileName string) (*Chunk, error) {
	for _, key := range m.keys {
		if chunk := m.chunks[key]; chunk.File == fileName {
			return chunk, nil
		}
	}
	return nil, oerrors.NewNotFoundError(
		fmt.Sprintf("Cannot find output file %q in manifest", fileName),
		m.path,
		"",
	)
}

// MarshalJSON encodes the manifest in file order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.chunks[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a manifest object, recording key order.
func (m *Manifest) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("manifest must be a JSON object")
	}

	m.keys = nil
	m.chunks = make(map[string]*Chunk)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected manifest key %v", tok)
		}

		var chunk Chunk
		if err := dec.Decode(&chunk); err != nil {
			return fmt.Errorf("decoding manifest entry %q: %w", key, err)
		}
		if _, seen := m.chunks[key]; !seen {
			m.keys = append(m.keys, key)
		}
		m.chunks[key] = &chunk
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// ParseManifest validates and decodes manifest data. path is used in errors.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	if err := validateDocument(manifestSchema, data); err != nil {
		return nil, oerrors.NewParseError("invalid manifest", path, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, oerrors.NewParseError("decoding manifest", path, err)
	}
	manifest.path = path
	return &manifest, nil
}

// readManifest reads and parses the manifest at path.
func readManifest(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, oerrors.NewParseError("reading manifest", path, err)
	}
	return ParseManifest(path, data)
}
