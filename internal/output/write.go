package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/opmodel/vitetags/pkg/vite"
)

// WriteTags writes tags to w. HTML writes one tag per line; JSON and YAML
// write a list of tag descriptors.
func WriteTags(w io.Writer, tags []vite.Element, format OutputFormat) error {
	switch format {
	case FormatHTML:
		for _, tag := range tags {
			if _, err := fmt.Fprintln(w, tag.String()); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return writeJSON(w, tags)
	case FormatYAML:
		return writeYAML(w, tags)
	case FormatTable:
		t := NewTable("KIND", "URL", "HTML")
		for _, tag := range tags {
			t.Row(KindStyle(string(tag.Kind())).Render(string(tag.Kind())), tagURL(tag), tag.String())
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	}
	return fmt.Errorf("format %s not supported for tag output", format)
}

// WriteManifest writes the manifest to w.
func WriteManifest(w io.Writer, m *vite.Manifest, format OutputFormat) error {
	switch format {
	case FormatTable, FormatHTML:
		_, err := fmt.Fprintln(w, RenderManifestTable(m))
		return err
	case FormatJSON:
		return writeJSON(w, m)
	case FormatYAML:
		return writeYAML(w, m)
	}
	return fmt.Errorf("format %s not supported for manifest output", format)
}

// WriteValue writes v as JSON or YAML.
func WriteValue(w io.Writer, v any, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, v)
	}
	return fmt.Errorf("format %s not supported for structured output", format)
}

// tagURL returns the src or href of a tag.
func tagURL(tag vite.Element) string {
	for _, name := range []string{"src", "href"} {
		if v, ok := tag.Attributes.Get(name); ok {
			return fmt.Sprint(v)
		}
	}
	return ""
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// writeYAML encodes through the JSON representation, so json tags and
// MarshalJSON methods apply. Mapping keys come out sorted.
func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
