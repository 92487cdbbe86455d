package vite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Attribute is a single HTML attribute. A Value of true renders the bare
// name; false and nil omit the attribute; anything else renders as
// name="value" without escaping. Pointers are followed, so a typed nil is
// omitted too.
type Attribute struct {
	Name  string
	Value any
}

// Attributes is an ordered attribute set. Names are unique; setting an
// existing name replaces its value without moving it.
type Attributes []Attribute

// Attrs builds Attributes from alternating name/value pairs.
// It panics on an odd argument count or a non-string name.
func Attrs(pairs ...any) Attributes {
	if len(pairs)%2 != 0 {
		panic("vite: Attrs requires name/value pairs")
	}
	var attrs Attributes
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("vite: attribute name %v is not a string", pairs[i]))
		}
		attrs = attrs.set(name, pairs[i+1])
	}
	return attrs
}

// Set returns a copy of the set with name bound to value.
func (a Attributes) Set(name string, value any) Attributes {
	return append(Attributes(nil), a...).set(name, value)
}

func (a Attributes) set(name string, value any) Attributes {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Name: name, Value: value})
}

// Get returns the value bound to name.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Merge returns a new set with every layer applied in order; later layers win.
func Merge(layers ...Attributes) Attributes {
	var out Attributes
	for _, layer := range layers {
		for _, attr := range layer {
			out = out.set(attr.Name, attr.Value)
		}
	}
	return out
}

// String serializes the set in insertion order.
func (a Attributes) String() string {
	parts := make([]string, 0, len(a))
	for _, attr := range a {
		value, ok := derefValue(attr.Value)
		if !ok {
			continue
		}
		switch v := value.(type) {
		case bool:
			if v {
				parts = append(parts, attr.Name)
			}
		default:
			parts = append(parts, fmt.Sprintf(`%s="%v"`, attr.Name, v))
		}
	}
	return strings.Join(parts, " ")
}

// derefValue follows pointers and reports false for nil values, including
// typed nils held in the interface.
func derefValue(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Pointer, reflect.Interface:
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return nil, false
			}
			return rv.Interface(), true
		default:
			return rv.Interface(), true
		}
	}
	return nil, false
}

// MarshalJSON encodes the set as a JSON object, keeping insertion order.
func (a Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding attribute %q: %w", attr.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// AttributeSource is passed to attribute functions.
type AttributeSource struct {
	// Src is the asset as it was requested or emitted by the build.
	Src string
	// URL is the resolved URL of the asset.
	URL string
}

// AttributeProvider supplies per-kind attributes, either as a fixed set or
// computed for each tag. The zero value supplies nothing.
type AttributeProvider struct {
	static Attributes
	fn     func(AttributeSource) Attributes
}

// StaticAttributes returns a provider that always yields attrs.
func StaticAttributes(attrs Attributes) AttributeProvider {
	return AttributeProvider{static: attrs}
}

// AttributesFunc returns a provider that calls fn for every tag.
func AttributesFunc(fn func(AttributeSource) Attributes) AttributeProvider {
	return AttributeProvider{fn: fn}
}

// IsZero reports whether the provider supplies nothing.
func (p AttributeProvider) IsZero() bool {
	return p.fn == nil && p.static == nil
}

func (p AttributeProvider) resolve(src, url string) Attributes {
	if p.fn != nil {
		return p.fn(AttributeSource{Src: src, URL: url})
	}
	return p.static
}
