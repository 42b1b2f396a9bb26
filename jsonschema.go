package tsgen

import (
	"bytes"

	"github.com/goccy/go-json"
)

const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Fragment is the schema of a single property. The set of implementations is
// closed: PrimitiveFragment, ArrayFragment, RawTypeFragment and RefFragment.
type Fragment interface {
	json.Marshaler
	isFragment()
}

// PrimitiveFragment is a plain json-schema type tag.
type PrimitiveFragment struct {
	Type string
}

// ArrayFragment wraps the schema of its elements.
type ArrayFragment struct {
	Items Fragment
}

// RawTypeFragment carries a TypeScript type expression that is emitted verbatim.
type RawTypeFragment struct {
	TSType string
}

// RefFragment points at another document through its definitions path.
type RefFragment struct {
	Ref string
}

func (PrimitiveFragment) isFragment() {}
func (ArrayFragment) isFragment()     {}
func (RawTypeFragment) isFragment()   {}
func (RefFragment) isFragment()       {}

func (f PrimitiveFragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{f.Type})
}

func (f ArrayFragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Items Fragment `json:"items"`
		Type  string   `json:"type"`
	}{f.Items, TypeArray})
}

func (f RawTypeFragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TSType string `json:"tsType"`
	}{f.TSType})
}

func (f RefFragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Ref string `json:"$ref"`
	}{f.Ref})
}

// fragmentRefs collects every $ref reachable from f, array items included.
func fragmentRefs(f Fragment) []string {
	switch v := f.(type) {
	case RefFragment:
		return []string{v.Ref}
	case ArrayFragment:
		return fragmentRefs(v.Items)
	case PrimitiveFragment, RawTypeFragment:
		return nil
	}
	return nil
}

type Property struct {
	Name   string
	Schema Fragment
}

// Properties keeps declaration order, which a Go map would lose.
type Properties []Property

func (p Properties) Get(name string) (Fragment, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Schema, true
		}
	}
	return nil, false
}

func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(prop.Schema)
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

// Document is the intermediate schema of one content type or built-in shape.
// additionalProperties is always false.
type Document struct {
	Title       string
	Description string
	Properties  Properties
	Required    []string
}

// Refs lists the $refs of the document properties in declaration order.
func (d *Document) Refs() []string {
	refs := make([]string, 0)
	for _, prop := range d.Properties {
		refs = append(refs, fragmentRefs(prop.Schema)...)
	}
	return refs
}

func (d *Document) IsRequired(name string) bool {
	for _, r := range d.Required {
		if r == name {
			return true
		}
	}
	return false
}

func (d *Document) MarshalJSON() ([]byte, error) {
	required := d.Required
	if required == nil {
		required = []string{}
	}
	properties := d.Properties
	if properties == nil {
		properties = Properties{}
	}
	return json.Marshal(struct {
		Title                string     `json:"title"`
		Description          string     `json:"description,omitempty"`
		Properties           Properties `json:"properties"`
		Required             []string   `json:"required"`
		AdditionalProperties bool       `json:"additionalProperties"`
	}{d.Title, d.Description, properties, required, false})
}

// RootDocument is the synthetic entry point handed to the emitter. It lives
// only for the duration of one compilation.
type RootDocument struct {
	Title       string
	Properties  Properties
	Definitions []*Document
}

// Definition looks a definition up by title.
func (r *RootDocument) Definition(title string) (*Document, bool) {
	for _, d := range r.Definitions {
		if d.Title == title {
			return d, true
		}
	}
	return nil, false
}

// Refs lists every $ref in the root properties and in all definitions.
func (r *RootDocument) Refs() []string {
	refs := make([]string, 0)
	for _, prop := range r.Properties {
		refs = append(refs, fragmentRefs(prop.Schema)...)
	}
	for _, d := range r.Definitions {
		refs = append(refs, d.Refs()...)
	}
	return refs
}

func (r *RootDocument) MarshalJSON() ([]byte, error) {
	var defs bytes.Buffer
	defs.WriteByte('{')
	for i, d := range r.Definitions {
		if i > 0 {
			defs.WriteByte(',')
		}
		k, err := json.Marshal(d.Title)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		defs.Write(k)
		defs.WriteByte(':')
		defs.Write(v)
	}
	defs.WriteByte('}')

	properties := r.Properties
	if properties == nil {
		properties = Properties{}
	}
	return json.Marshal(struct {
		Title       string          `json:"title"`
		Type        string          `json:"type"`
		Properties  Properties      `json:"properties"`
		Definitions json.RawMessage `json:"definitions"`
	}{r.Title, TypeObject, properties, json.RawMessage(defs.Bytes())})
}
