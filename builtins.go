package tsgen

import (
	"strings"
)

const definitionsPath = "#/definitions/"

// Registry is a fixed table of shared documents that fields may reference.
// It is never mutated after NewRegistry returns.
type Registry struct {
	byTitle map[string]*Document
}

var location = &Document{
	Title: "Location",
	Properties: Properties{
		{Name: "lat", Schema: PrimitiveFragment{Type: TypeNumber}},
		{Name: "lon", Schema: PrimitiveFragment{Type: TypeNumber}},
	},
	Required: []string{"lat", "lon"},
}

// BuiltIns holds the shapes Contentful fields can point at.
var BuiltIns = NewRegistry(location)

func NewRegistry(docs ...*Document) *Registry {
	r := &Registry{
		byTitle: make(map[string]*Document, len(docs)),
	}
	for _, d := range docs {
		r.byTitle[d.Title] = d
	}
	return r
}

// Location is the built-in geographic point shape.
func (r *Registry) Location() *Document {
	return r.byTitle[location.Title]
}

func BuildRef(doc *Document) string {
	return definitionsPath + doc.Title
}

// GetByRef returns the built-in a ref names, or nil when the ref points elsewhere.
func (r *Registry) GetByRef(ref string) *Document {
	if !strings.HasPrefix(ref, definitionsPath) {
		return nil
	}
	return r.byTitle[strings.TrimPrefix(ref, definitionsPath)]
}
