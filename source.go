package tsgen

import (
	"bytes"
	"context"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Source provides the content model to generate from.
type Source interface {
	ContentTypes(ctx context.Context) ([]*ContentType, error)
}

// ContentfulSource reads content types from the Contentful delivery API.
type ContentfulSource struct {
	client *Client
}

func NewContentfulSource(client *Client) *ContentfulSource {
	return &ContentfulSource{
		client: client,
	}
}

func (s *ContentfulSource) ContentTypes(ctx context.Context) ([]*ContentType, error) {
	types, err := s.client.ContentTypes.GetTypes(ctx)
	if err != nil {
		return nil, err
	}
	return types.Items, nil
}

// FilteredSource keeps only the listed content types of another source.
type FilteredSource struct {
	source Source
	ids    map[string]bool
}

func NewFilteredSource(source Source, ids ...string) *FilteredSource {
	s := &FilteredSource{
		source: source,
		ids:    make(map[string]bool, len(ids)),
	}
	for _, id := range ids {
		s.ids[id] = true
	}
	return s
}

func (s *FilteredSource) ContentTypes(ctx context.Context) ([]*ContentType, error) {
	types, err := s.source.ContentTypes(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*ContentType, 0, len(s.ids))
	for _, ct := range types {
		if s.ids[ct.ID()] {
			res = append(res, ct)
		}
	}
	return res, nil
}

// FileSource reads content types from a local JSON file: a contentful export,
// a content_types response page, an array or a single content type.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{
		Path: path,
	}
}

func (s *FileSource) ContentTypes(ctx context.Context) ([]*ContentType, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}
	types, err := ParseContentTypes(data)
	if err != nil {
		return nil, errors.WithMessage(err, s.Path)
	}
	return types, nil
}

type contentTypesDocument struct {
	ContentTypes []*ContentType `json:"contentTypes"`
	Items        []*ContentType `json:"items"`
	Sys          *Sys           `json:"sys"`
}

// ParseContentTypes accepts every JSON layout content types are usually stored in.
func ParseContentTypes(data []byte) ([]*ContentType, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		types := make([]*ContentType, 0)
		err := json.Unmarshal(data, &types)
		if err != nil {
			return nil, wrapKind(ErrFetch, err)
		}
		return types, nil
	}

	doc := &contentTypesDocument{}
	err := json.Unmarshal(data, doc)
	if err != nil {
		return nil, wrapKind(ErrFetch, err)
	}

	switch {
	case doc.ContentTypes != nil:
		return doc.ContentTypes, nil
	case doc.Items != nil:
		return doc.Items, nil
	case doc.Sys != nil && doc.Sys.Type != "Array":
		ct := &ContentType{}
		err = json.Unmarshal(data, ct)
		if err != nil {
			return nil, wrapKind(ErrFetch, err)
		}
		return []*ContentType{ct}, nil
	}

	return []*ContentType{}, nil
}
