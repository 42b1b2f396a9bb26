package tsgen

import (
	"github.com/goccy/go-json"
)

type Sys struct {
	ID          string       `json:"id"`
	Type        string       `json:"type,omitempty"`
	LinkType    string       `json:"linkType,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
	Revision    int          `json:"revision,omitempty"`
	ContentType *ContentType `json:"contentType,omitempty"`
}

type ContentTypes struct {
	Total int            `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
	Items []*ContentType `json:"items"`
}

type ContentType struct {
	Sys          *Sys                `json:"sys"`
	Name         string              `json:"name,omitempty"`
	Description  string              `json:"description,omitempty"`
	DisplayField string              `json:"displayField,omitempty"`
	Fields       []*ContentTypeField `json:"fields,omitempty"`
}

// ID returns the content type id, empty when sys is missing.
func (ct *ContentType) ID() string {
	if ct == nil || ct.Sys == nil {
		return ""
	}
	return ct.Sys.ID
}

type ContentTypeField struct {
	ID          string              `json:"id,omitempty"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	LinkType    string              `json:"linkType,omitempty"`
	Items       *FieldTypeArrayItem `json:"items,omitempty"`
	Required    bool                `json:"required,omitempty"`
	Localized   bool                `json:"localized,omitempty"`
	Disabled    bool                `json:"disabled,omitempty"`
	Omitted     bool                `json:"omitted,omitempty"`
	Validations []*FieldValidation  `json:"validations,omitempty"`
}

type FieldTypeArrayItem struct {
	Type        string             `json:"type,omitempty"`
	LinkType    string             `json:"linkType,omitempty"`
	Validations []*FieldValidation `json:"validations,omitempty"`
}

// asField lets array items go through the same translation as top level fields.
func (i *FieldTypeArrayItem) asField(id string) *ContentTypeField {
	return &ContentTypeField{
		ID:          id,
		Type:        i.Type,
		LinkType:    i.LinkType,
		Validations: i.Validations,
	}
}

type FieldValidation struct {
	LinkContentType   []string      `json:"linkContentType,omitempty"`
	LinkMimetypeGroup []string      `json:"linkMimetypeGroup,omitempty"`
	In                []interface{} `json:"in,omitempty"`
	Size              *MinMax       `json:"size,omitempty"`
	Range             *MinMax       `json:"range,omitempty"`
	Regexp            *Regexp       `json:"regexp,omitempty"`
	Unique            bool          `json:"unique,omitempty"`
	Message           string        `json:"message,omitempty"`
}

type MinMax struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type Regexp struct {
	Pattern string `json:"pattern,omitempty"`
	Flags   string `json:"flags,omitempty"`
}

type Space struct {
	Sys     *Sys      `json:"sys"`
	Name    string    `json:"name"`
	Locales []*Locale `json:"locales"`
}

type Locale struct {
	Code         string `json:"code"`
	Default      bool   `json:"default"`
	Name         string `json:"name"`
	FallbackCode string `json:"fallbackCode"`
}

type errorResponse struct {
	Message string `json:"message,omitempty"`
	Sys     *Sys   `json:"sys,omitempty"`
}

func UnmarshalContentTypes(body []byte) (types *ContentTypes, err error) {
	types = &ContentTypes{}
	err = json.Unmarshal(body, types)
	return
}
