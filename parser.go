package tsgen

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Translator turns content types into intermediate schema documents. Location
// fields are resolved against its registry.
type Translator struct {
	builtIns *Registry
}

func NewTranslator(builtIns *Registry) *Translator {
	return &Translator{
		builtIns: builtIns,
	}
}

var defaultTranslator = NewTranslator(BuiltIns)

func FieldToSchema(field *ContentTypeField) (Fragment, error) {
	return defaultTranslator.Field(field)
}

func ContentTypeToSchema(ct *ContentType) (*Document, error) {
	return defaultTranslator.ContentType(ct)
}

func (t *Translator) Field(field *ContentTypeField) (Fragment, error) {
	kind, ok := ParseFieldType(field.Type)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFieldKind, "type %s is not yet supported", field.Type)
	}

	switch kind {
	case FieldSymbol, FieldText, FieldDate:
		return PrimitiveFragment{Type: TypeString}, nil
	case FieldNumber, FieldInteger:
		return PrimitiveFragment{Type: TypeNumber}, nil
	case FieldBoolean:
		return PrimitiveFragment{Type: TypeBoolean}, nil
	case FieldLocation:
		loc := t.builtIns.Location()
		if loc == nil {
			return nil, errors.Wrap(ErrUnsupportedFieldKind, "no built-in definition for Location")
		}
		return RefFragment{Ref: BuildRef(loc)}, nil
	case FieldObject:
		return PrimitiveFragment{Type: TypeObject}, nil
	case FieldArray:
		if field.Items == nil {
			return nil, errors.Wrap(ErrMalformedField, "array without items")
		}
		items, err := t.Field(field.Items.asField(field.ID))
		if err != nil {
			return nil, err
		}
		return ArrayFragment{Items: items}, nil
	case FieldLink:
		return linkFragment(field)
	}

	return nil, errors.Wrapf(ErrUnsupportedFieldKind, "type %s is not yet supported", field.Type)
}

func linkFragment(field *ContentTypeField) (Fragment, error) {
	switch field.LinkType {
	case ASSET:
		return RawTypeFragment{TSType: ASSET}, nil
	case ENTRY:
		target, err := entryLinkType(field.Validations)
		if err != nil {
			return nil, err
		}
		return RawTypeFragment{TSType: fmt.Sprintf("%s<%s>", ENTRY, target)}, nil
	}
	return nil, errors.Wrapf(ErrMalformedField, "unexpected link type %q", field.LinkType)
}

// entryLinkType is the union of the content types the first linkContentType
// validation allows, "any" when there is none.
func entryLinkType(validations []*FieldValidation) (string, error) {
	for _, v := range validations {
		if v == nil || v.LinkContentType == nil {
			continue
		}
		if len(v.LinkContentType) == 0 {
			break
		}
		names := make([]string, 0, len(v.LinkContentType))
		for _, ct := range v.LinkContentType {
			name := InterfaceName(ct)
			if name == "" {
				return "", errors.Wrapf(ErrMalformedField, "linked content type %q has no usable interface name", ct)
			}
			names = append(names, name)
		}
		return strings.Join(names, " | "), nil
	}
	return "any", nil
}

func (t *Translator) ContentType(ct *ContentType) (*Document, error) {
	doc := &Document{
		Title:       ct.ID(),
		Description: ct.Description,
		Properties:  make(Properties, 0, len(ct.Fields)),
		Required:    make([]string, 0),
	}

	for _, f := range ct.Fields {
		if f == nil || f.Omitted {
			continue
		}
		schema, err := t.Field(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "content type %q field %q", ct.ID(), f.ID)
		}
		doc.Properties = append(doc.Properties, Property{Name: f.ID, Schema: schema})
		if f.Required {
			doc.Required = append(doc.Required, f.ID)
		}
	}

	return doc, nil
}
