package tsgen

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

const tsTemplate = `{{ .BannerComment }}
{{ range .Interfaces }}
{{ if .Description }}/**
{{ range .Description }} * {{ . }}
{{ end }} */
{{ end }}export interface {{ .Name }} {
{{ range .Fields }}  {{ .Key }}{{ if .Optional }}?{{ end }}: {{ .Type }};
{{ end }}}
{{ end -}}`

const objectType = `{
    [k: string]: unknown;
  }`

var validKey = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type TSField struct {
	Key      string
	Type     string
	Optional bool
}

type TSInterface struct {
	Name        string
	Description []string
	Fields      []TSField
}

type TSFile struct {
	BannerComment string
	Interfaces    []TSInterface
}

// TypeScriptEmitter renders one exported interface per document, the root
// wrapper first.
type TypeScriptEmitter struct{}

func NewTypeScriptEmitter() *TypeScriptEmitter {
	return &TypeScriptEmitter{}
}

func (e *TypeScriptEmitter) Emit(root *RootDocument, opts EmitOptions) (string, error) {
	file, err := NewTSFile(root, opts.BannerComment)
	if err != nil {
		return "", err
	}
	return file.Render()
}

func NewTSFile(root *RootDocument, banner string) (*TSFile, error) {
	file := &TSFile{
		BannerComment: banner,
		Interfaces:    make([]TSInterface, 0, len(root.Definitions)+1),
	}

	rootIface, err := newTSInterface(root, &Document{Title: root.Title, Properties: root.Properties})
	if err != nil {
		return nil, err
	}
	file.Interfaces = append(file.Interfaces, rootIface)

	for _, def := range root.Definitions {
		iface, err := newTSInterface(root, def)
		if err != nil {
			return nil, err
		}
		file.Interfaces = append(file.Interfaces, iface)
	}

	return file, nil
}

func (f *TSFile) Render() (string, error) {
	tmpl, err := template.New("").Parse(tsTemplate)
	if err != nil {
		return "", errors.Wrap(ErrEmitter, err.Error())
	}

	var buff bytes.Buffer
	err = tmpl.Execute(&buff, f)
	if err != nil {
		return "", errors.Wrap(ErrEmitter, err.Error())
	}

	return buff.String(), nil
}

func newTSInterface(root *RootDocument, doc *Document) (TSInterface, error) {
	iface := TSInterface{
		Name:        InterfaceName(doc.Title),
		Description: commentLines(doc.Description),
		Fields:      make([]TSField, 0, len(doc.Properties)),
	}

	for _, prop := range doc.Properties {
		t, err := tsType(root, prop.Schema)
		if err != nil {
			return iface, errors.WithMessagef(err, "%s.%s", doc.Title, prop.Name)
		}
		iface.Fields = append(iface.Fields, TSField{
			Key:      tsKey(prop.Name),
			Type:     t,
			Optional: !doc.IsRequired(prop.Name),
		})
	}

	return iface, nil
}

func tsType(root *RootDocument, f Fragment) (string, error) {
	switch v := f.(type) {
	case PrimitiveFragment:
		switch v.Type {
		case TypeString, TypeNumber, TypeBoolean:
			return v.Type, nil
		case TypeObject:
			return objectType, nil
		}
		return "", errors.Wrapf(ErrEmitter, "unknown primitive type %q", v.Type)
	case ArrayFragment:
		if v.Items == nil {
			return "", errors.Wrap(ErrEmitter, "array without items")
		}
		items, err := tsType(root, v.Items)
		if err != nil {
			return "", err
		}
		if hasTopLevelUnion(items) {
			items = "(" + items + ")"
		}
		return items + "[]", nil
	case RawTypeFragment:
		return v.TSType, nil
	case RefFragment:
		title := strings.TrimPrefix(v.Ref, definitionsPath)
		if _, ok := root.Definition(title); !ok || title == v.Ref {
			return "", errors.Wrapf(ErrEmitter, "unresolved reference %s", v.Ref)
		}
		return InterfaceName(title), nil
	}
	return "", errors.Wrapf(ErrEmitter, "unknown schema fragment %T", f)
}

// hasTopLevelUnion reports a "|" outside of any brackets.
func hasTopLevelUnion(t string) bool {
	depth := 0
	for _, r := range t {
		switch r {
		case '<', '{', '(', '[':
			depth++
		case '>', '}', ')', ']':
			depth--
		case '|':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

func tsKey(name string) string {
	if validKey.MatchString(name) {
		return name
	}
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(name) + "'"
}

func commentLines(desc string) []string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return nil
	}
	desc = strings.ReplaceAll(desc, "*/", `*\/`)
	lines := strings.Split(desc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}
