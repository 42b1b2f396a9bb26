package tsgen

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// EphemeralRoot titles the synthetic wrapper document. It never survives Postprocess.
	EphemeralRoot = "EphemeralContentfulSchemaRoot1"

	BannerComment = `/**
* This file was automatically generated.
* DO NOT MODIFY IT BY HAND.
*/`
)

type Assembler struct {
	builtIns   *Registry
	translator *Translator
}

func NewAssembler(builtIns *Registry) *Assembler {
	return &Assembler{
		builtIns:   builtIns,
		translator: NewTranslator(builtIns),
	}
}

// Assemble translates every content type and wraps the documents, plus the
// built-ins they reference, into one root document.
func (a *Assembler) Assemble(types []*ContentType) (*RootDocument, error) {
	records := make([]*Document, 0, len(types))
	for _, ct := range types {
		doc, err := a.translator.ContentType(ct)
		if err != nil {
			return nil, err
		}
		records = append(records, doc)
	}

	builtIns := a.requiredBuiltIns(records)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Title < records[j].Title
	})

	names, err := recordNames(records)
	if err != nil {
		return nil, err
	}
	for i, def := range builtIns {
		if _, taken := names[InterfaceName(def.Title)]; taken {
			renamed := *def
			renamed.Title = freeTitle(def.Title, names)
			retargetRefs(records, BuildRef(def), BuildRef(&renamed))
			builtIns[i] = &renamed
		}
		names[InterfaceName(builtIns[i].Title)] = builtIns[i].Title
	}

	definitions := make([]*Document, 0, len(records)+len(builtIns))
	definitions = append(definitions, records...)
	definitions = append(definitions, builtIns...)

	root := &RootDocument{
		Title:       EphemeralRoot,
		Properties:  make(Properties, 0, len(records)),
		Definitions: definitions,
	}
	for _, doc := range records {
		root.Properties = append(root.Properties, Property{
			Name:   doc.Title,
			Schema: RefFragment{Ref: BuildRef(doc)},
		})
	}

	return root, nil
}

// requiredBuiltIns returns the built-ins referenced by docs, once each, in
// discovery order.
func (a *Assembler) requiredBuiltIns(docs []*Document) []*Document {
	found := make([]*Document, 0)
	seen := make(map[string]bool)
	for _, doc := range docs {
		for _, ref := range doc.Refs() {
			def := a.builtIns.GetByRef(ref)
			if def == nil || seen[def.Title] {
				continue
			}
			seen[def.Title] = true
			found = append(found, def)
		}
	}
	return found
}

// recordNames maps the interface name of every record, and of the root
// wrapper, to its title. Two records sharing a name, or a record without a
// usable name, are errors.
func recordNames(records []*Document) (map[string]string, error) {
	names := map[string]string{
		InterfaceName(EphemeralRoot): EphemeralRoot,
	}
	for _, d := range records {
		name := InterfaceName(d.Title)
		if name == "" {
			return nil, errors.Wrapf(ErrInvalidName, "%q does not contain a usable interface name", d.Title)
		}
		if other, ok := names[name]; ok {
			return nil, errors.Wrapf(ErrNameCollision, "%q and %q both map to interface %s", other, d.Title, name)
		}
		names[name] = d.Title
	}
	return names, nil
}

// freeTitle suffixes title with the first counter whose interface name is not taken.
func freeTitle(title string, names map[string]string) string {
	for n := 1; ; n++ {
		t := title + strconv.Itoa(n)
		if _, taken := names[InterfaceName(t)]; !taken {
			return t
		}
	}
}

// retargetRefs points every from reference of docs, array items included, at to.
func retargetRefs(docs []*Document, from string, to string) {
	for _, doc := range docs {
		for i, p := range doc.Properties {
			doc.Properties[i].Schema = retarget(p.Schema, from, to)
		}
	}
}

func retarget(f Fragment, from string, to string) Fragment {
	switch v := f.(type) {
	case RefFragment:
		if v.Ref == from {
			return RefFragment{Ref: to}
		}
	case ArrayFragment:
		return ArrayFragment{Items: retarget(v.Items, from, to)}
	}
	return f
}

type CompileOptions struct {
	Namespace     string
	BannerComment string
	Emitter       Emitter
	BuiltIns      *Registry
}

// Compile renders the TypeScript definitions of the given content types.
func Compile(types []*ContentType, opts CompileOptions) (string, error) {
	builtIns := opts.BuiltIns
	if builtIns == nil {
		builtIns = BuiltIns
	}
	emitter := opts.Emitter
	if emitter == nil {
		emitter = NewTypeScriptEmitter()
	}
	banner := opts.BannerComment
	if banner == "" {
		banner = BannerComment
	}

	root, err := NewAssembler(builtIns).Assemble(types)
	if err != nil {
		return "", err
	}

	out, err := emitter.Emit(root, EmitOptions{BannerComment: banner})
	if err != nil {
		return "", wrapKind(ErrEmitter, err)
	}

	return Postprocess(out, opts.Namespace)
}
