package tsgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeScriptEmitter(t *testing.T) {
	root, err := NewAssembler(BuiltIns).Assemble([]*ContentType{
		{
			Sys:         &Sys{ID: "page"},
			Description: "A page.\nRendered by the site.",
			Fields: []*ContentTypeField{
				{ID: "slug", Type: "Symbol", Required: true},
				{ID: "meta", Type: "Object"},
				{ID: "og:title", Type: "Text"},
				{ID: "blocks", Type: "Array", Items: &FieldTypeArrayItem{Type: "Link", LinkType: "Entry", Validations: []*FieldValidation{
					{LinkContentType: []string{"page"}},
				}}},
			},
		},
	})
	require.NoError(t, err)

	out, err := NewTypeScriptEmitter().Emit(root, EmitOptions{BannerComment: "// banner"})
	require.NoError(t, err)

	want := `// banner

export interface EphemeralContentfulSchemaRoot1 {
  page?: Page;
}

/**
 * A page.
 * Rendered by the site.
 */
export interface Page {
  slug: string;
  meta?: {
    [k: string]: unknown;
  };
  'og:title'?: string;
  blocks?: Entry<Page>[];
}
`
	assert.Equal(t, want, out)
}

func TestTypeScriptEmitterDanglingRef(t *testing.T) {
	root := &RootDocument{
		Title: EphemeralRoot,
		Definitions: []*Document{
			{Title: "a", Properties: Properties{{Name: "b", Schema: RefFragment{Ref: "#/definitions/b"}}}},
		},
	}

	_, err := NewTypeScriptEmitter().Emit(root, EmitOptions{})
	assert.ErrorIs(t, err, ErrEmitter)
}

func TestTSType(t *testing.T) {
	root := &RootDocument{Definitions: []*Document{{Title: "blog_post"}}}

	tests := []struct {
		name string
		in   Fragment
		want string
	}{
		{"string", PrimitiveFragment{Type: TypeString}, "string"},
		{"ref", RefFragment{Ref: "#/definitions/blog_post"}, "BlogPost"},
		{"raw", RawTypeFragment{TSType: "Entry<A | B>"}, "Entry<A | B>"},
		{"array of raw union", ArrayFragment{Items: RawTypeFragment{TSType: "A | B"}}, "(A | B)[]"},
		{"array of generic union", ArrayFragment{Items: RawTypeFragment{TSType: "Entry<A | B>"}}, "Entry<A | B>[]"},
		{"nested array", ArrayFragment{Items: ArrayFragment{Items: PrimitiveFragment{Type: TypeNumber}}}, "number[][]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tsType(root, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := tsType(root, PrimitiveFragment{Type: "date"})
	assert.ErrorIs(t, err, ErrEmitter)
}

func TestTSKey(t *testing.T) {
	assert.Equal(t, "title", tsKey("title"))
	assert.Equal(t, "$id", tsKey("$id"))
	assert.Equal(t, "'og:title'", tsKey("og:title"))
	assert.Equal(t, `'it\'s'`, tsKey("it's"))
}
