package tsgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emitted = `/* banner */

export interface EphemeralContentfulSchemaRoot1 {
  article?: Article;
}

export interface Article {
  title: string;
}
`

func TestPostprocess(t *testing.T) {
	out, err := Postprocess(emitted, "")
	require.NoError(t, err)

	want := `import { Asset, Entry } from 'contentful';

/* banner */

export interface Article {
  title: string;
}
`
	assert.Equal(t, want, out)
}

func TestPostprocessNamespace(t *testing.T) {
	out, err := Postprocess(emitted, "Contentful")
	require.NoError(t, err)

	want := `import { Asset, Entry } from 'contentful';

export declare namespace Contentful {
/* banner */

export interface Article {
  title: string;
}
}
`
	assert.Equal(t, want, out)
}

func TestPostprocessMissingRoot(t *testing.T) {
	_, err := Postprocess("export interface Article {}\n", "")
	assert.ErrorIs(t, err, ErrEmitter)
}

func TestPostprocessInvalidNamespace(t *testing.T) {
	_, err := Postprocess(emitted, "my-types")
	assert.ErrorIs(t, err, ErrInvalidNamespace)

	_, err = Postprocess(emitted, "Acme.Contentful")
	assert.NoError(t, err)
}
