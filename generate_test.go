package tsgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "contentful.d.ts")

	err := Generate(context.Background(), GenerateOptions{
		Source:    staticSource(testContentTypes()),
		Output:    output,
		Namespace: "Contentful",
		Logger:    zap.NewNop(),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	expected, err := Compile(testContentTypes(), CompileOptions{Namespace: "Contentful"})
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestGenerateNoOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "contentful.d.ts")

	err := Generate(context.Background(), GenerateOptions{
		Source: staticSource{
			{Sys: &Sys{ID: "bad"}, Fields: []*ContentTypeField{{ID: "x", Type: "Array"}}},
		},
		Output: output,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedField)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateKeepsPreviousOutputOnFailure(t *testing.T) {
	output := filepath.Join(t.TempDir(), "contentful.d.ts")
	require.NoError(t, os.WriteFile(output, []byte("previous"), 0644))

	err := Generate(context.Background(), GenerateOptions{
		Source: staticSource{{Sys: &Sys{ID: "bad"}, Fields: []*ContentTypeField{{ID: "x", Type: "Unknown"}}}},
		Output: output,
	})
	assert.ErrorIs(t, err, ErrUnsupportedFieldKind)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestGenerateWriteError(t *testing.T) {
	output := filepath.Join(t.TempDir(), "missing", "contentful.d.ts")

	err := Generate(context.Background(), GenerateOptions{
		Source: staticSource(testContentTypes()),
		Output: output,
	})
	assert.ErrorIs(t, err, ErrWrite)
}

type errSource struct{}

func (errSource) ContentTypes(ctx context.Context) ([]*ContentType, error) {
	return nil, assert.AnError
}

func TestGenerateFetchError(t *testing.T) {
	err := Generate(context.Background(), GenerateOptions{
		Source: errSource{},
		Output: filepath.Join(t.TempDir(), "out.d.ts"),
	})
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, assert.AnError)
}
