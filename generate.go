package tsgen

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type GenerateOptions struct {
	Source    Source
	Output    string
	Namespace string
	Emitter   Emitter
	Logger    *zap.Logger
}

// Generate fetches the content model, compiles it and writes the definitions
// to Output. Nothing is written unless every stage succeeds.
func Generate(ctx context.Context, opts GenerateOptions) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Info("get content types...")
	types, err := opts.Source.ContentTypes(ctx)
	if err != nil {
		return wrapKind(ErrFetch, err)
	}
	log.Info("get content types done", zap.Int("count", len(types)))

	log.Info("compile content types...")
	ts, err := Compile(types, CompileOptions{
		Namespace: opts.Namespace,
		Emitter:   opts.Emitter,
	})
	if err != nil {
		return err
	}
	log.Info("compile content types done", zap.Int("bytes", len(ts)))

	log.Info("write definitions...", zap.String("output", opts.Output))
	err = WriteFile(opts.Output, ts)
	if err != nil {
		return err
	}
	log.Info("write definitions done", zap.String("output", opts.Output))

	return nil
}

// GenerateFromSpace generates the definitions of a contentful space with the
// default client settings.
func GenerateFromSpace(ctx context.Context, accessToken string, space string, output string, namespace string) error {
	client := NewClient(&ClientOptions{
		SpaceID:  space,
		CdnToken: accessToken,
	})
	return Generate(ctx, GenerateOptions{
		Source:    NewContentfulSource(client),
		Output:    output,
		Namespace: namespace,
	})
}

// WriteFile replaces path with data through a temporary file in the same
// directory, so a failed write never leaves a truncated file behind.
func WriteFile(path string, data string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return wrapKind(ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.WriteString(data)
	if err != nil {
		tmp.Close()
		return wrapKind(ErrWrite, err)
	}
	err = tmp.Close()
	if err != nil {
		return wrapKind(ErrWrite, err)
	}
	err = os.Chmod(tmp.Name(), 0644)
	if err != nil {
		return wrapKind(ErrWrite, err)
	}
	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return wrapKind(ErrWrite, err)
	}
	return nil
}
