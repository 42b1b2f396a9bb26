package tsgen

// Emitter turns the assembled root document into declaration text.
type Emitter interface {
	Emit(root *RootDocument, opts EmitOptions) (string, error)
}

type EmitOptions struct {
	// BannerComment is written verbatim at the top of the output.
	BannerComment string
}
