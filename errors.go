package tsgen

import (
	"github.com/pkg/errors"
)

// Error kinds. Every failure returned by the package wraps exactly one of these,
// so callers can match with errors.Is while the message keeps the detail.
var (
	ErrFetch                = errors.New("fetch failed")
	ErrUnsupportedFieldKind = errors.New("unsupported field kind")
	ErrMalformedField       = errors.New("malformed field")
	ErrNameCollision        = errors.New("name collision")
	ErrInvalidName          = errors.New("invalid name")
	ErrEmitter              = errors.New("emitter failed")
	ErrWrite                = errors.New("write failed")
	ErrInvalidNamespace     = errors.New("invalid namespace")
)

// kindError keeps both the kind and the cause reachable through errors.Is.
type kindError struct {
	kind  error
	cause error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func (e *kindError) Cause() error {
	return e.cause
}

// wrapKind tags err with kind unless it already carries it.
func wrapKind(kind error, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kind) {
		return err
	}
	return &kindError{kind: kind, cause: err}
}
