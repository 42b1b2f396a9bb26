package tsgen

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const contentfulTypeImport = "import { Asset, Entry } from 'contentful';"

var (
	ephemeralRootBlock = regexp.MustCompile(`(?m)^.*` + regexp.QuoteMeta(EphemeralRoot) + `[^{}]*\{[^{}]*\}\n*`)
	namespaceName      = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// Postprocess strips the root wrapper interface, prepends the contentful import
// and wraps the declarations into namespace when one is given.
func Postprocess(emitted string, namespace string) (string, error) {
	if namespace != "" && !namespaceName.MatchString(namespace) {
		return "", errors.Wrapf(ErrInvalidNamespace, "%q is not a valid TypeScript namespace", namespace)
	}

	if !ephemeralRootBlock.MatchString(emitted) {
		return "", errors.Wrapf(ErrEmitter, "root interface %s not found in emitted output", EphemeralRoot)
	}
	content := ephemeralRootBlock.ReplaceAllLiteralString(emitted, "")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	var b strings.Builder
	b.WriteString(contentfulTypeImport)
	b.WriteString("\n\n")
	if namespace == "" {
		b.WriteString(content)
		return b.String(), nil
	}

	b.WriteString("export declare namespace ")
	b.WriteString(namespace)
	b.WriteString(" {\n")
	b.WriteString(content)
	b.WriteString("}\n")
	return b.String(), nil
}
