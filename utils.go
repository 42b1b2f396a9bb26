package tsgen

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidIdentChars = regexp.MustCompile(`(^[^a-zA-Z_$]+)|([^a-zA-Z_$\d])`)
	leadingUnderscore = regexp.MustCompile(`^_[a-z]`)
	snakeSegment      = regexp.MustCompile(`_[a-z]`)
	afterDigitDollar  = regexp.MustCompile(`[\d$]+[a-zA-Z]`)
	afterWhitespace   = regexp.MustCompile(`\s+[a-zA-Z]`)
	whitespace        = regexp.MustCompile(`\s`)
)

// InterfaceName turns a content type id into a TypeScript identifier.
func InterfaceName(s string) string {
	s = deburr(s)
	s = invalidIdentChars.ReplaceAllString(s, " ")
	s = leadingUnderscore.ReplaceAllStringFunc(s, strings.ToUpper)
	s = snakeSegment.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
	s = afterDigitDollar.ReplaceAllStringFunc(s, strings.ToUpper)
	s = afterWhitespace.ReplaceAllStringFunc(s, func(m string) string {
		return strings.TrimSpace(strings.ToUpper(m))
	})
	s = whitespace.ReplaceAllString(s, "")
	return upperFirst(s)
}

// deburr drops combining marks and transliterates the Latin-1 and
// Latin Extended-A letters that have no decomposition (ø, ß, æ, ł ...).
func deburr(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		res = s
	}

	var b strings.Builder
	for _, r := range res {
		if r >= 0xC0 && r <= 0x17F && r != 0xD7 && r != 0xF7 {
			b.WriteString(unidecode.Unidecode(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var camel = regexp.MustCompile("(^[^A-Z]*|[A-Z]*)([A-Z][^A-Z]+|$)")
var snake = regexp.MustCompile(`([_ ]\w)`)

func toSnakeCase(s string) string {
	var a []string
	for _, sub := range camel.FindAllStringSubmatch(s, -1) {
		if sub[1] != "" {
			a = append(a, sub[1])
		}
		if sub[2] != "" {
			a = append(a, sub[2])
		}
	}
	return strings.ToLower(strings.Join(a, "_"))
}

func toCamelCase(s string) string {
	return snake.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(string(w[1]))
	})
}
