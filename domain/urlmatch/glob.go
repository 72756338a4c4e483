package urlmatch

import (
	"fmt"
	"regexp"
	"strings"

	errs "github.com/TBM13/ruffle/domain/errors"
)

// Glob is a compiled resource-name glob. Unlike path globs in the match
// pattern grammar, a resource glob is matched against the whole bundled
// asset name, and '*' crosses directory separators.
type Glob struct {
	raw string
	re  *regexp.Regexp
}

// CompileGlob parses a resource-name glob. '*' matches any sequence
// including none, '?' matches a single character, everything else is
// literal. Matching is case-sensitive.
func CompileGlob(raw string) (*Glob, error) {
	if raw == "" {
		return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "empty glob"}
	}
	re, err := compileGlobRegexp(raw)
	if err != nil {
		return nil, &errs.MalformedPatternError{Pattern: raw, Reason: err.Error()}
	}
	return &Glob{raw: raw, re: re}, nil
}

// String returns the glob source text.
func (g *Glob) String() string {
	return g.raw
}

// Match reports whether the resource name is covered by the glob.
func (g *Glob) Match(name string) bool {
	return g.re.MatchString(name)
}

// compileGlobRegexp turns a glob into an anchored regexp. The descriptor
// grammar gives '*' and '?' meaning; all other characters are literal.
func compileGlobRegexp(glob string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("glob does not compile: %w", err)
	}
	return re, nil
}
