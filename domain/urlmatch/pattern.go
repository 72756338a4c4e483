// Package urlmatch compiles and evaluates the URL patterns of the
// descriptor: match patterns for injection, exclusion and host scopes, and
// resource-name globs for exposure policies. Matching is pure; all parsing
// happens at compile time so evaluators never fail.
package urlmatch

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	errs "github.com/TBM13/ruffle/domain/errors"
)

// AllURLs is the universal pattern: it matches every URL the host can
// navigate to.
const AllURLs = "<all_urls>"

// Pattern is a compiled URL match pattern of the form scheme://host/path.
// Scheme and host match case-insensitively, path and query case-sensitively.
type Pattern struct {
	raw     string
	allURLs bool
	scheme  string // lowercase; "*" stands for http or https
	host    string // lowercase glob; "*" or a "*." prefixed suffix or a literal
	path    *regexp.Regexp
}

var schemeRe = regexp.MustCompile(`^[a-z][a-z0-9+.-]*$`)
var hostRe = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]*$`)

// Compile parses a match pattern. It returns a *errors.MalformedPatternError
// when the pattern violates the grammar.
func Compile(raw string) (*Pattern, error) {
	if raw == AllURLs {
		return &Pattern{raw: raw, allURLs: true}, nil
	}

	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "missing '://' separator"}
	}
	scheme = strings.ToLower(scheme)
	if scheme != "*" && !schemeRe.MatchString(scheme) {
		return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "invalid scheme"}
	}

	host, path, ok := strings.Cut(rest, "/")
	if !ok {
		return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "missing path component"}
	}
	host = strings.ToLower(host)
	switch {
	case host == "*":
		// universal host
	case strings.HasPrefix(host, "*."):
		if !hostRe.MatchString(host[2:]) {
			return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "invalid host"}
		}
	case strings.Contains(host, "*"):
		return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "host wildcard must be a leading '*.'"}
	case host == "":
		if scheme != "file" {
			return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "missing host"}
		}
	default:
		if !hostRe.MatchString(host) {
			return nil, &errs.MalformedPatternError{Pattern: raw, Reason: "invalid host"}
		}
	}

	pathRe, err := compileGlobRegexp("/" + path)
	if err != nil {
		return nil, &errs.MalformedPatternError{Pattern: raw, Reason: err.Error()}
	}

	return &Pattern{
		raw:    raw,
		scheme: scheme,
		host:   host,
		path:   pathRe,
	}, nil
}

// String returns the pattern source text.
func (p *Pattern) String() string {
	return p.raw
}

// Match reports whether the navigated URL is covered by the pattern.
// Unparseable URLs match nothing; the function is total and never errors.
func (p *Pattern) Match(rawurl string) bool {
	u, err := url.Parse(rawurl)
	if err != nil || u.Scheme == "" {
		return false
	}
	if p.allURLs {
		return true
	}

	scheme := strings.ToLower(u.Scheme)
	if p.scheme == "*" {
		if scheme != "http" && scheme != "https" {
			return false
		}
	} else if scheme != p.scheme {
		return false
	}

	if !p.hostMatches(strings.ToLower(u.Hostname())) {
		return false
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return p.path.MatchString(path)
}

func (p *Pattern) hostMatches(host string) bool {
	if p.host == "*" {
		return true
	}
	if p.host == host {
		return true
	}
	if strings.HasPrefix(p.host, "*.") {
		// "*.example.com" covers the bare domain and any subdomain depth;
		// hosts carry no '/', so the wildcard crosses label boundaries.
		if host == p.host[2:] {
			return true
		}
		ok, _ := doublestar.Match(p.host, host)
		return ok
	}
	return false
}

// MatchAny reports whether any compiled pattern covers the URL.
func MatchAny(patterns []*Pattern, rawurl string) bool {
	for _, p := range patterns {
		if p.Match(rawurl) {
			return true
		}
	}
	return false
}
