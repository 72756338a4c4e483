package urlmatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/TBM13/ruffle/domain/errors"
	"github.com/TBM13/ruffle/domain/urlmatch"
)

func TestCompile_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"missing separator", "example.com/*"},
		{"missing path", "https://example.com"},
		{"embedded host wildcard", "https://exa*mple.com/*"},
		{"trailing host wildcard", "https://example.*/*"},
		{"empty host", "https:///*"},
		{"invalid scheme", "1http://example.com/*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := urlmatch.Compile(tt.pattern)
			require.Error(t, err)

			var mpe *errs.MalformedPatternError
			require.True(t, errors.As(err, &mpe))
			assert.Equal(t, tt.pattern, mpe.Pattern)
		})
	}
}

func TestPattern_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		url     string
		want    bool
	}{
		{"all urls https", "<all_urls>", "https://any.site/x", true},
		{"all urls file", "<all_urls>", "file:///tmp/movie.swf", true},
		{"all urls garbage", "<all_urls>", "not a url", false},

		{"exact host match", "https://example.com/*", "https://example.com/page", true},
		{"exact host other", "https://example.com/*", "https://other.org/page", false},
		{"scheme mismatch", "https://example.com/*", "http://example.com/page", false},

		{"wildcard scheme http", "*://mail.google.com/*", "http://mail.google.com/u/0", true},
		{"wildcard scheme https", "*://mail.google.com/*", "https://mail.google.com/u/0", true},
		{"wildcard scheme ftp", "*://mail.google.com/*", "ftp://mail.google.com/u/0", false},

		{"subdomain wildcard bare", "https://*.example.com/*", "https://example.com/", true},
		{"subdomain wildcard one", "https://*.example.com/*", "https://www.example.com/a", true},
		{"subdomain wildcard deep", "https://*.example.com/*", "https://a.b.example.com/a", true},
		{"subdomain wildcard suffix attack", "https://*.example.com/*", "https://evilexample.com/a", false},

		{"universal host", "https://*/*", "https://anything.at.all/x", true},

		{"path prefix", "https://example.com/games/*", "https://example.com/games/pinball", true},
		{"path prefix miss", "https://example.com/games/*", "https://example.com/news/pinball", false},
		{"path crosses slashes", "https://example.com/games/*", "https://example.com/games/a/b/c", true},
		{"path with query", "https://example.com/search*", "https://example.com/search?q=flash", true},
		{"root path only", "https://example.com/", "https://example.com/", true},
		{"root path only deep", "https://example.com/", "https://example.com/deep", false},
		{"empty path normalized", "https://example.com/*", "https://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := urlmatch.Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Match(tt.url), "pattern %q vs %q", tt.pattern, tt.url)
		})
	}
}

func TestPattern_CaseSensitivity(t *testing.T) {
	p, err := urlmatch.Compile("https://example.com/Games/*")
	require.NoError(t, err)

	// Scheme and host fold case, path does not.
	assert.True(t, p.Match("HTTPS://EXAMPLE.COM/Games/x"))
	assert.False(t, p.Match("https://example.com/games/x"))
}

func TestMatchAny(t *testing.T) {
	a, err := urlmatch.Compile("https://a.com/*")
	require.NoError(t, err)
	b, err := urlmatch.Compile("https://b.com/*")
	require.NoError(t, err)

	patterns := []*urlmatch.Pattern{a, b}
	assert.True(t, urlmatch.MatchAny(patterns, "https://b.com/x"))
	assert.False(t, urlmatch.MatchAny(patterns, "https://c.com/x"))
	assert.False(t, urlmatch.MatchAny(nil, "https://c.com/x"))
}
