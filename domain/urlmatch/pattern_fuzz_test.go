package urlmatch_test

import (
	"testing"

	"github.com/TBM13/ruffle/domain/urlmatch"
)

func FuzzCompile(f *testing.F) {
	f.Add("<all_urls>")
	f.Add("https://example.com/*")
	f.Add("*://*.example.com/path/*")
	f.Add("example.com")
	f.Add("https://exa*mple.com/*")

	f.Fuzz(func(t *testing.T, pattern string) {
		p, err := urlmatch.Compile(pattern)
		if err != nil {
			return
		}
		// A compiled pattern must evaluate without panicking.
		p.Match("https://example.com/page?q=1")
		p.Match("not a url")
	})
}

func FuzzPatternMatch(f *testing.F) {
	p, err := urlmatch.Compile("https://*.example.com/games/*")
	if err != nil {
		f.Fatal(err)
	}
	f.Add("https://www.example.com/games/pinball")
	f.Add("https://evil.com/games/pinball")
	f.Add("://")

	f.Fuzz(func(t *testing.T, rawurl string) {
		// We just ensure it doesn't panic; matching is total.
		p.Match(rawurl)
	})
}

func FuzzGlobMatch(f *testing.F) {
	g, err := urlmatch.CompileGlob("images/*.png")
	if err != nil {
		f.Fatal(err)
	}
	f.Add("images/icon128.png")
	f.Add("dist/content.js")

	f.Fuzz(func(t *testing.T, name string) {
		g.Match(name)
	})
}
