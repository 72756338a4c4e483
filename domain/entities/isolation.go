package entities

import (
	"fmt"
	"sort"
	"strings"
)

// IsolationConfig carries the raw security policy string for pages the
// extension itself serves. It never applies to injected pages; that scope
// belongs to InjectionRule.
type IsolationConfig struct {
	ExtensionPages string `json:"extension_pages,omitempty" yaml:"extension_pages,omitempty"`
}

// IsolationPolicy is the parsed form: policy-category name mapped to its
// restriction expression.
type IsolationPolicy struct {
	Directives map[string][]string
}

// knownDirectives are the policy categories the host understands.
var knownDirectives = map[string]bool{
	"default-src": true,
	"script-src":  true,
	"style-src":   true,
	"img-src":     true,
	"media-src":   true,
	"connect-src": true,
	"font-src":    true,
	"object-src":  true,
	"frame-src":   true,
	"worker-src":  true,
	"base-uri":    true,
	"form-action": true,
	"sandbox":     true,
}

// ParseIsolationPolicy parses the semicolon-separated directive string.
// Unknown or duplicate directive names are rejected; a directive with no
// sources is kept with an empty restriction list.
func ParseIsolationPolicy(raw string) (*IsolationPolicy, error) {
	policy := &IsolationPolicy{Directives: make(map[string][]string)}
	for _, clause := range strings.Split(raw, ";") {
		fields := strings.Fields(clause)
		if len(fields) == 0 {
			continue
		}
		name := strings.ToLower(fields[0])
		if !knownDirectives[name] {
			return nil, fmt.Errorf("unknown policy directive %q", name)
		}
		if _, dup := policy.Directives[name]; dup {
			return nil, fmt.Errorf("duplicate policy directive %q", name)
		}
		policy.Directives[name] = append([]string(nil), fields[1:]...)
	}
	return policy, nil
}

// Directive returns the restriction expression for a policy category.
func (p *IsolationPolicy) Directive(name string) ([]string, bool) {
	v, ok := p.Directives[strings.ToLower(name)]
	return v, ok
}

// String serializes the policy with directives in sorted order so the
// output is deterministic.
func (p *IsolationPolicy) String() string {
	names := make([]string, 0, len(p.Directives))
	for name := range p.Directives {
		names = append(names, name)
	}
	sort.Strings(names)

	clauses := make([]string, 0, len(names))
	for _, name := range names {
		parts := append([]string{name}, p.Directives[name]...)
		clauses = append(clauses, strings.Join(parts, " "))
	}
	return strings.Join(clauses, "; ")
}
