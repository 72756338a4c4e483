// Package policy implements the pure evaluators over a frozen descriptor:
// the injection decision, the capability gate, and the exposure gate.
package policy

import (
	"fmt"
	"sync"

	"github.com/TBM13/ruffle/domain/entities"
	"github.com/TBM13/ruffle/domain/ports"
	"github.com/TBM13/ruffle/domain/urlmatch"
)

// evaluatorConfig holds configuration for the Evaluator.
type evaluatorConfig struct {
	audit ports.AuditHandler
}

func defaultEvaluatorConfig() evaluatorConfig {
	return evaluatorConfig{
		audit: &NopAuditHandler{},
	}
}

// EvaluatorOption configures the Evaluator.
type EvaluatorOption func(*evaluatorConfig)

// WithAuditHandler sets the audit handler invoked after each evaluation.
func WithAuditHandler(h ports.AuditHandler) EvaluatorOption {
	return func(c *evaluatorConfig) {
		c.audit = h
	}
}

// Evaluator implements ports.Evaluator with stateless decisions. It holds
// no memory of prior outcomes; only compiled patterns are cached, which is
// safe because the descriptor is frozen for the evaluator's lifetime.
type Evaluator struct {
	desc     *entities.Descriptor
	config   evaluatorConfig
	patterns sync.Map // key: pattern source, value: *urlmatch.Pattern (nil if uncompilable)
	globs    sync.Map // key: glob source, value: *urlmatch.Glob (nil if uncompilable)
}

// NewEvaluator creates an Evaluator for a validated descriptor.
func NewEvaluator(d *entities.Descriptor, opts ...EvaluatorOption) ports.Evaluator {
	cfg := defaultEvaluatorConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Evaluator{desc: d, config: cfg}
}

// pattern returns the compiled form of a match pattern. A pattern that
// fails to compile matches nothing; the loader rejects such descriptors
// before an evaluator ever sees them.
func (e *Evaluator) pattern(raw string) *urlmatch.Pattern {
	if v, ok := e.patterns.Load(raw); ok {
		p, _ := v.(*urlmatch.Pattern)
		return p
	}
	p, err := urlmatch.Compile(raw)
	if err != nil {
		p = nil
	}
	e.patterns.Store(raw, p)
	return p
}

func (e *Evaluator) glob(raw string) *urlmatch.Glob {
	if v, ok := e.globs.Load(raw); ok {
		g, _ := v.(*urlmatch.Glob)
		return g
	}
	g, err := urlmatch.CompileGlob(raw)
	if err != nil {
		g = nil
	}
	e.globs.Store(raw, g)
	return g
}

// Decide evaluates an injection rule against a navigated URL. Exclude
// patterns are checked first, in declaration order; any match suppresses
// injection regardless of the include patterns. The outcome is independent
// of declaration order, but the order is honored so audit output stays
// deterministic.
func (e *Evaluator) Decide(rule entities.InjectionRule, rawurl string) entities.Decision {
	for _, ex := range rule.ExcludeMatches {
		if p := e.pattern(ex.Pattern); p != nil && p.Match(rawurl) {
			e.config.audit.OnDecision("inject", rawurl, "skip: excluded by "+ex.Pattern)
			return entities.Decision{
				Verdict:    entities.VerdictSkip,
				ExcludedBy: ex.Pattern,
			}
		}
	}

	for _, m := range rule.Matches {
		if p := e.pattern(m); p != nil && p.Match(rawurl) {
			e.config.audit.OnDecision("inject", rawurl, "inject: matched "+m)
			return entities.Decision{
				Verdict:        entities.VerdictInject,
				FrameScope:     rule.FrameScope(),
				RunAt:          rule.Timing(),
				MatchedPattern: m,
			}
		}
	}

	e.config.audit.OnDecision("inject", rawurl, "skip: no pattern matched")
	return entities.Decision{Verdict: entities.VerdictSkip}
}

// Authorize reports whether the descriptor's grant covers the capability
// at the given URL: the capability must be in the set and the URL must
// match the host scope. Total; never errors.
func (e *Evaluator) Authorize(capability entities.Capability, rawurl string) bool {
	if !e.desc.Grant().Has(capability) {
		e.config.audit.OnDecision("capability", capability, "deny: capability not granted")
		return false
	}
	if !e.matchesAny(e.desc.HostPermissions, rawurl) {
		e.config.audit.OnDecision("capability", capability, fmt.Sprintf("deny: %s outside host scope", rawurl))
		return false
	}
	e.config.audit.OnDecision("capability", capability, fmt.Sprintf("allow: %s in host scope", rawurl))
	return true
}

// Exposable reports whether a bundled resource is fetchable by a page at
// the given URL. Total; never errors.
func (e *Evaluator) Exposable(resource, rawurl string) bool {
	for _, pol := range e.desc.WebAccessibleResources {
		if !e.matchesAny(pol.Matches, rawurl) {
			continue
		}
		for _, raw := range pol.Resources {
			if g := e.glob(raw); g != nil && g.Match(resource) {
				e.config.audit.OnDecision("resource", resource, "allow: matched "+raw)
				return true
			}
		}
	}
	e.config.audit.OnDecision("resource", resource, fmt.Sprintf("deny: not exposed to %s", rawurl))
	return false
}

func (e *Evaluator) matchesAny(patterns []string, rawurl string) bool {
	for _, raw := range patterns {
		if p := e.pattern(raw); p != nil && p.Match(rawurl) {
			return true
		}
	}
	return false
}
