package ports

import "github.com/TBM13/ruffle/domain/entities"

// Evaluator answers policy questions for a single frozen descriptor. All
// methods are pure and safe for concurrent use; the host re-invokes them
// independently per navigation, frame, or request event.
type Evaluator interface {
	// Decide evaluates an injection rule against a navigated URL.
	// Exclusion always wins over inclusion.
	Decide(rule entities.InjectionRule, url string) entities.Decision

	// Authorize reports whether the grant covers the capability for the
	// given URL. Total: absence of a match is false, never an error.
	Authorize(capability entities.Capability, url string) bool

	// Exposable reports whether a bundled resource is fetchable by a page
	// at the given URL. Total, like Authorize.
	Exposable(resource, url string) bool
}
