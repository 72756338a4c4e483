package host

import (
	"fmt"

	"github.com/TBM13/ruffle/domain/entities"
	errs "github.com/TBM13/ruffle/domain/errors"
	"github.com/TBM13/ruffle/domain/ports"
)

// RuleHandle binds a rewrite policy to its declared rule document. The
// document's contents stay opaque; the handle is what the host's
// request-evaluation subsystem consumes.
type RuleHandle struct {
	ID        string
	SourceRef string
	Enabled   bool
}

// WireRules binds each declared rewrite policy to its rule document. An
// enabled policy whose reference cannot be resolved aborts the load with a
// DanglingReferenceError identifying the rule set; there is no retry,
// since network rewriting is part of the extension's declared security
// posture, not an optional enhancement.
func WireRules(d *entities.Descriptor, reg ports.AssetRegistry) ([]RuleHandle, error) {
	policies := d.RewritePolicies()
	if len(policies) == 0 {
		return nil, nil
	}

	handles := make([]RuleHandle, 0, len(policies))
	for _, policy := range policies {
		if policy.Enabled && !reg.HasRuleDocument(policy.Path) {
			return nil, &errs.DanglingReferenceError{
				Kind:  "rule_document",
				Field: fmt.Sprintf("declarative_net_request.rule_resources[%s]", policy.ID),
				Ref:   policy.Path,
			}
		}
		handles = append(handles, RuleHandle{
			ID:        policy.ID,
			SourceRef: policy.Path,
			Enabled:   policy.Enabled,
		})
	}
	return handles, nil
}
