package entities

// RequestRewriteConfig wires externally authored declarative network rules
// into the descriptor.
type RequestRewriteConfig struct {
	RuleResources []RequestRewritePolicy `json:"rule_resources" yaml:"rule_resources" validate:"min=1,dive"`
}

// RequestRewritePolicy references one named rule set. The SDK treats the
// referenced document as opaque; it only binds the identifier to a declared
// rule document at load time. Identifiers are unique within a descriptor.
type RequestRewritePolicy struct {
	// ID is the stable rule set identifier.
	ID string `json:"id" yaml:"id" validate:"required"`

	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path names the externally maintained rule document. Enabling a
	// policy whose path resolves to nothing is a load-time error, never a
	// silent no-op.
	Path string `json:"path" yaml:"path" validate:"required"`
}
