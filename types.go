// Package ruffle is the declarative control surface of the browser
// extension: a typed descriptor schema plus pure evaluators deciding where
// the content handler is injected, which capabilities are granted, which
// bundled resources pages may fetch, and how declarative network-request
// rules are wired in.
package ruffle

import (
	"github.com/TBM13/ruffle/domain/entities"
)

// BuildVars are the build-time variables substituted into the descriptor
// template (package version and the like).
type BuildVars map[string]any

// Re-exported descriptor entities. The domain packages stay importable
// directly; these aliases cover the common case of a host that only loads
// a descriptor and evaluates policies.
type (
	Descriptor             = entities.Descriptor
	InjectionRule          = entities.InjectionRule
	ExcludePattern         = entities.ExcludePattern
	PermissionGrant        = entities.PermissionGrant
	Capability             = entities.Capability
	ResourceExposurePolicy = entities.ResourceExposurePolicy
	RequestRewritePolicy   = entities.RequestRewritePolicy
	IsolationPolicy        = entities.IsolationPolicy
	Decision               = entities.Decision
	ErrorDetail            = entities.ErrorDetail
)

const (
	// Version of the SDK.
	Version = "0.1.0"

	// SchemaVersion is the descriptor schema major version the SDK
	// understands; it must match the host's expected major version.
	SchemaVersion = entities.SchemaVersion
)
