package entities

// Capability is a named permission the extension holds. Capabilities are
// additive and carry no precedence: absence from the grant means the
// corresponding action is forbidden, with no partial grant.
type Capability string

const (
	// CapabilityStorage grants access to the extension storage area.
	CapabilityStorage Capability = "storage"

	// CapabilityScripting grants the ability to inject scripts.
	CapabilityScripting Capability = "scripting"

	// CapabilityDeclarativeNetRequest grants declarative network-request
	// authoring scoped to the granted hosts.
	CapabilityDeclarativeNetRequest Capability = "declarativeNetRequestWithHostAccess"
)

// PermissionGrant is the effective grant: the union of declared
// capabilities, applied to URLs matching the host scope.
type PermissionGrant struct {
	Capabilities []Capability `json:"capabilities" yaml:"capabilities"`
	HostScope    []string     `json:"host_scope" yaml:"host_scope"`
}

// Has reports whether the named capability is part of the grant.
func (g PermissionGrant) Has(c Capability) bool {
	for _, have := range g.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the grant carries no capabilities at all.
func (g PermissionGrant) IsEmpty() bool {
	return len(g.Capabilities) == 0
}
