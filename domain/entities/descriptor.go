package entities

// SchemaVersion is the descriptor schema major version this SDK understands.
const SchemaVersion = 3

// Descriptor is the root extension policy document. It is constructed once
// at load time and treated as a frozen value for the lifetime of the
// extension process; a reload replaces the whole value atomically.
type Descriptor struct {
	ManifestVersion int    `json:"manifest_version" yaml:"manifest_version" validate:"eq=3"`
	Name            string `json:"name" yaml:"name" validate:"required"`
	ShortName       string `json:"short_name,omitempty" yaml:"short_name,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	Version         string `json:"version" yaml:"version" validate:"required"`
	DefaultLocale   string `json:"default_locale,omitempty" yaml:"default_locale,omitempty"`

	ContentScripts []InjectionRule `json:"content_scripts,omitempty" yaml:"content_scripts,omitempty" validate:"dive"`

	Permissions     []Capability `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	HostPermissions []string     `json:"host_permissions,omitempty" yaml:"host_permissions,omitempty"`

	WebAccessibleResources []ResourceExposurePolicy `json:"web_accessible_resources,omitempty" yaml:"web_accessible_resources,omitempty" validate:"dive"`

	DeclarativeNetRequest *RequestRewriteConfig `json:"declarative_net_request,omitempty" yaml:"declarative_net_request,omitempty"`

	ContentSecurityPolicy *IsolationConfig `json:"content_security_policy,omitempty" yaml:"content_security_policy,omitempty"`

	// Action and OptionsPage name UI entry points resolved by the host's
	// UI shell; the descriptor only checks that they are declared assets.
	Action      *ActionEntry `json:"action,omitempty" yaml:"action,omitempty"`
	OptionsPage string       `json:"options_page,omitempty" yaml:"options_page,omitempty"`

	// Icons maps pixel sizes to asset identifiers.
	Icons map[string]string `json:"icons,omitempty" yaml:"icons,omitempty"`
}

// ActionEntry names the toolbar action surfaces. Opaque to this SDK.
type ActionEntry struct {
	DefaultPopup string            `json:"default_popup,omitempty" yaml:"default_popup,omitempty"`
	DefaultIcon  map[string]string `json:"default_icon,omitempty" yaml:"default_icon,omitempty"`
	DefaultTitle string            `json:"default_title,omitempty" yaml:"default_title,omitempty"`
}

// Grant returns the effective permission grant declared by the descriptor:
// the union of all named capabilities scoped to the host permissions.
func (d *Descriptor) Grant() PermissionGrant {
	return PermissionGrant{
		Capabilities: d.Permissions,
		HostScope:    d.HostPermissions,
	}
}

// RewritePolicies returns the declared rewrite policies, or nil when the
// descriptor wires no declarative rules.
func (d *Descriptor) RewritePolicies() []RequestRewritePolicy {
	if d.DeclarativeNetRequest == nil {
		return nil
	}
	return d.DeclarativeNetRequest.RuleResources
}

// Clone returns a deep copy of the Descriptor. Hosts that swap descriptors
// on update can hand the copy to in-flight evaluations without aliasing.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	clone := *d

	clone.ContentScripts = make([]InjectionRule, len(d.ContentScripts))
	for i, r := range d.ContentScripts {
		clone.ContentScripts[i] = r.Clone()
	}
	clone.Permissions = append([]Capability(nil), d.Permissions...)
	clone.HostPermissions = append([]string(nil), d.HostPermissions...)

	if d.WebAccessibleResources != nil {
		clone.WebAccessibleResources = make([]ResourceExposurePolicy, len(d.WebAccessibleResources))
		for i, p := range d.WebAccessibleResources {
			clone.WebAccessibleResources[i] = ResourceExposurePolicy{
				Resources: append([]string(nil), p.Resources...),
				Matches:   append([]string(nil), p.Matches...),
			}
		}
	}
	if d.DeclarativeNetRequest != nil {
		cfg := RequestRewriteConfig{
			RuleResources: append([]RequestRewritePolicy(nil), d.DeclarativeNetRequest.RuleResources...),
		}
		clone.DeclarativeNetRequest = &cfg
	}
	if d.ContentSecurityPolicy != nil {
		csp := *d.ContentSecurityPolicy
		clone.ContentSecurityPolicy = &csp
	}
	if d.Action != nil {
		action := *d.Action
		action.DefaultIcon = cloneStringMap(d.Action.DefaultIcon)
		clone.Action = &action
	}
	clone.Icons = cloneStringMap(d.Icons)
	return &clone
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
