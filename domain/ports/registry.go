package ports

// AssetRegistry records the collaborators a descriptor may reference: the
// script bundles available for injection, the declarative rule documents,
// and the bundled assets (UI pages, icons, exposable resources). The SDK
// never reads their contents; it only resolves names against the registry.
type AssetRegistry interface {
	// RegisterScript declares a script bundle by logical name.
	RegisterScript(name string) error

	// RegisterRuleDocument declares an externally maintained rule document.
	RegisterRuleDocument(name string) error

	// RegisterAsset declares a bundled asset (page, icon, resource).
	RegisterAsset(name string) error

	HasScript(name string) bool
	HasRuleDocument(name string) bool
	HasAsset(name string) bool

	// List returns the names of everything declared, for diagnostics.
	List() []string
}
