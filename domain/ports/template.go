package ports

// TemplateEngine substitutes build-time placeholders (package version and
// the like) in a descriptor template before parsing.
type TemplateEngine interface {
	// Render processes the raw descriptor bytes with the build variables.
	Render(raw []byte, build map[string]any) ([]byte, error)
}
