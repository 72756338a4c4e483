// Package template renders descriptor templates: the authoring form keeps
// placeholders like the package version, substituted once by the build
// step before the descriptor is parsed.
package template

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/TBM13/ruffle/domain/ports"
)

// templateConfig holds configuration for the Renderer.
type templateConfig struct {
	strict bool // Fail on missing keys
}

func defaultTemplateConfig() templateConfig {
	return templateConfig{
		strict: true,
	}
}

// TemplateOption configures a Renderer.
type TemplateOption func(*templateConfig)

// WithStrict enables/disables strict mode for missing keys.
// When enabled (default), rendering fails if a referenced key is missing.
func WithStrict(enabled bool) TemplateOption {
	return func(c *templateConfig) {
		c.strict = enabled
	}
}

// Renderer implements TemplateEngine using standard text/template.
type Renderer struct {
	config templateConfig
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...TemplateOption) ports.TemplateEngine {
	cfg := defaultTemplateConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{config: cfg}
}

// Render processes the raw descriptor bytes with the build variables.
// Templates reference them as {{.build.key}}.
func (r *Renderer) Render(raw []byte, build map[string]any) ([]byte, error) {
	tmpl := template.New("descriptor")

	if r.config.strict {
		tmpl = tmpl.Option("missingkey=error")
	}

	tmpl, err := tmpl.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor template: %w", err)
	}

	var buf bytes.Buffer
	data := map[string]any{
		"build": build,
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute descriptor template: %w", err)
	}

	return buf.Bytes(), nil
}
