// Package host orchestrates the descriptor load pipeline: render the
// template, parse, validate, resolve references against the asset
// registry, and wire the declarative rewrite rules. Every failure aborts
// the load; there is no partial or degraded mode.
package host

import (
	"fmt"

	"github.com/TBM13/ruffle/application/validation"
	"github.com/TBM13/ruffle/domain/entities"
	errs "github.com/TBM13/ruffle/domain/errors"
	"github.com/TBM13/ruffle/domain/ports"
	"github.com/TBM13/ruffle/infrastructure/parser"
)

// loaderConfig holds configuration for the Loader.
type loaderConfig struct {
	registry       ports.AssetRegistry
	templateEngine ports.TemplateEngine
	parser         ports.DescriptorParser
	validator      ports.DescriptorValidator
}

func defaultLoaderConfig() loaderConfig {
	return loaderConfig{
		parser:    parser.NewJSONDescriptorParser(),
		validator: validation.NewDescriptorValidator(),
	}
}

// Loader orchestrates the descriptor loading pipeline.
type Loader struct {
	config loaderConfig
}

// LoaderOption configures the Loader.
type LoaderOption func(*loaderConfig)

// WithRegistry configures the loader with an asset registry. Without one,
// reference resolution and rule wiring are skipped and the load is
// validation-only.
func WithRegistry(r ports.AssetRegistry) LoaderOption {
	return func(c *loaderConfig) {
		c.registry = r
	}
}

// WithParser sets a custom descriptor parser.
func WithParser(p ports.DescriptorParser) LoaderOption {
	return func(c *loaderConfig) {
		c.parser = p
	}
}

// WithValidator sets a custom descriptor validator.
func WithValidator(v ports.DescriptorValidator) LoaderOption {
	return func(c *loaderConfig) {
		c.validator = v
	}
}

// WithTemplateEngine sets a template engine for build-placeholder
// substitution before parsing.
func WithTemplateEngine(t ports.TemplateEngine) LoaderOption {
	return func(c *loaderConfig) {
		c.templateEngine = t
	}
}

// NewLoader creates a new Loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{config: cfg}
}

// Load runs the full pipeline and returns the frozen descriptor. The
// returned error is one of the typed load errors (SchemaViolationError,
// MalformedPatternError, DanglingReferenceError) or a parse failure; any
// of them means the extension must not activate.
func (l *Loader) Load(raw []byte, build map[string]any) (*entities.Descriptor, error) {
	data := raw
	if l.config.templateEngine != nil {
		var err error
		data, err = l.config.templateEngine.Render(raw, build)
		if err != nil {
			return nil, fmt.Errorf("failed to render descriptor: %w", err)
		}
	}

	d, err := l.config.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}

	result, err := l.config.validator.Validate(d)
	if err != nil {
		return nil, fmt.Errorf("failed to validate descriptor: %w", err)
	}
	if !result.Valid {
		return nil, loadError(result)
	}

	if l.config.registry != nil {
		if err := l.resolveReferences(d); err != nil {
			return nil, err
		}
		if _, err := WireRules(d, l.config.registry); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// resolveReferences checks that every script target and UI asset the
// descriptor names was declared to the registry.
func (l *Loader) resolveReferences(d *entities.Descriptor) error {
	reg := l.config.registry

	for i, rule := range d.ContentScripts {
		for j, target := range rule.JS {
			if !reg.HasScript(target) {
				return &errs.DanglingReferenceError{
					Kind:  "script_bundle",
					Field: fmt.Sprintf("content_scripts[%d].js[%d]", i, j),
					Ref:   target,
				}
			}
		}
	}

	for size, asset := range d.Icons {
		if !reg.HasAsset(asset) {
			return &errs.DanglingReferenceError{
				Kind:  "asset",
				Field: "icons[" + size + "]",
				Ref:   asset,
			}
		}
	}
	if d.Action != nil && d.Action.DefaultPopup != "" && !reg.HasAsset(d.Action.DefaultPopup) {
		return &errs.DanglingReferenceError{
			Kind:  "asset",
			Field: "action.default_popup",
			Ref:   d.Action.DefaultPopup,
		}
	}
	if d.OptionsPage != "" && !reg.HasAsset(d.OptionsPage) {
		return &errs.DanglingReferenceError{
			Kind:  "asset",
			Field: "options_page",
			Ref:   d.OptionsPage,
		}
	}

	return nil
}

// loadError converts an invalid validation result into the typed error of
// its first finding, preserving the field-identifying error value the host
// surfaces in its management UI.
func loadError(result *entities.ValidationResult) error {
	for _, ve := range result.Errors {
		if ve.Err != nil {
			return ve.Err
		}
	}
	if len(result.Errors) > 0 {
		first := result.Errors[0]
		return &errs.SchemaViolationError{Field: first.Field, Reason: first.Message}
	}
	return &errs.SchemaViolationError{Reason: "descriptor is invalid"}
}
