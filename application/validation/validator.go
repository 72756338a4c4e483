// Package validation implements document-level descriptor validation: the
// generated JSON schema, the pattern grammar, semver version fields, and
// the uniqueness constraints the schema cannot express.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"

	appschema "github.com/TBM13/ruffle/application/schema"
	"github.com/TBM13/ruffle/domain/entities"
	errs "github.com/TBM13/ruffle/domain/errors"
	"github.com/TBM13/ruffle/domain/ports"
	"github.com/TBM13/ruffle/domain/urlmatch"
)

const schemaResource = "descriptor.schema.json"

// structValidate is a package-level singleton; constructing a validator per
// call is expensive. Field names in reports follow the json tags so they
// line up with the wire form.
var structValidate = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DescriptorValidator implements ports.DescriptorValidator.
type DescriptorValidator struct {
	compileOnce sync.Once
	schema      *jsonschema.Schema
	compileErr  error
}

// NewDescriptorValidator creates a validator. The descriptor JSON schema is
// compiled on first use.
func NewDescriptorValidator() ports.DescriptorValidator {
	return &DescriptorValidator{}
}

func (v *DescriptorValidator) compile() {
	raw, err := appschema.GenerateDescriptorSchema()
	if err != nil {
		v.compileErr = fmt.Errorf("failed to generate descriptor schema: %w", err)
		return
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, strings.NewReader(string(raw))); err != nil {
		v.compileErr = fmt.Errorf("failed to add schema resource: %w", err)
		return
	}
	v.schema, v.compileErr = compiler.Compile(schemaResource)
}

// Validate checks the descriptor's shape, patterns, version fields, and
// uniqueness constraints. Every error identifies the offending field; all
// of them are fatal to extension activation.
func (v *DescriptorValidator) Validate(d *entities.Descriptor) (*entities.ValidationResult, error) {
	v.compileOnce.Do(v.compile)
	if v.compileErr != nil {
		return nil, v.compileErr
	}

	result := &entities.ValidationResult{Valid: true}

	v.validateTags(d, result)
	v.validateShape(d, result)
	v.validateVersions(d, result)
	v.validateInjectionRules(d, result)
	v.validateHostScope(d, result)
	v.validateExposure(d, result)
	v.validateRewritePolicies(d, result)
	v.validateIsolation(d, result)

	return result, nil
}

func (v *DescriptorValidator) validateTags(d *entities.Descriptor, result *entities.ValidationResult) {
	err := structValidate.Struct(d)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		result.Add("", err.Error(), nil)
		return
	}
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Descriptor.")
		e := &errs.SchemaViolationError{
			Field:  field,
			Reason: fmt.Sprintf("violates %q constraint", fe.Tag()),
		}
		result.Add(e.Field, e.Reason, e)
	}
}

func (v *DescriptorValidator) validateShape(d *entities.Descriptor, result *entities.ValidationResult) {
	// Round-trip through JSON so the schema sees the wire form.
	b, err := json.Marshal(d)
	if err != nil {
		result.Add("", fmt.Sprintf("failed to prepare validation object: %v", err), nil)
		return
	}
	var obj any
	if err := json.Unmarshal(b, &obj); err != nil {
		result.Add("", fmt.Sprintf("failed to prepare validation object: %v", err), nil)
		return
	}

	if err := v.schema.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		field := ""
		if errors.As(err, &ve) {
			field = ve.InstanceLocation
		}
		result.Add(field, err.Error(), &errs.SchemaViolationError{Field: field, Reason: err.Error()})
	}

	if d.ManifestVersion != entities.SchemaVersion {
		e := &errs.SchemaViolationError{
			Field:  "manifest_version",
			Reason: fmt.Sprintf("must be %d, got %d", entities.SchemaVersion, d.ManifestVersion),
		}
		result.Add(e.Field, e.Reason, e)
	}
	if d.Name == "" {
		e := &errs.SchemaViolationError{Field: "name", Reason: "required field is empty"}
		result.Add(e.Field, e.Reason, e)
	}
}

func (v *DescriptorValidator) validateVersions(d *entities.Descriptor, result *entities.ValidationResult) {
	if d.Version == "" {
		e := &errs.SchemaViolationError{Field: "version", Reason: "required field is empty"}
		result.Add(e.Field, e.Reason, e)
		return
	}
	if _, err := semver.StrictNewVersion(d.Version); err != nil {
		e := &errs.SchemaViolationError{
			Field:  "version",
			Reason: fmt.Sprintf("%q is not a valid version: %v", d.Version, err),
		}
		result.Add(e.Field, e.Reason, e)
	}
}

func (v *DescriptorValidator) validateInjectionRules(d *entities.Descriptor, result *entities.ValidationResult) {
	for i, rule := range d.ContentScripts {
		prefix := fmt.Sprintf("content_scripts[%d]", i)

		if len(rule.Matches) == 0 {
			e := &errs.SchemaViolationError{Field: prefix + ".matches", Reason: "at least one match pattern is required"}
			result.Add(e.Field, e.Reason, e)
		}
		for j, raw := range rule.Matches {
			v.checkPattern(raw, fmt.Sprintf("%s.matches[%d]", prefix, j), result)
		}
		for j, ex := range rule.ExcludeMatches {
			v.checkPattern(ex.Pattern, fmt.Sprintf("%s.exclude_matches[%d]", prefix, j), result)
		}

		if len(rule.JS) == 0 {
			e := &errs.SchemaViolationError{Field: prefix + ".js", Reason: "at least one script target is required"}
			result.Add(e.Field, e.Reason, e)
		}

		switch rule.RunAt {
		case "", entities.TimingDocumentStart, entities.TimingDocumentEnd, entities.TimingDocumentIdle:
		default:
			e := &errs.SchemaViolationError{
				Field:  prefix + ".run_at",
				Reason: fmt.Sprintf("unknown timing %q", rule.RunAt),
			}
			result.Add(e.Field, e.Reason, e)
		}
	}
}

func (v *DescriptorValidator) validateHostScope(d *entities.Descriptor, result *entities.ValidationResult) {
	for i, raw := range d.HostPermissions {
		v.checkPattern(raw, fmt.Sprintf("host_permissions[%d]", i), result)
	}
}

func (v *DescriptorValidator) validateExposure(d *entities.Descriptor, result *entities.ValidationResult) {
	for i, pol := range d.WebAccessibleResources {
		prefix := fmt.Sprintf("web_accessible_resources[%d]", i)

		if len(pol.Resources) == 0 {
			e := &errs.SchemaViolationError{Field: prefix + ".resources", Reason: "at least one resource glob is required"}
			result.Add(e.Field, e.Reason, e)
		}
		for j, raw := range pol.Resources {
			field := fmt.Sprintf("%s.resources[%d]", prefix, j)
			if _, err := urlmatch.CompileGlob(raw); err != nil {
				result.Add(field, err.Error(), err)
			}
		}

		if len(pol.Matches) == 0 {
			e := &errs.SchemaViolationError{Field: prefix + ".matches", Reason: "at least one match pattern is required"}
			result.Add(e.Field, e.Reason, e)
		}
		for j, raw := range pol.Matches {
			v.checkPattern(raw, fmt.Sprintf("%s.matches[%d]", prefix, j), result)
		}
	}
}

func (v *DescriptorValidator) validateRewritePolicies(d *entities.Descriptor, result *entities.ValidationResult) {
	seen := make(map[string]bool)
	for i, rr := range d.RewritePolicies() {
		prefix := fmt.Sprintf("declarative_net_request.rule_resources[%d]", i)

		if rr.ID == "" {
			e := &errs.SchemaViolationError{Field: prefix + ".id", Reason: "rule set id is required"}
			result.Add(e.Field, e.Reason, e)
			continue
		}
		if seen[rr.ID] {
			e := &errs.SchemaViolationError{
				Field:  prefix + ".id",
				Reason: fmt.Sprintf("duplicate rule set id %q", rr.ID),
			}
			result.Add(e.Field, e.Reason, e)
		}
		seen[rr.ID] = true

		if rr.Path == "" {
			e := &errs.SchemaViolationError{Field: prefix + ".path", Reason: "rule document reference is required"}
			result.Add(e.Field, e.Reason, e)
		}
	}
}

func (v *DescriptorValidator) validateIsolation(d *entities.Descriptor, result *entities.ValidationResult) {
	if d.ContentSecurityPolicy == nil || d.ContentSecurityPolicy.ExtensionPages == "" {
		return
	}
	if _, err := entities.ParseIsolationPolicy(d.ContentSecurityPolicy.ExtensionPages); err != nil {
		e := &errs.SchemaViolationError{
			Field:  "content_security_policy.extension_pages",
			Reason: err.Error(),
		}
		result.Add(e.Field, e.Reason, e)
	}
}

func (v *DescriptorValidator) checkPattern(raw, field string, result *entities.ValidationResult) {
	if _, err := urlmatch.Compile(raw); err != nil {
		result.Add(field, err.Error(), err)
	}
}
