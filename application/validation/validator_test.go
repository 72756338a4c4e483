package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TBM13/ruffle/application/validation"
	"github.com/TBM13/ruffle/domain/entities"
	errs "github.com/TBM13/ruffle/domain/errors"
)

func validDescriptor() *entities.Descriptor {
	return &entities.Descriptor{
		ManifestVersion: entities.SchemaVersion,
		Name:            "Legacy Content Player",
		ShortName:       "Player",
		Description:     "Puts legacy interactive content back on the web.",
		Version:         "1.4.0",
		DefaultLocale:   "en",
		ContentScripts: []entities.InjectionRule{
			{
				Matches: []string{"<all_urls>"},
				ExcludeMatches: []entities.ExcludePattern{
					{Pattern: "https://sso.example.com/*", Reason: "login flow breaks under injection"},
				},
				JS:        []string{"dist/content.js"},
				AllFrames: true,
				RunAt:     entities.TimingDocumentStart,
			},
		},
		Permissions: []entities.Capability{
			entities.CapabilityStorage,
			entities.CapabilityScripting,
			entities.CapabilityDeclarativeNetRequest,
		},
		HostPermissions: []string{"<all_urls>"},
		WebAccessibleResources: []entities.ResourceExposurePolicy{
			{Resources: []string{"*"}, Matches: []string{"<all_urls>"}},
		},
		DeclarativeNetRequest: &entities.RequestRewriteConfig{
			RuleResources: []entities.RequestRewritePolicy{
				{ID: "legacy_rules", Enabled: true, Path: "rules/legacy_rules.json"},
			},
		},
		ContentSecurityPolicy: &entities.IsolationConfig{
			ExtensionPages: "script-src 'self' 'wasm-unsafe-eval'; object-src 'none'",
		},
	}
}

func TestValidate_ValidDescriptor(t *testing.T) {
	v := validation.NewDescriptorValidator()

	result, err := v.Validate(validDescriptor())
	require.NoError(t, err)
	assert.True(t, result.Valid, "unexpected errors: %+v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidate_MalformedPattern(t *testing.T) {
	v := validation.NewDescriptorValidator()

	d := validDescriptor()
	d.ContentScripts[0].Matches = []string{"example.com/*"}

	result, err := v.Validate(d)
	require.NoError(t, err)
	require.False(t, result.Valid)

	found := false
	for _, ve := range result.Errors {
		var mpe *errs.MalformedPatternError
		if errors.As(ve.Err, &mpe) {
			found = true
			assert.Equal(t, "content_scripts[0].matches[0]", ve.Field)
		}
	}
	assert.True(t, found, "expected a MalformedPatternError: %+v", result.Errors)
}

func TestValidate_MalformedExcludePattern(t *testing.T) {
	v := validation.NewDescriptorValidator()

	d := validDescriptor()
	d.ContentScripts[0].ExcludeMatches = []entities.ExcludePattern{{Pattern: "no separator"}}

	result, err := v.Validate(d)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.Equal(t, "content_scripts[0].exclude_matches[0]", result.Errors[0].Field)
}

func TestValidate_DuplicateRuleSetID(t *testing.T) {
	v := validation.NewDescriptorValidator()

	d := validDescriptor()
	d.DeclarativeNetRequest.RuleResources = []entities.RequestRewritePolicy{
		{ID: "dup", Enabled: true, Path: "rules/a.json"},
		{ID: "dup", Enabled: false, Path: "rules/b.json"},
	}

	result, err := v.Validate(d)
	require.NoError(t, err)
	require.False(t, result.Valid)

	found := false
	for _, ve := range result.Errors {
		var sve *errs.SchemaViolationError
		if errors.As(ve.Err, &sve) && sve.Field == "declarative_net_request.rule_resources[1].id" {
			found = true
			assert.Contains(t, sve.Reason, `"dup"`)
		}
	}
	assert.True(t, found, "expected a duplicate-id SchemaViolationError: %+v", result.Errors)
}

func TestValidate_VersionMustBeSemver(t *testing.T) {
	v := validation.NewDescriptorValidator()

	tests := []struct {
		name    string
		version string
		wantOK  bool
	}{
		{"three part", "1.4.0", true},
		{"prerelease", "2.0.0-beta.1", true},
		{"two part", "1.4", false},
		{"empty", "", false},
		{"garbage", "latest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescriptor()
			d.Version = tt.version

			result, err := v.Validate(d)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, result.Valid, "errors: %+v", result.Errors)
		})
	}
}

func TestValidate_UnknownTiming(t *testing.T) {
	v := validation.NewDescriptorValidator()

	d := validDescriptor()
	d.ContentScripts[0].RunAt = "document_sometime"

	result, err := v.Validate(d)
	require.NoError(t, err)
	require.False(t, result.Valid)

	found := false
	for _, ve := range result.Errors {
		if ve.Field == "content_scripts[0].run_at" {
			found = true
		}
	}
	assert.True(t, found, "expected a run_at error: %+v", result.Errors)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	v := validation.NewDescriptorValidator()

	d := validDescriptor()
	d.Name = ""
	d.ManifestVersion = 2

	result, err := v.Validate(d)
	require.NoError(t, err)
	require.False(t, result.Valid)

	fields := make(map[string]bool)
	for _, ve := range result.Errors {
		fields[ve.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["manifest_version"])
}

func TestValidate_BadIsolationPolicy(t *testing.T) {
	v := validation.NewDescriptorValidator()

	d := validDescriptor()
	d.ContentSecurityPolicy.ExtensionPages = "script-src 'self'; made-up-src 'none'"

	result, err := v.Validate(d)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.Equal(t, "content_security_policy.extension_pages", result.Errors[0].Field)
}

func TestValidate_BadResourceGlob(t *testing.T) {
	v := validation.NewDescriptorValidator()

	d := validDescriptor()
	d.WebAccessibleResources[0].Resources = []string{""}

	result, err := v.Validate(d)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.Equal(t, "web_accessible_resources[0].resources[0]", result.Errors[0].Field)
}
