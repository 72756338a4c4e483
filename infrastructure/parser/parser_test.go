package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TBM13/ruffle/domain/entities"
	"github.com/TBM13/ruffle/infrastructure/parser"
)

const jsonManifest = `{
  "manifest_version": 3,
  "name": "Legacy Content Player",
  "version": "1.4.0",
  "content_scripts": [
    {
      "matches": ["<all_urls>"],
      "exclude_matches": ["https://sso.example.com/*"],
      "js": ["dist/content.js"],
      "all_frames": true,
      "run_at": "document_start"
    }
  ],
  "permissions": ["storage", "scripting"],
  "host_permissions": ["<all_urls>"],
  "unknown_future_key": {"ignored": true}
}`

func TestJSONDescriptorParser_Parse(t *testing.T) {
	p := parser.NewJSONDescriptorParser()

	d, err := p.Parse([]byte(jsonManifest))
	require.NoError(t, err)

	assert.Equal(t, entities.SchemaVersion, d.ManifestVersion)
	assert.Equal(t, "Legacy Content Player", d.Name)
	require.Len(t, d.ContentScripts, 1)

	rule := d.ContentScripts[0]
	assert.Equal(t, []string{"<all_urls>"}, rule.Matches)
	require.Len(t, rule.ExcludeMatches, 1)
	assert.Equal(t, "https://sso.example.com/*", rule.ExcludeMatches[0].Pattern)
	assert.True(t, rule.AllFrames)
	assert.Equal(t, entities.TimingDocumentStart, rule.RunAt)

	assert.Contains(t, d.Permissions, entities.CapabilityStorage)
}

func TestJSONDescriptorParser_ParseError(t *testing.T) {
	p := parser.NewJSONDescriptorParser()

	_, err := p.Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestYamlDescriptorParser_Parse(t *testing.T) {
	p := parser.NewYamlDescriptorParser()

	doc := `
manifest_version: 3
name: Legacy Content Player
version: 1.4.0
content_scripts:
  - matches: ["<all_urls>"]
    exclude_matches:
      - pattern: "https://sso.example.com/*"
        reason: "login flow breaks under injection"
    js: [dist/content.js]
    all_frames: true
    run_at: document_start
host_permissions: ["<all_urls>"]
`
	d, err := p.Parse([]byte(doc))
	require.NoError(t, err)

	require.Len(t, d.ContentScripts, 1)
	assert.Equal(t, "login flow breaks under injection", d.ContentScripts[0].ExcludeMatches[0].Reason)
}

func TestYamlDescriptorParser_ParseError(t *testing.T) {
	p := parser.NewYamlDescriptorParser()

	_, err := p.Parse([]byte("\t not yaml"))
	assert.Error(t, err)
}
