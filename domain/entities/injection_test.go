package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/TBM13/ruffle/domain/entities"
)

func TestExcludePattern_UnmarshalJSON(t *testing.T) {
	t.Run("bare string", func(t *testing.T) {
		var p entities.ExcludePattern
		require.NoError(t, json.Unmarshal([]byte(`"https://example.com/*"`), &p))
		assert.Equal(t, "https://example.com/*", p.Pattern)
		assert.Empty(t, p.Reason)
	})

	t.Run("annotated object", func(t *testing.T) {
		var p entities.ExcludePattern
		require.NoError(t, json.Unmarshal([]byte(`{"pattern":"https://example.com/*","reason":"broken embed, issue 4121"}`), &p))
		assert.Equal(t, "https://example.com/*", p.Pattern)
		assert.Equal(t, "broken embed, issue 4121", p.Reason)
	})

	t.Run("invalid shape", func(t *testing.T) {
		var p entities.ExcludePattern
		assert.Error(t, json.Unmarshal([]byte(`42`), &p))
	})
}

func TestExcludePattern_MarshalJSON(t *testing.T) {
	// Without an annotation the shipped form stays a bare string.
	b, err := json.Marshal(entities.ExcludePattern{Pattern: "https://example.com/*"})
	require.NoError(t, err)
	assert.JSONEq(t, `"https://example.com/*"`, string(b))

	b, err = json.Marshal(entities.ExcludePattern{Pattern: "https://example.com/*", Reason: "issue 4121"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pattern":"https://example.com/*","reason":"issue 4121"}`, string(b))
}

func TestExcludePattern_UnmarshalYAML(t *testing.T) {
	var rule entities.InjectionRule
	doc := `
matches:
  - "<all_urls>"
exclude_matches:
  - "https://plain.example/*"
  - pattern: "https://annotated.example/*"
    reason: "host ships its own player"
js:
  - dist/content.js
run_at: document_start
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &rule))
	require.Len(t, rule.ExcludeMatches, 2)
	assert.Equal(t, "https://plain.example/*", rule.ExcludeMatches[0].Pattern)
	assert.Empty(t, rule.ExcludeMatches[0].Reason)
	assert.Equal(t, "https://annotated.example/*", rule.ExcludeMatches[1].Pattern)
	assert.Equal(t, "host ships its own player", rule.ExcludeMatches[1].Reason)
}

func TestInjectionRule_FrameScope(t *testing.T) {
	assert.Equal(t, entities.FrameScopeAll, entities.InjectionRule{AllFrames: true}.FrameScope())
	assert.Equal(t, entities.FrameScopeTop, entities.InjectionRule{}.FrameScope())
}

func TestInjectionRule_Timing(t *testing.T) {
	assert.Equal(t, entities.TimingDocumentIdle, entities.InjectionRule{}.Timing())
	assert.Equal(t, entities.TimingDocumentStart, entities.InjectionRule{RunAt: entities.TimingDocumentStart}.Timing())
}
