package entities

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Timing is the document lifecycle point at which injection happens.
type Timing string

const (
	TimingDocumentStart Timing = "document_start"
	TimingDocumentEnd   Timing = "document_end"
	TimingDocumentIdle  Timing = "document_idle"
)

// FrameScope selects which frames of a matching page receive injection.
type FrameScope string

const (
	FrameScopeTop FrameScope = "top_frame_only"
	FrameScopeAll FrameScope = "all_frames"
)

// InjectionRule declares where and when the content handler is installed.
// Exclusion always wins over inclusion: a URL matching any exclude pattern
// is never injected, regardless of Matches.
type InjectionRule struct {
	Matches        []string         `json:"matches" yaml:"matches" validate:"min=1,dive,required"`
	ExcludeMatches []ExcludePattern `json:"exclude_matches,omitempty" yaml:"exclude_matches,omitempty"`
	JS             []string         `json:"js" yaml:"js" validate:"min=1,dive,required"`
	AllFrames      bool             `json:"all_frames,omitempty" yaml:"all_frames,omitempty"`
	RunAt          Timing           `json:"run_at,omitempty" yaml:"run_at,omitempty" jsonschema:"enum=document_start,enum=document_end,enum=document_idle" validate:"omitempty,oneof=document_start document_end document_idle"`
}

// FrameScope maps the all_frames flag onto the frame scope enum.
func (r InjectionRule) FrameScope() FrameScope {
	if r.AllFrames {
		return FrameScopeAll
	}
	return FrameScopeTop
}

// Timing returns the declared timing, defaulting to document_idle the way
// the host does when run_at is omitted.
func (r InjectionRule) Timing() Timing {
	if r.RunAt == "" {
		return TimingDocumentIdle
	}
	return r.RunAt
}

// Clone returns a deep copy of the rule.
func (r InjectionRule) Clone() InjectionRule {
	clone := r
	clone.Matches = append([]string(nil), r.Matches...)
	clone.ExcludeMatches = append([]ExcludePattern(nil), r.ExcludeMatches...)
	clone.JS = append([]string(nil), r.JS...)
	return clone
}

// ExcludePattern is a URL pattern exempting pages from injection. The
// optional Reason annotation (issue reference, rationale) is informational
// only and never evaluated.
type ExcludePattern struct {
	Pattern string `json:"pattern" yaml:"pattern" validate:"required"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// UnmarshalJSON accepts either a bare pattern string, as shipped in the
// host's manifest format, or an annotated {pattern, reason} object.
func (p *ExcludePattern) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Pattern = s
		p.Reason = ""
		return nil
	}
	type alias ExcludePattern
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("exclude pattern must be a string or an object: %w", err)
	}
	*p = ExcludePattern(a)
	return nil
}

// MarshalJSON emits the bare string form when no annotation is present so
// the shipped manifest stays byte-compatible with the host format.
func (p ExcludePattern) MarshalJSON() ([]byte, error) {
	if p.Reason == "" {
		return json.Marshal(p.Pattern)
	}
	type alias ExcludePattern
	return json.Marshal(alias(p))
}

// UnmarshalYAML mirrors UnmarshalJSON for the authoring format.
func (p *ExcludePattern) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.Reason = ""
		return value.Decode(&p.Pattern)
	}
	type alias ExcludePattern
	var a alias
	if err := value.Decode(&a); err != nil {
		return fmt.Errorf("exclude pattern must be a string or a mapping: %w", err)
	}
	*p = ExcludePattern(a)
	return nil
}

// JSONSchema reflects the dual string/object wire form.
func (ExcludePattern) JSONSchema() *jsonschema.Schema {
	annotated := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"pattern"},
	}
	annotated.Properties = jsonschema.NewProperties()
	annotated.Properties.Set("pattern", &jsonschema.Schema{Type: "string"})
	annotated.Properties.Set("reason", &jsonschema.Schema{Type: "string"})
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			annotated,
		},
	}
}
