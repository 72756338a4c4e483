// Package parser provides descriptor parsers for the shipping JSON form
// and the YAML authoring form.
package parser

import (
	"encoding/json"

	"github.com/TBM13/ruffle/domain/entities"
	"github.com/TBM13/ruffle/domain/ports"
)

// JSONDescriptorParser implements DescriptorParser for the shipping format.
// Unknown keys are ignored, matching host behavior.
type JSONDescriptorParser struct{}

// NewJSONDescriptorParser creates a new JSONDescriptorParser.
func NewJSONDescriptorParser() ports.DescriptorParser {
	return &JSONDescriptorParser{}
}

// Parse unmarshals JSON bytes into a Descriptor struct.
func (p *JSONDescriptorParser) Parse(data []byte) (*entities.Descriptor, error) {
	var d entities.Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
