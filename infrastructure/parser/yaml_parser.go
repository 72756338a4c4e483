package parser

import (
	"github.com/TBM13/ruffle/domain/entities"
	"github.com/TBM13/ruffle/domain/ports"
	"gopkg.in/yaml.v3"
)

// YamlDescriptorParser implements DescriptorParser for the YAML authoring
// form, from which the shipping JSON is generated.
type YamlDescriptorParser struct{}

// NewYamlDescriptorParser creates a new YamlDescriptorParser.
func NewYamlDescriptorParser() ports.DescriptorParser {
	return &YamlDescriptorParser{}
}

// Parse unmarshals YAML bytes into a Descriptor struct.
func (p *YamlDescriptorParser) Parse(data []byte) (*entities.Descriptor, error) {
	var d entities.Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
