// Package schema provides JSON schema generation for the descriptor types,
// for document validation and authoring tools.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/TBM13/ruffle/domain/entities"
)

// GenerateSchema creates a JSON schema from a Go struct. It uses the
// `invopop/jsonschema` library to reflect on the struct and generate a
// standard JSON Schema (Draft 2020-12).
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// GenerateDescriptorSchema creates the JSON schema of the full descriptor.
func GenerateDescriptorSchema() ([]byte, error) {
	return GenerateSchema(&entities.Descriptor{})
}
