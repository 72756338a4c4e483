package ports

import "github.com/TBM13/ruffle/domain/entities"

// DescriptorParser parses raw descriptor bytes into a Descriptor.
type DescriptorParser interface {
	// Parse unmarshals descriptor bytes into a Descriptor struct.
	Parse(data []byte) (*entities.Descriptor, error)
}
