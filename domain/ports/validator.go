package ports

import "github.com/TBM13/ruffle/domain/entities"

// DescriptorValidator validates a parsed descriptor before any policy in
// it is applied.
type DescriptorValidator interface {
	// Validate checks the descriptor's shape, patterns, and uniqueness
	// constraints. Reference resolution is the loader's job.
	Validate(d *entities.Descriptor) (*entities.ValidationResult, error)
}
