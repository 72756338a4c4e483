package ruffle

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton for better performance.
// Creating a new validator on each call is expensive; reusing is recommended.
var validate = validator.New()

// ValidateStruct runs the struct-level validation tags on a descriptor (or
// any entity). It is a cheap pre-check; the document-level validator in
// application/validation remains authoritative for load decisions.
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("descriptor validation failed: %w", err)
	}
	return nil
}
