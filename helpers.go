package ruffle

import (
	"fmt"

	"github.com/TBM13/ruffle/domain/policy"
	"github.com/TBM13/ruffle/domain/ports"
	"github.com/TBM13/ruffle/host"

	errs "github.com/TBM13/ruffle/domain/errors"
)

// LoadDescriptor runs the full load pipeline over raw descriptor bytes.
// It is a convenience wrapper over host.NewLoader for hosts that do not
// need to customize the pipeline.
func LoadDescriptor(raw []byte, opts ...host.LoaderOption) (*Descriptor, error) {
	return host.NewLoader(opts...).Load(raw, nil)
}

// NewEvaluator creates the policy evaluator for a loaded descriptor.
func NewEvaluator(d *Descriptor, opts ...policy.EvaluatorOption) ports.Evaluator {
	return policy.NewEvaluator(d, opts...)
}

// GetString safely extracts a string value from BuildVars.
// Returns the value and true if found and is a string, otherwise returns
// empty string and false.
func GetString(build BuildVars, key string) (string, bool) {
	v, ok := build[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetStringDefault extracts a string value from BuildVars with a default.
func GetStringDefault(build BuildVars, key, defaultValue string) string {
	s, ok := GetString(build, key)
	if !ok {
		return defaultValue
	}
	return s
}

// MustGetString extracts a string value from BuildVars or returns an
// error. Use this when the build variable is required.
func MustGetString(build BuildVars, key string) (string, error) {
	s, ok := GetString(build, key)
	if !ok {
		return "", &errs.ConfigError{
			Field: key,
			Err:   fmt.Errorf("required build variable '%s' is missing or not a string", key),
		}
	}
	return s, nil
}
