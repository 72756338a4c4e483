// Package errors provides the load-time error types of the descriptor SDK.
// All of them are fatal to extension activation: a malformed descriptor is
// a packaging defect, not a transient condition, so nothing here is retried.
// Every type supports unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/TBM13/ruffle/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

// DetailedError is an interface for error types that can convert themselves
// to a structured ErrorDetail for the host's management surface.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to a structured ErrorDetail,
// recognizing the SDK's typed errors.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// SchemaViolationError reports a required field that is absent, has the
// wrong shape, or violates a uniqueness constraint (duplicate rule set id).
type SchemaViolationError struct {
	Field  string
	Reason string
}

func (e *SchemaViolationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("schema violation at %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("schema violation: %s", e.Reason)
}

// ToErrorDetail implements DetailedError.
func (e *SchemaViolationError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "schema", Code: e.Field}
}

// MalformedPatternError reports a URL pattern or resource glob that fails
// to parse.
type MalformedPatternError struct {
	Pattern string
	Reason  string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern %q: %s", e.Pattern, e.Reason)
}

// ToErrorDetail implements DetailedError.
func (e *MalformedPatternError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "pattern", Code: e.Pattern}
}

// DanglingReferenceError reports a descriptor reference that resolves to
// nothing: a script target, rule document, or UI asset that was never
// declared to the host.
type DanglingReferenceError struct {
	// Kind names what was referenced: "script_bundle", "rule_document",
	// or "asset".
	Kind string

	// Field identifies the referencing descriptor field, including the
	// rule set id for rewrite policies.
	Field string

	// Ref is the unresolvable reference.
	Ref string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference at %s: %s %q is not declared", e.Field, e.Kind, e.Ref)
}

// ToErrorDetail implements DetailedError.
func (e *DanglingReferenceError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "reference", Code: e.Field}
}

// ConfigError reports an invalid loader or evaluator configuration, as
// opposed to an invalid descriptor.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}
