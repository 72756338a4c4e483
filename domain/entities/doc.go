// Package entities provides the core descriptor entities.
// These are the declarative policy types the host browser consumes at load
// time; evaluators and loaders in other packages operate on them but never
// mutate them after construction.
package entities
