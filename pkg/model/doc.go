// Package model defines the boundary types exchanged between a host and the
// parameter editor: parameter definitions, parameter values, and the Model
// snapshot that wraps them. JSON and YAML tags mirror the wire shape consumed
// by existing callers (`id`, `name`, `type`, `paramValues`, `paramId`,
// `value`) so documents loaded by pkg/source round-trip unchanged.
package model
