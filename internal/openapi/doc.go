// Package openapi derives parameter definitions from an OpenAPI 3 component
// schema using kin-openapi. Every property that carries an integer
// `x-param-id` extension becomes a parameter; `title` (or the property name)
// is the display name, `x-param-type` overrides the schema type, and string
// `default` values seed the initial model.
package openapi
