// Package html renders a parameter editor as a static HTML form using pongo2
// templates. Every input carries id, name, and data-testid set to the field
// identifier ("param-<id>" by default) so automated tests and submissions can
// address a field by parameter id. Parameters without a registered renderer
// render a visible "unsupported type" block.
//
// ApplySubmission closes the loop: posted form values are decoded per field
// and fed back into the editor as edits.
package html
