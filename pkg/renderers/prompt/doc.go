// Package prompt edits parameters through sequential terminal prompts. The
// survey-backed driver asks for each supported field once, offering the
// current value as the default; unsupported types are announced through
// Info and left untouched. Tests and alternate terminals swap the driver via
// WithPromptDriver.
package prompt
