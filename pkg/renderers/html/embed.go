package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	formTemplate        = "templates/form.tmpl"
	stringTemplate      = "templates/string.tmpl"
	unsupportedTemplate = "templates/unsupported.tmpl"
)

// TemplatesFS exposes the embedded template bundle so callers can copy and
// customise it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
