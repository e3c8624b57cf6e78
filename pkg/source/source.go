package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramedit/pkg/model"
)

// ErrUnsupportedFormat is returned for output formats other than JSON/YAML.
var ErrUnsupportedFormat = errors.New("source: unsupported format")

// Format selects the serialisation used by WriteModel.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document bundles definitions with an optional initial model.
type Document struct {
	Params []model.Param `json:"params" yaml:"params"`
	Model  model.Model   `json:"model" yaml:"model"`
}

// Parse decodes a definitions document, trying JSON before YAML.
func Parse(data []byte, source string) (Document, error) {
	var doc Document
	if err := decode(data, source, &doc); err != nil {
		return Document{}, err
	}
	if err := model.ValidateParams(doc.Params); err != nil {
		return Document{}, fmt.Errorf("source: %s: %w", source, err)
	}
	return doc, nil
}

// ParseModel decodes a model document.
func ParseModel(data []byte, source string) (model.Model, error) {
	var m model.Model
	if err := decode(data, source, &m); err != nil {
		return model.Model{}, err
	}
	return m, nil
}

// LoadFile reads a definitions document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("source: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a definitions document from fsys.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("source: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("source: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// LoadModelFile reads a model document from disk.
func LoadModelFile(path string) (model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Model{}, fmt.Errorf("source: read %s: %w", path, err)
	}
	return ParseModel(data, path)
}

// WriteModel serialises m to w.
func WriteModel(w io.Writer, m model.Model, format Format) error {
	if m.ParamValues == nil {
		m.ParamValues = []model.ParamValue{}
	}
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("source: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("source: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ParseFormat validates a user-supplied format name. An empty name yields an
// empty Format so callers can infer one later.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath infers the output format from a file extension, defaulting
// to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func decode(data []byte, source string, target any) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("source: file %s is empty", source)
	}
	if err := json.Unmarshal(data, target); err == nil {
		return nil
	}
	if err := yaml.Unmarshal(data, target); err == nil {
		return nil
	}
	return fmt.Errorf("source: parse %s: invalid JSON or YAML", source)
}
