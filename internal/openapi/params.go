package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-paramedit/pkg/model"
)

const (
	paramIDExtension   = "x-param-id"
	paramTypeExtension = "x-param-type"
)

// Result holds the definitions and defaults extracted from a schema.
type Result struct {
	Params   []model.Param
	Defaults model.Model
	// Skipped lists properties without a usable x-param-id.
	Skipped []string
}

// ParamsFromSchema loads raw as an OpenAPI document and converts the named
// component schema. Parameters are ordered by id.
func ParamsFromSchema(ctx context.Context, raw []byte, schemaName string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if len(raw) == 0 {
		return Result{}, errors.New("openapi: document payload is empty")
	}
	name := strings.TrimSpace(schemaName)
	if name == "" {
		return Result{}, errors.New("openapi: schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return Result{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if doc.Components == nil {
		return Result{}, fmt.Errorf("openapi: schema %q not found", name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return Result{}, fmt.Errorf("openapi: schema %q not found", name)
	}

	return convert(ref.Value)
}

func convert(schema *openapi3.Schema) (Result, error) {
	names := make([]string, 0, len(schema.Properties))
	for prop := range schema.Properties {
		names = append(names, prop)
	}
	sort.Strings(names)

	var result Result
	for _, prop := range names {
		ref := schema.Properties[prop]
		if ref == nil || ref.Value == nil {
			result.Skipped = append(result.Skipped, prop)
			continue
		}
		id, ok := extensionInt(ref.Value.Extensions[paramIDExtension])
		if !ok {
			result.Skipped = append(result.Skipped, prop)
			continue
		}

		label := strings.TrimSpace(ref.Value.Title)
		if label == "" {
			label = prop
		}
		result.Params = append(result.Params, model.Param{
			ID:   id,
			Name: label,
			Type: paramType(ref.Value),
		})
		if value, ok := ref.Value.Default.(string); ok {
			result.Defaults.ParamValues = append(result.Defaults.ParamValues, model.ParamValue{
				ParamID: id,
				Value:   value,
			})
		}
	}

	sort.SliceStable(result.Params, func(i, j int) bool { return result.Params[i].ID < result.Params[j].ID })
	sort.SliceStable(result.Defaults.ParamValues, func(i, j int) bool {
		return result.Defaults.ParamValues[i].ParamID < result.Defaults.ParamValues[j].ParamID
	})

	if err := model.ValidateParams(result.Params); err != nil {
		return Result{}, fmt.Errorf("openapi: %w", err)
	}
	return result, nil
}

func paramType(schema *openapi3.Schema) model.ParamType {
	if override, ok := schema.Extensions[paramTypeExtension].(string); ok && strings.TrimSpace(override) != "" {
		return model.ParamType(strings.TrimSpace(override))
	}
	if schema.Type == nil {
		return model.ParamTypeString
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return model.ParamTypeString
	}
	return model.ParamType(values[0])
}

func extensionInt(value any) (int, bool) {
	switch typed := value.(type) {
	case int:
		return typed, true
	case int64:
		return int(typed), true
	case float64:
		if typed != math.Trunc(typed) {
			return 0, false
		}
		return int(typed), true
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
