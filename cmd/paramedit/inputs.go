package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-paramedit/internal/openapi"
	"github.com/goliatone/go-paramedit/pkg/model"
	"github.com/goliatone/go-paramedit/pkg/source"
)

// inputFlags are shared by commands that mount an editor.
type inputFlags struct {
	params  string
	openapi string
	schema  string
	model   string
	prefix  string
	output  string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.params, "params", "", "definitions document (JSON or YAML)")
	cmd.Flags().StringVar(&f.openapi, "openapi", "", "OpenAPI document to read definitions from")
	cmd.Flags().StringVar(&f.schema, "schema", "", "component schema name used with --openapi")
	cmd.Flags().StringVar(&f.model, "model", "", "model document overriding the initial values")
	cmd.Flags().StringVar(&f.prefix, "prefix", "param", "field identifier prefix")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (stdout if empty)")
}

// load resolves definitions and the initial model from the configured files.
func (f *inputFlags) load(ctx context.Context) ([]model.Param, model.Model, error) {
	var (
		params  []model.Param
		initial model.Model
	)

	switch {
	case f.params != "" && f.openapi != "":
		return nil, model.Model{}, errors.New("use either --params or --openapi, not both")
	case f.params != "":
		doc, err := source.LoadFile(f.params)
		if err != nil {
			return nil, model.Model{}, err
		}
		params, initial = doc.Params, doc.Model
	case f.openapi != "":
		raw, err := os.ReadFile(f.openapi)
		if err != nil {
			return nil, model.Model{}, fmt.Errorf("read %s: %w", f.openapi, err)
		}
		result, err := openapi.ParamsFromSchema(ctx, raw, f.schema)
		if err != nil {
			return nil, model.Model{}, err
		}
		if len(result.Skipped) > 0 {
			logger.Info("skipped schema properties without x-param-id", zap.Strings("properties", result.Skipped))
		}
		params, initial = result.Params, result.Defaults
	default:
		return nil, model.Model{}, errors.New("one of --params or --openapi is required")
	}

	if f.model != "" {
		m, err := source.LoadModelFile(f.model)
		if err != nil {
			return nil, model.Model{}, err
		}
		initial = m
	}

	logger.Debug("inputs loaded", zap.Int("params", len(params)), zap.Int("values", len(initial.ParamValues)))
	return params, initial, nil
}

// writeOutput sends payload to --output or the command's stdout.
func (f *inputFlags) writeOutput(cmd *cobra.Command, write func(io.Writer) error) error {
	if f.output == "" {
		return write(cmd.OutOrStdout())
	}
	file, err := os.Create(f.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.output, err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Written to %s\n", f.output)
	return nil
}
