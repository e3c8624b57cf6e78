package main

import (
	"fmt"
	"io"
	"net/url"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-paramedit/pkg/editor"
	"github.com/goliatone/go-paramedit/pkg/model"
	"github.com/goliatone/go-paramedit/pkg/renderers/html"
	"github.com/goliatone/go-paramedit/pkg/renderers/prompt"
	"github.com/goliatone/go-paramedit/pkg/renderers/tui"
	"github.com/goliatone/go-paramedit/pkg/source"
)

func newEditCmd() *cobra.Command {
	var (
		inputs  inputFlags
		mode    string
		format  string
		showIDs bool
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit parameter values interactively and print the resulting model",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch mode {
			case "tui", "", "prompt":
			default:
				return fmt.Errorf("unknown mode %q (want tui or prompt)", mode)
			}
			outFormat, err := source.ParseFormat(format)
			if err != nil {
				return err
			}
			if outFormat == "" && inputs.output != "" {
				outFormat = source.FormatFromPath(inputs.output)
			}

			params, initial, err := inputs.load(ctx)
			if err != nil {
				return err
			}
			ed, err := editor.New(params, initial,
				editor.WithFieldIDPrefix(inputs.prefix),
				editor.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			var result model.Model
			if mode == "prompt" {
				result, err = prompt.New(
					prompt.WithPromptDriver(prompt.NewSurveyDriver(cmd.ErrOrStderr())),
					prompt.WithLogger(logger),
				).Run(ctx, ed)
			} else {
				result, err = tui.Run(ctx, ed, []tui.Option{
					tui.WithTitle("Parameters"),
					tui.WithShowFieldIDs(showIDs),
					tui.WithLogger(logger),
				}, programOptions(cmd)...)
			}
			if err != nil {
				return err
			}

			return inputs.writeOutput(cmd, func(w io.Writer) error {
				return source.WriteModel(w, result, outFormat)
			})
		},
	}

	inputs.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", "tui", "editing frontend (tui or prompt)")
	cmd.Flags().StringVar(&format, "format", "", "output format (json or yaml); inferred from --output when empty")
	cmd.Flags().BoolVar(&showIDs, "show-ids", false, "show field identifiers next to labels")
	return cmd
}

// programOptions draws the TUI on stderr so stdout carries only the saved
// model. Input is overridden only when the command reads from something
// other than the process stdin.
func programOptions(cmd *cobra.Command) []tea.ProgramOption {
	options := []tea.ProgramOption{tea.WithOutput(cmd.ErrOrStderr())}
	if in := cmd.InOrStdin(); in != io.Reader(os.Stdin) {
		options = append(options, tea.WithInput(in))
	}
	return options
}

func newRenderCmd() *cobra.Command {
	var (
		inputs inputFlags
		values string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the parameter form as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			params, initial, err := inputs.load(ctx)
			if err != nil {
				return err
			}
			ed, err := editor.New(params, initial,
				editor.WithFieldIDPrefix(inputs.prefix),
				editor.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			renderer, err := html.New(html.WithLogger(logger))
			if err != nil {
				return err
			}
			if values != "" {
				form, err := url.ParseQuery(values)
				if err != nil {
					return fmt.Errorf("parse --values: %w", err)
				}
				if err := renderer.ApplySubmission(ed, form); err != nil {
					return err
				}
			}

			out, err := renderer.Render(ctx, ed)
			if err != nil {
				return err
			}
			return inputs.writeOutput(cmd, func(w io.Writer) error {
				_, err := w.Write(out)
				return err
			})
		},
	}

	inputs.register(cmd)
	cmd.Flags().StringVar(&values, "values", "", "URL-encoded field values applied before rendering (e.g. param-2=Red)")
	return cmd
}
