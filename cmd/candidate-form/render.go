package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/render"
	"github.com/goliatone/go-candidateform/pkg/renderers/tui"
	"github.com/goliatone/go-candidateform/pkg/renderers/vanilla"
)

func newRenderCmd(flags *globalFlags) *cobra.Command {
	var (
		valuesPath   string
		rendererName string
		output       string
		csrfToken    string
		hidden       map[string]string
		showPassword bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the form markup, optionally prefilled from a values file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			logger := flags.logger(cmd.ErrOrStderr())

			controller := form.New(controllerOptions(cfg, logger)...)
			if valuesPath != "" {
				values, err := readValues(valuesPath)
				if err != nil {
					return err
				}
				if err := controller.SetValues(values); err != nil {
					return err
				}
			}
			if showPassword {
				controller.TogglePasswordVisibility()
			}

			registry, err := newRegistry(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			renderer, err := registry.Get(rendererName)
			if err != nil {
				return err
			}

			var extra []render.HiddenField
			if token := strings.TrimSpace(csrfToken); token != "" {
				extra = append(extra, render.CSRFToken("csrf_token", token))
			}
			markup, err := renderer.Render(cmd.Context(), descriptorFor(cfg), render.RenderOptions{
				State:        controller.Snapshot(),
				HiddenFields: render.MergeHiddenFields(hidden, extra...),
				Theme:        themeConfig(cfg.Theme),
			})
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, markup, 0o644); err != nil {
					return fmt.Errorf("render: write %s: %w", output, err)
				}
				logger.Info("form written", "path", output, "renderer", renderer.Name())
				return nil
			}
			_, err = cmd.OutOrStdout().Write(markup)
			return err
		},
	}

	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML file with field values to prefill")
	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "vanilla", "renderer to use (vanilla, tui)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&csrfToken, "csrf-token", "", "emit a csrf_token hidden input")
	cmd.Flags().StringToStringVar(&hidden, "hidden", nil, "extra hidden inputs as name=value")
	cmd.Flags().BoolVar(&showPassword, "show-password", false, "render the password in clear text")
	return cmd
}

func newRegistry(out io.Writer) (*render.Registry, error) {
	registry := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(html); err != nil {
		return nil, err
	}

	text, err := tui.New(tui.WithOutput(out))
	if err != nil {
		return nil, err
	}
	if err := registry.Register(text); err != nil {
		return nil, err
	}
	return registry, nil
}
