package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-candidateform/pkg/contract"
	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/renderers/tui"
	"github.com/goliatone/go-candidateform/pkg/submit"
	"github.com/goliatone/go-candidateform/pkg/validation"
)

func newFillCmd(a *app, flags *globalFlags) *cobra.Command {
	var (
		endpoint     string
		timeout      time.Duration
		showPassword bool
		style        string
		metricsFile  string
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill in and submit the application interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.driver == nil && !a.isTerminal() {
				return errors.New("fill: an interactive terminal is required")
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
				cfg.Endpoint = trimmed
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger := flags.logger(cmd.ErrOrStderr())
			ctx := cmd.Context()

			api, err := contract.Load(ctx)
			if err != nil {
				return err
			}
			if !api.IsPost() {
				return fmt.Errorf("fill: contract operation %s is not a POST", api.Operation().ID)
			}
			if cfg.Endpoint != api.Endpoint() {
				logger.Debug("endpoint differs from contract", "endpoint", cfg.Endpoint, "contract", api.Endpoint())
			}

			registry := prometheus.NewRegistry()
			client := submit.New(
				submit.WithEndpoint(cfg.Endpoint),
				submit.WithHTTPClient(a.httpClient),
				submit.WithTimeout(timeoutOr(timeout, cfg.Timeout)),
				submit.WithLogger(logger),
				submit.WithRegisterer(registry),
			)

			sessionOpts := []tui.Option{
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithLogger(logger),
				tui.WithStyle(style),
				tui.WithTheme(tui.Theme{ErrorPrefix: "✗ ", SuccessPrefix: "✓ "}),
			}
			if a.driver != nil {
				sessionOpts = append(sessionOpts, tui.WithPromptDriver(a.driver))
			}
			session, err := tui.New(sessionOpts...)
			if err != nil {
				return err
			}

			checker := validation.NewValidator()
			submitter := form.SubmitterFunc(func(ctx context.Context, payload model.Payload) error {
				if err := checker.Struct(payload); err != nil {
					return fmt.Errorf("fill: payload rejected: %w", err)
				}
				if err := api.ValidatePayload(payload); err != nil {
					return fmt.Errorf("fill: payload rejected: %w", err)
				}
				return client.Submit(ctx, payload)
			})

			options := append(controllerOptions(cfg, logger),
				form.WithSubmitter(submitter),
				form.WithNotifier(session),
			)
			controller := form.New(options...)
			if showPassword {
				controller.TogglePasswordVisibility()
			}

			runErr := session.Run(ctx, descriptorFor(cfg), controller)

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, registry); err != nil {
					logger.Warn("write metrics", "path", metricsFile, "error", err)
				}
			}

			if errors.Is(runErr, tui.ErrCanceled) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Application not submitted.")
				return nil
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "submission endpoint (overrides config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "request timeout (overrides config)")
	cmd.Flags().BoolVar(&showPassword, "show-password", false, "echo the password while typing and in the review")
	cmd.Flags().StringVar(&style, "style", tui.DefaultStyle, "glamour style for the review summary")
	cmd.Flags().StringVar(&metricsFile, "metrics-textfile", "", "write submission metrics in Prometheus text format to this file")
	return cmd
}
