package main

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-candidateform/internal/config"
	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/renderers/tui"
)

// app carries the process dependencies commands use. Tests swap the prompt
// driver and terminal check.
type app struct {
	driver     tui.PromptDriver
	httpClient *http.Client
	isTerminal func() bool
}

func defaultApp() *app {
	return &app{
		httpClient: http.DefaultClient,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	noPhone    bool
}

func newRootCmd(a *app) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "candidate-form",
		Short:         "Collect and submit a candidate application",
		Long:          `Fill in the candidate application interactively, render it as HTML, or validate a values file against the same rules.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&flags.noPhone, "no-phone", false, "start with the phone number excluded")

	cmd.AddCommand(
		newFillCmd(a, flags),
		newRenderCmd(flags),
		newValidateCmd(flags),
		newContractCmd(),
	)
	return cmd
}

func (f *globalFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (f *globalFlags) loadConfig() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.noPhone {
		cfg.Phone.Visible = false
	}
	return cfg, nil
}

func descriptorFor(cfg config.Config) model.FormModel {
	return model.CandidateForm(
		model.WithEndpoint(cfg.Endpoint),
		model.WithLanguages(cfg.LanguageOptions()),
		model.WithDescription(cfg.Description),
	)
}

func controllerOptions(cfg config.Config, logger *slog.Logger) []form.Option {
	return []form.Option{
		form.WithLanguages(model.OptionValues(cfg.LanguageOptions())),
		form.WithPhoneVisible(cfg.Phone.Visible),
		form.WithLogger(logger),
	}
}

func themeConfig(cfg config.Theme) *theme.RendererConfig {
	if cfg.Name == "" && cfg.Variant == "" && len(cfg.CSSVars) == 0 && len(cfg.Tokens) == 0 && cfg.AssetBase == "" {
		return nil
	}
	out := &theme.RendererConfig{
		Theme:   cfg.Name,
		Variant: cfg.Variant,
		Tokens:  cfg.Tokens,
		CSSVars: cfg.CSSVars,
	}
	if base := strings.TrimSpace(cfg.AssetBase); base != "" {
		out.AssetURL = func(key string) string {
			if key == "" {
				return ""
			}
			if strings.Contains(base, "://") {
				return strings.TrimRight(base, "/") + "/" + key
			}
			return path.Join(base, key)
		}
	}
	return out
}

func timeoutOr(flag, fallback time.Duration) time.Duration {
	if flag > 0 {
		return flag
	}
	return fallback
}
