package tui

import (
	"io"
	"log/slog"
	"strings"
)

// DefaultStyle is the glamour style used for review summaries.
const DefaultStyle = "dark"

// Theme captures optional formatting hints the driver can apply when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	PromptPrefix  string
	InfoPrefix    string
	ErrorPrefix   string
	SuccessPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput sets where the default driver prints messages. Styled output is
// detected from this writer unless WithStyled is given.
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		if out != nil {
			r.out = out
		}
	}
}

// WithStyled forces glamour rendering of summaries on or off.
func WithStyled(styled bool) Option {
	return func(r *Renderer) {
		r.styled = &styled
	}
}

// WithStyle selects the glamour style ("dark", "light", "notty", ...).
func WithStyle(style string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(style); trimmed != "" {
			r.style = trimmed
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
