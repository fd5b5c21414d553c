// Package tui drives the candidate form from a terminal. Prompts run through
// a PromptDriver (survey by default) and every answer flows through a
// form.Controller, so validation and submission match the HTML renderer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/render"
	"github.com/goliatone/go-candidateform/pkg/validation"
)

// Renderer implements render.Renderer for terminal sessions. Render produces
// a review summary; Run collects answers interactively and submits them.
type Renderer struct {
	driver PromptDriver
	out    io.Writer
	styled *bool
	style  string
	theme  Theme
	logger *slog.Logger
}

var (
	_ render.Renderer = (*Renderer)(nil)
	_ form.Notifier   = (*Renderer)(nil)
)

// New constructs a TUI renderer with defaults (survey driver, stdout).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		out:    os.Stdout,
		style:  DefaultStyle,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	if r.styled == nil {
		styled := isTerminal(r.out)
		r.styled = &styled
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the format produced by Render.
func (r *Renderer) ContentType() string {
	if r.styled != nil && *r.styled {
		return "text/plain; charset=utf-8"
	}
	return "text/markdown; charset=utf-8"
}

// Render returns the review summary for the snapshot in options, styled with
// glamour when the output is a terminal.
func (r *Renderer) Render(ctx context.Context, descriptor model.FormModel, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := Summary(descriptor, options.State)
	if r.styled != nil && *r.styled {
		rendered, err := glamour.Render(summary, r.style)
		if err == nil {
			return []byte(rendered), nil
		}
		r.logger.Debug("tui: glamour render failed", "error", err)
	}
	return []byte(summary), nil
}

// Notify prints controller notifications through the prompt driver.
func (r *Renderer) Notify(n form.Notification) {
	prefix := r.theme.SuccessPrefix
	if n.Level == form.LevelError {
		prefix = r.theme.ErrorPrefix
	}
	if err := r.driver.Info(context.Background(), prefix+n.Message); err != nil {
		r.logger.Warn("tui: print notification", "error", err)
	}
}

// Run prompts for every field of descriptor, shows a review, and submits
// through controller once confirmed. A failed submission keeps the answers
// and offers a retry.
func (r *Renderer) Run(ctx context.Context, descriptor model.FormModel, controller *form.Controller) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if controller == nil {
		return ErrControllerRequired
	}
	if r.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	if err := r.info(ctx, r.theme.InfoPrefix+descriptor.Title); err != nil {
		return err
	}

	for {
		if err := r.collect(ctx, descriptor, controller); err != nil {
			return err
		}

		summary, err := r.Render(ctx, descriptor, render.RenderOptions{State: controller.Snapshot()})
		if err != nil {
			return err
		}
		if err := r.info(ctx, string(summary)); err != nil {
			return err
		}

		if !controller.Valid() {
			if err := r.info(ctx, r.theme.ErrorPrefix+"Please correct the highlighted fields."); err != nil {
				return err
			}
			continue
		}

		confirmed, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Submit application?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if confirmed {
			return r.submit(ctx, descriptor, controller)
		}

		edit, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Edit your answers?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if !edit {
			return ErrCanceled
		}
	}
}

func (r *Renderer) collect(ctx context.Context, descriptor model.FormModel, controller *form.Controller) error {
	for _, field := range descriptor.Fields {
		if field.Toggle != "" && field.Name == model.FieldPhoneNumber {
			visible, err := r.driver.Confirm(ctx, ConfirmConfig{
				Message: field.Toggle,
				Default: controller.PhoneVisible(),
			})
			if err != nil {
				return err
			}
			if err := controller.SetPhoneVisible(visible); err != nil {
				return err
			}
			if !visible {
				continue
			}
		}

		current, _ := controller.Values().Get(field.Name)
		value, err := r.promptField(ctx, field, current, controller.Snapshot().PasswordVisible)
		if err != nil {
			return err
		}
		if err := controller.SetField(field.Name, value); err != nil {
			return err
		}
		r.logger.Debug("tui: field collected", "field", field.Name)
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, current string, revealPassword bool) (string, error) {
	label := r.theme.PromptPrefix + field.Label
	rule := fieldRule(field.Name)

	switch field.Format {
	case model.FormatPassword:
		cfg := InputConfig{Message: label, Help: field.Placeholder, Validator: rule}
		if revealPassword {
			cfg.Default = current
			return r.driver.Input(ctx, cfg)
		}
		return r.driver.Password(ctx, cfg)
	case model.FormatSelect:
		return r.promptSelect(ctx, field, label, current)
	case model.FormatTextArea:
		value, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message:   label,
			Default:   current,
			Help:      field.Placeholder,
			Validator: rule,
		})
		if err != nil {
			return "", err
		}
		if field.Name == model.FieldAbout {
			if err := r.info(ctx, r.theme.InfoPrefix+validation.CharacterCounter(value).Text); err != nil {
				return "", err
			}
		}
		return value, nil
	default:
		return r.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   current,
			Help:      field.Placeholder,
			Validator: rule,
		})
	}
}

func (r *Renderer) promptSelect(ctx context.Context, field model.Field, label, current string) (string, error) {
	if len(field.Options) == 0 {
		return "", fmt.Errorf("tui: field %q has no options", field.Name)
	}
	labels := make([]string, 0, len(field.Options))
	defaultIndex := -1
	for i, opt := range field.Options {
		labels = append(labels, opt.Label)
		if opt.Value == current {
			defaultIndex = i
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      label,
		Options:      labels,
		DefaultIndex: defaultIndex,
		Help:         field.Placeholder,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(field.Options) {
		return "", fmt.Errorf("tui: invalid selection %d for %q", idx, field.Name)
	}
	return field.Options[idx].Value, nil
}

func (r *Renderer) submit(ctx context.Context, descriptor model.FormModel, controller *form.Controller) error {
	for {
		if err := r.info(ctx, r.theme.InfoPrefix+descriptor.BusyLabel); err != nil {
			return err
		}
		err := controller.Submit(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, form.ErrInvalid) || errors.Is(err, form.ErrNoSubmitter) || ctx.Err() != nil {
			return err
		}
		r.logger.Debug("tui: submission failed", "error", err)

		retry, cerr := r.driver.Confirm(ctx, ConfirmConfig{
			Message: "Retry submission?",
			Default: true,
		})
		if cerr != nil {
			return cerr
		}
		if !retry {
			return err
		}
	}
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, msg)
}

// fieldRule returns the per-keystroke rule for a field. The phone prompt only
// runs while the number is included, so it is always required there.
func fieldRule(name model.FieldName) func(string) error {
	switch name {
	case model.FieldFullName:
		return validation.Name
	case model.FieldEmail:
		return validation.Email
	case model.FieldPhoneNumber:
		return func(value string) error { return validation.Phone(value, true) }
	case model.FieldPassword:
		return validation.Password
	case model.FieldAbout:
		return validation.About
	default:
		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
