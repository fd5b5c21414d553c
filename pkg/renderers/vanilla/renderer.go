// Package vanilla renders the candidate form as server-side HTML.
package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/render"
	rendertemplate "github.com/goliatone/go-candidateform/pkg/render/template"
	"github.com/goliatone/go-candidateform/pkg/render/template/pongo"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStyles controls whether the embedded stylesheet is inlined when
// no theme stylesheet is resolved. Enabled by default.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	inlineStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), inlineStyles: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, inlineStyles: cfg.inlineStyles}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, descriptor model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate(formTemplate, r.buildContext(descriptor, options))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type fieldView struct {
	Name        string             `json:"name"`
	Label       string             `json:"label"`
	Format      string             `json:"format"`
	InputType   string             `json:"inputType"`
	Placeholder string             `json:"placeholder,omitempty"`
	Value       string             `json:"value"`
	Error       string             `json:"error,omitempty"`
	Required    bool               `json:"required"`
	Hidden      bool               `json:"hidden"`
	Toggle      string             `json:"toggle,omitempty"`
	ToggleOn    bool               `json:"toggleOn"`
	Rows        string             `json:"rows,omitempty"`
	Options     []optionView       `json:"options,omitempty"`
	Counter     *validationCounter `json:"counter,omitempty"`
}

type validationCounter struct {
	Text       string `json:"text"`
	OutOfRange bool   `json:"outOfRange"`
}

func (r *Renderer) buildContext(descriptor model.FormModel, options render.RenderOptions) map[string]any {
	state := options.State

	fields := make([]fieldView, 0, len(descriptor.Fields))
	for _, field := range descriptor.Fields {
		fields = append(fields, buildField(field, state))
	}

	stylesheet := themeStylesheet(options.Theme)
	inline := ""
	if stylesheet == "" && r.inlineStyles {
		inline = defaultStylesheet()
	}

	method := strings.ToLower(strings.TrimSpace(descriptor.Method))
	if method == "" {
		method = "post"
	}

	return map[string]any{
		"operationId":     descriptor.OperationID,
		"endpoint":        descriptor.Endpoint,
		"method":          method,
		"title":           descriptor.Title,
		"description":     sanitizeDescription(descriptor.Description),
		"submitLabel":     labelOr(descriptor.SubmitLabel, "Save"),
		"busyLabel":       labelOr(descriptor.BusyLabel, "Saving..."),
		"fields":          fields,
		"hiddenFields":    render.SortedHiddenFields(options.HiddenFields),
		"valid":           state.Valid,
		"submitting":      state.Submitting,
		"passwordVisible": state.PasswordVisible,
		"theme":           buildThemeContext(options.Theme),
		"stylesheet":      stylesheet,
		"inlineStyles":    inline,
	}
}

func buildField(field model.Field, state form.Snapshot) fieldView {
	value, _ := state.Values.Get(field.Name)
	view := fieldView{
		Name:        string(field.Name),
		Label:       field.Label,
		Format:      field.Format,
		InputType:   inputType(field.Format, state.PasswordVisible),
		Placeholder: field.Placeholder,
		Value:       value,
		Error:       state.Errors.Get(field.Name),
		Required:    field.Required,
		Toggle:      field.Toggle,
		ToggleOn:    true,
	}

	if field.Rows > 0 {
		view.Rows = strconv.Itoa(field.Rows)
	}
	if field.Toggle != "" && field.Name == model.FieldPhoneNumber {
		view.ToggleOn = state.PhoneVisible
		view.Hidden = !state.PhoneVisible
	}
	if view.Hidden {
		view.Value = ""
		view.Error = ""
	}

	if len(field.Options) > 0 {
		view.Options = make([]optionView, 0, len(field.Options))
		for _, opt := range field.Options {
			view.Options = append(view.Options, optionView{
				Value:    opt.Value,
				Label:    opt.Label,
				Selected: opt.Value == value,
			})
		}
	}

	if field.Name == model.FieldAbout {
		view.Counter = &validationCounter{
			Text:       state.Counter.Text,
			OutOfRange: state.Counter.OutOfRange,
		}
	}
	return view
}

func inputType(format string, passwordVisible bool) string {
	switch format {
	case model.FormatPassword:
		if passwordVisible {
			return "text"
		}
		return "password"
	case model.FormatEmail:
		return "email"
	case model.FormatTel:
		return "tel"
	default:
		return "text"
	}
}

func labelOr(label, fallback string) string {
	if trimmed := strings.TrimSpace(label); trimmed != "" {
		return trimmed
	}
	return fallback
}
