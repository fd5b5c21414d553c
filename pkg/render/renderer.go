package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/model"
)

// Renderer converts the form descriptor and a controller snapshot into a byte
// representation (HTML markup, plain text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form model.FormModel, options RenderOptions) ([]byte, error)
}

// RenderOptions carry per-request data.
type RenderOptions struct {
	// State is the controller snapshot to display: values, inline errors,
	// toggles and the busy flag.
	State form.Snapshot
	// HiddenFields are emitted as hidden inputs alongside the visible fields.
	HiddenFields map[string]string
	// Theme carries the resolved theme name, variant, CSS variables and
	// asset resolver. Nil falls back to the embedded stylesheet.
	Theme *theme.RendererConfig
}
