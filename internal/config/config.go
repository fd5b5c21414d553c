// Package config reads the optional YAML configuration of the candidate form
// CLI. Every key has a default, so running without a file is the normal case.
// Values are validated after decoding; a bad file aborts startup rather than
// running with a partial configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/validation"
)

// DefaultTimeout caps a single submission request.
const DefaultTimeout = 15 * time.Second

// ErrInvalid wraps validation failures of a decoded config.
var ErrInvalid = errors.New("config: invalid")

var validate = validation.NewValidator().Engine()

// Language is a selectable language preference.
type Language struct {
	Value string `yaml:"value" validate:"required,alpha,lowercase"`
	Label string `yaml:"label" validate:"required"`
}

// Phone holds phone input settings.
type Phone struct {
	Visible bool `yaml:"visible"`
}

// Theme configures the HTML renderer look.
type Theme struct {
	Name      string            `yaml:"name,omitempty"`
	Variant   string            `yaml:"variant,omitempty"`
	Tokens    map[string]string `yaml:"tokens,omitempty"`
	CSSVars   map[string]string `yaml:"cssVars,omitempty"`
	AssetBase string            `yaml:"assetBase,omitempty"`
}

// Config contains configuration for the candidate form.
type Config struct {
	Endpoint  string        `yaml:"endpoint" validate:"required,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	Phone     Phone         `yaml:"phone"`
	Languages []Language    `yaml:"languages" validate:"required,min=1,dive"`
	Theme     Theme         `yaml:"theme,omitempty"`
	// Description is an HTML fragment shown under the form title.
	Description string `yaml:"description,omitempty"`

	// path is the file this config was loaded from
	path string
}

// Default returns the built-in configuration.
func Default() Config {
	langs := make([]Language, 0, len(model.DefaultLanguages))
	for _, opt := range model.DefaultLanguages {
		langs = append(langs, Language{Value: opt.Value, Label: opt.Label})
	}
	return Config{
		Endpoint:  model.DefaultEndpoint,
		Timeout:   DefaultTimeout,
		Phone:     Phone{Visible: true},
		Languages: langs,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s does not exist", path)
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w (file %s)", err, path)
	}
	cfg.path = path
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Path returns the file the config was loaded from, or "".
func (c Config) Path() string {
	return c.path
}

// LanguageOptions converts the configured languages to form options.
func (c Config) LanguageOptions() []model.Option {
	out := make([]model.Option, 0, len(c.Languages))
	for _, lang := range c.Languages {
		out = append(out, model.Option{Value: lang.Value, Label: lang.Label})
	}
	return out
}
