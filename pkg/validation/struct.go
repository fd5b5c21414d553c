package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Struct tags registered on the go-playground validator. Each tag delegates to
// the matching rule function so struct validation and inline validation never
// disagree.
const (
	TagName     = "candidate_name"
	TagEmail    = "candidate_email"
	TagPhone    = "candidate_phone"
	TagPassword = "candidate_password"
	TagLang     = "candidate_lang"
	TagAbout    = "candidate_about"
)

type rule func(string) error

var rules = map[string]rule{
	TagName:     Name,
	TagEmail:    Email,
	TagPhone:    func(v string) error { return Phone(v, false) },
	TagPassword: Password,
	TagLang:     Language,
	TagAbout:    About,
}

// FieldErrors collects rule violations in struct field order.
type FieldErrors []*FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// Map returns the violations keyed by field.
func (e FieldErrors) Map() map[string]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// Validator wraps the go-playground validator with the candidate rules
// registered as struct tags.
type Validator struct {
	v *validator.Validate
}

// NewValidator constructs a Validator. Registration only fails on programmer
// error, so it panics like regexp.MustCompile.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, stringRule(fn)); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}
	return &Validator{v: v}
}

func stringRule(fn rule) validator.Func {
	return func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return fn(fl.Field().String()) == nil
	}
}

// Struct validates s using its `validate` tags. Violations of the candidate
// tags are returned as FieldErrors; any other failure is returned as is.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		fn, ok := rules[fe.Tag()]
		if !ok {
			out = append(out, &FieldError{Field: fe.Field(), Message: fe.Error()})
			continue
		}
		value, _ := fe.Value().(string)
		var ruleErr *FieldError
		if errors.As(fn(value), &ruleErr) {
			out = append(out, ruleErr)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Engine exposes the underlying validator. Configuration validation runs on
// it so config files and form values share one engine and its tags.
func (val *Validator) Engine() *validator.Validate {
	return val.v
}
