package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/submit"
	"github.com/goliatone/go-candidateform/pkg/validation"
)

var (
	// ErrInvalid is returned by Submit when a required field has an error.
	ErrInvalid = errors.New("form: invalid")
	// ErrSubmitting is returned by transitions attempted while a submission
	// is in flight.
	ErrSubmitting = errors.New("form: submission in flight")
	// ErrUnknownField is returned by SetField for names outside the form.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrNoSubmitter is returned by Submit when no Submitter is configured.
	ErrNoSubmitter = errors.New("form: submitter is not configured")
)

// Submitter delivers a payload to the remote endpoint. Implementations
// report non-2xx responses with errors matching submit.ErrStatus.
type Submitter interface {
	Submit(ctx context.Context, payload model.Payload) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, payload model.Payload) error

// Submit calls f(ctx, payload).
func (f SubmitterFunc) Submit(ctx context.Context, payload model.Payload) error {
	return f(ctx, payload)
}

// Snapshot is an immutable copy of the controller state.
type Snapshot struct {
	Values          Values             `json:"values"`
	Errors          Errors             `json:"errors"`
	Valid           bool               `json:"valid"`
	PhoneVisible    bool               `json:"phoneVisible"`
	PasswordVisible bool               `json:"passwordVisible"`
	Submitting      bool               `json:"submitting"`
	Counter         validation.Counter `json:"counter"`
}

// Option configures a Controller.
type Option func(*Controller)

// WithSubmitter sets the destination for Submit.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) {
		c.submitter = s
	}
}

// WithNotifier receives submission notifications. Defaults to logging them.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLanguages restricts the accepted language codes.
func WithLanguages(codes []string) Option {
	return func(c *Controller) {
		c.languages = append([]string(nil), codes...)
	}
}

// WithPhoneVisible sets the initial phone toggle. The phone input is shown by
// default.
func WithPhoneVisible(visible bool) Option {
	return func(c *Controller) {
		c.phoneVisible = visible
	}
}

// WithOnChange registers a callback invoked with a fresh snapshot after every
// transition, outside the controller lock.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// Controller owns the state of a single form instance.
type Controller struct {
	mu sync.Mutex

	values          Values
	phoneVisible    bool
	passwordVisible bool
	errors          Errors
	valid           bool
	submitting      bool

	languages []string
	submitter Submitter
	notifier  Notifier
	logger    *slog.Logger
	observers []func(Snapshot)
}

// New constructs a Controller with default values and computes the initial
// error map.
func New(options ...Option) *Controller {
	c := &Controller{
		phoneVisible: true,
		languages:    model.OptionValues(model.DefaultLanguages),
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = logNotifier{logger: c.logger}
	}
	c.recompute()
	return c
}

// SetField updates a single value.
func (c *Controller) SetField(name model.FieldName, value string) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	if !c.values.set(name, value) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	c.recompute()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap)
	return nil
}

// SetValues replaces every value at once, as when prefilling from a file.
func (c *Controller) SetValues(values Values) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	c.values = values
	if !c.phoneVisible {
		c.values.PhoneNumber = ""
	}
	c.recompute()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap)
	return nil
}

// SetPhoneVisible shows or hides the phone input. Hiding it clears the value;
// showing it makes the phone number required again.
func (c *Controller) SetPhoneVisible(visible bool) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	c.phoneVisible = visible
	if !visible {
		c.values.PhoneNumber = ""
	}
	c.recompute()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap)
	return nil
}

// TogglePhone flips the phone visibility.
func (c *Controller) TogglePhone() error {
	return c.SetPhoneVisible(!c.PhoneVisible())
}

// TogglePasswordVisibility flips whether the password is displayed in clear
// text. It has no effect on validation.
func (c *Controller) TogglePasswordVisibility() {
	c.mu.Lock()
	c.passwordVisible = !c.passwordVisible
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap)
}

// Reset restores the default values. Toggles are preserved.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	c.values = Values{}
	c.recompute()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(snap)
	return nil
}

// Submit sends the current values when the form is valid and no other
// submission is in flight. On success the values are reset; on failure they
// are kept. Either way a notification is fired and the returned error carries
// the submission failure, if any.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitting
	}
	if !c.valid {
		c.mu.Unlock()
		return ErrInvalid
	}
	if c.submitter == nil {
		c.mu.Unlock()
		return ErrNoSubmitter
	}
	c.submitting = true
	payload := c.values.Payload()
	submitter := c.submitter
	busy := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(busy)
	c.logger.Debug("form submission started", slog.Any("payload", payload.Redacted()))

	settled := false
	defer func() {
		if settled {
			return
		}
		c.mu.Lock()
		c.submitting = false
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
	}()

	err := submitter.Submit(ctx, payload)

	c.mu.Lock()
	c.submitting = false
	settled = true
	if err == nil {
		c.values = Values{}
		c.recompute()
	}
	done := c.snapshotLocked()
	c.mu.Unlock()

	c.emit(done)

	switch {
	case err == nil:
		c.notifier.Notify(Notification{Level: LevelSuccess, Message: MessageSubmitted})
		return nil
	case errors.Is(err, submit.ErrStatus):
		c.logger.Warn("form submission rejected", slog.Any("error", err))
		c.notifier.Notify(Notification{Level: LevelError, Message: MessageSubmissionFailed})
	default:
		c.logger.Error("form submission error", slog.Any("error", err))
		c.notifier.Notify(Notification{Level: LevelError, Message: MessageSubmissionFault})
	}
	return fmt.Errorf("form: submit: %w", err)
}

// Values returns the current values.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// Errors returns a copy of the current error map.
func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Clone()
}

// Valid reports whether the form can be submitted.
func (c *Controller) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// PhoneVisible reports the phone toggle.
func (c *Controller) PhoneVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phoneVisible
}

// Payload returns the submission body for the current values.
func (c *Controller) Payload() model.Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Payload()
}

// Snapshot returns a copy of the full state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Validate runs the rule set over values without touching any controller.
// phoneVisible decides whether the phone number is required and whether its
// error blocks validity.
func Validate(values Values, phoneVisible bool, languages []string) (Errors, bool) {
	errs := Errors{}
	record := func(name model.FieldName, err error) {
		if msg := validation.Message(err); msg != "" {
			errs[name] = msg
		}
	}

	record(model.FieldFullName, validation.Name(values.Name))
	record(model.FieldEmail, validation.Email(values.Email))
	record(model.FieldPhoneNumber, validation.Phone(values.PhoneNumber, phoneVisible))
	record(model.FieldPassword, validation.Password(values.Password))
	record(model.FieldLang, validation.LanguageIn(values.Lang, languages))
	record(model.FieldAbout, validation.About(values.About))

	valid := !errs.Has(model.FieldFullName) &&
		!errs.Has(model.FieldEmail) &&
		!errs.Has(model.FieldPassword) &&
		!errs.Has(model.FieldLang) &&
		!errs.Has(model.FieldAbout) &&
		(!phoneVisible || !errs.Has(model.FieldPhoneNumber))
	return errs, valid
}

func (c *Controller) recompute() {
	c.errors, c.valid = Validate(c.values, c.phoneVisible, c.languages)
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Values:          c.values,
		Errors:          c.errors.Clone(),
		Valid:           c.valid,
		PhoneVisible:    c.phoneVisible,
		PasswordVisible: c.passwordVisible,
		Submitting:      c.submitting,
		Counter:         validation.CharacterCounter(c.values.About),
	}
}

func (c *Controller) emit(s Snapshot) {
	for _, fn := range c.observers {
		fn(s)
	}
}
