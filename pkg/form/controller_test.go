package form

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-candidateform/pkg/model"
	"github.com/goliatone/go-candidateform/pkg/submit"
)

var validAbout = strings.Repeat("I enjoy building careful software. ", 3)

func fillValid(t *testing.T, c *Controller) {
	t.Helper()
	steps := []struct {
		name  model.FieldName
		value string
	}{
		{model.FieldFullName, "Jane Doe"},
		{model.FieldEmail, "foo@bar.com"},
		{model.FieldPhoneNumber, "1234567890"},
		{model.FieldPassword, "Passw0rd!"},
		{model.FieldLang, "en"},
		{model.FieldAbout, validAbout},
	}
	for _, step := range steps {
		if err := c.SetField(step.name, step.value); err != nil {
			t.Fatalf("set %s: %v", step.name, err)
		}
	}
}

type recorder struct {
	notes []Notification
}

func (r *recorder) Notify(n Notification) {
	r.notes = append(r.notes, n)
}

func TestNew_DefaultsAreInvalid(t *testing.T) {
	c := New()

	if c.Valid() {
		t.Fatalf("expected empty form to be invalid")
	}
	if !c.PhoneVisible() {
		t.Fatalf("phone input should be visible by default")
	}

	want := Errors{
		model.FieldFullName:    "Full name is required",
		model.FieldEmail:       "Email address is required",
		model.FieldPhoneNumber: "Phone number is required",
		model.FieldPassword:    "Password is required",
		model.FieldLang:        "Please select a language",
		model.FieldAbout:       "About yourself is required",
	}
	if diff := cmp.Diff(want, c.Errors()); diff != "" {
		t.Fatalf("initial errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSetField_RecomputesValidity(t *testing.T) {
	c := New()
	fillValid(t, c)

	if !c.Valid() {
		t.Fatalf("expected valid form, errors: %v", c.Errors())
	}
	if len(c.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", c.Errors())
	}

	if err := c.SetField(model.FieldEmail, "foo"); err != nil {
		t.Fatalf("set email: %v", err)
	}
	if c.Valid() {
		t.Fatalf("expected invalid form after bad email")
	}
	if got := c.Errors().Get(model.FieldEmail); got != "Please enter a valid email address" {
		t.Fatalf("unexpected email error %q", got)
	}
}

func TestSetField_UnknownField(t *testing.T) {
	c := New()
	if err := c.SetField("nickname", "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestPhoneToggle(t *testing.T) {
	c := New()
	fillValid(t, c)

	if err := c.TogglePhone(); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if c.PhoneVisible() {
		t.Fatalf("expected phone hidden")
	}
	if got := c.Values().PhoneNumber; got != "" {
		t.Fatalf("expected phone cleared when hidden, got %q", got)
	}
	if !c.Valid() {
		t.Fatalf("hidden phone must not block validity: %v", c.Errors())
	}

	if err := c.TogglePhone(); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if c.Valid() {
		t.Fatalf("expected phone to be required again once visible")
	}
	if got := c.Errors().Get(model.FieldPhoneNumber); got != "Phone number is required" {
		t.Fatalf("unexpected phone error %q", got)
	}

	if err := c.SetField(model.FieldPhoneNumber, "12345"); err != nil {
		t.Fatalf("set phone: %v", err)
	}
	if c.Valid() {
		t.Fatalf("short phone must block validity while visible")
	}
}

func TestValidate_HiddenPhoneErrorIgnored(t *testing.T) {
	values := Values{
		Name:        "Jane Doe",
		Email:       "foo@bar.com",
		PhoneNumber: "12",
		Password:    "Passw0rd!",
		Lang:        "fr",
		About:       validAbout,
	}
	errs, valid := Validate(values, false, nil)
	if !valid {
		t.Fatalf("expected valid with hidden phone, errors %v", errs)
	}
	if !errs.Has(model.FieldPhoneNumber) {
		t.Fatalf("phone error should still be reported")
	}
}

func TestLanguageRestriction(t *testing.T) {
	c := New(WithLanguages([]string{"en"}))
	if err := c.SetField(model.FieldLang, "de"); err != nil {
		t.Fatalf("set lang: %v", err)
	}
	if got := c.Errors().Get(model.FieldLang); got != "Please select a supported language" {
		t.Fatalf("unexpected lang error %q", got)
	}
}

func TestSubmit_InvalidIssuesNoRequest(t *testing.T) {
	calls := 0
	rec := &recorder{}
	c := New(
		WithSubmitter(SubmitterFunc(func(context.Context, model.Payload) error {
			calls++
			return nil
		})),
		WithNotifier(rec),
	)

	if err := c.Submit(context.Background()); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no submission, got %d", calls)
	}
	if len(rec.notes) != 0 {
		t.Fatalf("expected no notifications, got %v", rec.notes)
	}
}

func TestSubmit_PanickingSubmitterReleasesForm(t *testing.T) {
	panicking := true
	rec := &recorder{}
	c := New(
		WithSubmitter(SubmitterFunc(func(context.Context, model.Payload) error {
			if panicking {
				panic("transport exploded")
			}
			return nil
		})),
		WithNotifier(rec),
	)
	fillValid(t, c)
	before := c.Values()

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("expected submitter panic to propagate")
			}
		}()
		_ = c.Submit(context.Background())
	}()

	if c.Submitting() {
		t.Fatalf("expected in-flight flag to be cleared after panic")
	}
	if diff := cmp.Diff(before, c.Values()); diff != "" {
		t.Fatalf("values changed after panic (-want +got):\n%s", diff)
	}
	if len(rec.notes) != 0 {
		t.Fatalf("expected no notifications after panic, got %v", rec.notes)
	}

	panicking = false
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("expected a later submission to go through, got %v", err)
	}
}

func TestSubmit_SuccessResets(t *testing.T) {
	var got model.Payload
	rec := &recorder{}
	c := New(
		WithSubmitter(SubmitterFunc(func(_ context.Context, p model.Payload) error {
			got = p
			return nil
		})),
		WithNotifier(rec),
	)
	fillValid(t, c)

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := model.Payload{
		Name:     "Jane Doe",
		Email:    "foo@bar.com",
		Phone:    "1234567890",
		Password: "Passw0rd!",
		Lang:     "en",
		About:    validAbout,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Values{}, c.Values()); diff != "" {
		t.Fatalf("values not reset (-want +got):\n%s", diff)
	}
	if c.Valid() || c.Submitting() {
		t.Fatalf("expected reset form to be invalid and idle")
	}
	wantNotes := []Notification{{Level: LevelSuccess, Message: MessageSubmitted}}
	if diff := cmp.Diff(wantNotes, rec.notes); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_FailureKeepsValues(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "rejected",
			err:     &submit.StatusError{StatusCode: 500, Status: "500 Internal Server Error"},
			message: MessageSubmissionFailed,
		},
		{
			name:    "transport",
			err:     errors.New("dial tcp: connection refused"),
			message: MessageSubmissionFault,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			c := New(
				WithSubmitter(SubmitterFunc(func(context.Context, model.Payload) error {
					return tc.err
				})),
				WithNotifier(rec),
			)
			fillValid(t, c)
			before := c.Values()

			err := c.Submit(context.Background())
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected submission error to be wrapped, got %v", err)
			}
			if diff := cmp.Diff(before, c.Values()); diff != "" {
				t.Fatalf("values changed after failure (-want +got):\n%s", diff)
			}
			if !c.Valid() || c.Submitting() {
				t.Fatalf("expected valid idle form after failure")
			}
			wantNotes := []Notification{{Level: LevelError, Message: tc.message}}
			if diff := cmp.Diff(wantNotes, rec.notes); diff != "" {
				t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubmit_SingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c := New(
		WithSubmitter(SubmitterFunc(func(context.Context, model.Payload) error {
			close(started)
			<-release
			return nil
		})),
		WithNotifier(NotifierFunc(func(Notification) {})),
	)
	fillValid(t, c)

	done := make(chan error, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()
	<-started

	if !c.Submitting() {
		t.Fatalf("expected in-flight flag")
	}
	if err := c.Submit(context.Background()); !errors.Is(err, ErrSubmitting) {
		t.Fatalf("expected ErrSubmitting for second submit, got %v", err)
	}
	if err := c.SetField(model.FieldFullName, "John Doe"); !errors.Is(err, ErrSubmitting) {
		t.Fatalf("expected form to be disabled during flight, got %v", err)
	}
	if err := c.TogglePhone(); !errors.Is(err, ErrSubmitting) {
		t.Fatalf("expected toggle to be disabled during flight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if c.Submitting() {
		t.Fatalf("in-flight flag not cleared")
	}
}

func TestSubmit_NoSubmitter(t *testing.T) {
	c := New()
	fillValid(t, c)
	if err := c.Submit(context.Background()); !errors.Is(err, ErrNoSubmitter) {
		t.Fatalf("expected ErrNoSubmitter, got %v", err)
	}
}

func TestOnChange_ObservesTransitions(t *testing.T) {
	var snaps []Snapshot
	c := New(
		WithOnChange(func(s Snapshot) { snaps = append(snaps, s) }),
		WithSubmitter(SubmitterFunc(func(context.Context, model.Payload) error { return nil })),
		WithNotifier(NotifierFunc(func(Notification) {})),
	)
	fillValid(t, c)
	snaps = nil

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected busy and done snapshots, got %d", len(snaps))
	}
	if !snaps[0].Submitting || snaps[1].Submitting {
		t.Fatalf("unexpected submitting flags: %v, %v", snaps[0].Submitting, snaps[1].Submitting)
	}

	c.TogglePasswordVisibility()
	if last := snaps[len(snaps)-1]; !last.PasswordVisible {
		t.Fatalf("expected password visible after toggle")
	}
}

func TestSetValues_HiddenPhoneStaysEmpty(t *testing.T) {
	c := New(WithPhoneVisible(false))
	if err := c.SetValues(Values{Name: "Jane Doe", PhoneNumber: "1234567890"}); err != nil {
		t.Fatalf("set values: %v", err)
	}
	if got := c.Values().PhoneNumber; got != "" {
		t.Fatalf("hidden phone should be dropped, got %q", got)
	}
	if got := c.Snapshot().Counter.Text; got != "0/500 characters (50 more required)" {
		t.Fatalf("unexpected counter %q", got)
	}
}
