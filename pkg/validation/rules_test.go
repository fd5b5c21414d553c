package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestName(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: "Full name is required"},
		{name: "whitespace only", value: "   \t", want: "Full name is required"},
		{name: "too short", value: " J ", want: "Full name must be at least 2 characters"},
		{name: "digits", value: "Jane D0e", want: "Full name can only contain letters"},
		{name: "punctuation", value: "Jane-Doe", want: "Full name can only contain letters"},
		{name: "valid", value: "Jane Doe", want: ""},
		{name: "valid with padding", value: " Jane Doe ", want: ""},
		{name: "no-break space", value: "Jane\u00a0Doe", want: ""},
		{name: "vertical tab", value: "Jane\vDoe", want: ""},
		{name: "em space", value: "Jane\u2003Doe", want: ""},
		{name: "line separator", value: "Jane\u2028Doe", want: ""},
		{name: "accented letter", value: "Jos\u00e9 Doe", want: "Full name can only contain letters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Message(Name(tc.value)); got != tc.want {
				t.Fatalf("Name(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{value: "", want: "Email address is required"},
		{value: "  ", want: "Email address is required"},
		{value: "foo", want: "Please enter a valid email address"},
		{value: "foo@bar", want: "Please enter a valid email address"},
		{value: "foo @bar.com", want: "Please enter a valid email address"},
		{value: "fo\u00a0o@bar.com", want: "Please enter a valid email address"},
		{value: "foo@bar\v.com", want: "Please enter a valid email address"},
		{value: "foo@bar.c\ufeffom", want: "Please enter a valid email address"},
		{value: "foo@bar.com", want: ""},
	}

	for _, tc := range cases {
		if got := Message(Email(tc.value)); got != tc.want {
			t.Fatalf("Email(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		value    string
		required bool
		want     string
	}{
		{value: "12345", required: true, want: "Phone number must be exactly 10 digits"},
		{value: "12345", required: false, want: "Phone number must be exactly 10 digits"},
		{value: "", required: false, want: ""},
		{value: "   ", required: false, want: ""},
		{value: "", required: true, want: "Phone number is required"},
		{value: "1234567890", required: true, want: ""},
		{value: "1234567890", required: false, want: ""},
		{value: "12345678901", required: true, want: "Phone number must be exactly 10 digits"},
		{value: "123456789a", required: true, want: "Phone number must be exactly 10 digits"},
	}

	for _, tc := range cases {
		if got := Message(Phone(tc.value, tc.required)); got != tc.want {
			t.Fatalf("Phone(%q, %v) = %q, want %q", tc.value, tc.required, got, tc.want)
		}
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{value: "", want: "Password is required"},
		{value: "Pa0!", want: "Password must be at least 8 characters"},
		{value: "password", want: "Password must contain at least 1 uppercase letter"},
		{value: "PASSWORD", want: "Password must contain at least 1 lowercase letter"},
		{value: "Password", want: "Password must contain at least 1 number"},
		{value: "Passw0rd", want: "Password must contain at least 1 special character"},
		{value: "Passw0rd-", want: "Password must contain at least 1 special character"},
		{value: "Passw0rd!", want: ""},
		{value: `Passw0rd"`, want: ""},
	}

	for _, tc := range cases {
		if got := Message(Password(tc.value)); got != tc.want {
			t.Fatalf("Password(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestLanguage(t *testing.T) {
	if got := Message(Language("")); got != "Please select a language" {
		t.Fatalf("unexpected message for empty language: %q", got)
	}
	if err := Language("en"); err != nil {
		t.Fatalf("expected en to be accepted, got %v", err)
	}
	allowed := []string{"en", "fr"}
	if got := Message(LanguageIn("xx", allowed)); got != "Please select a supported language" {
		t.Fatalf("unexpected message for unsupported language: %q", got)
	}
	if err := LanguageIn("fr", allowed); err != nil {
		t.Fatalf("expected fr to be accepted, got %v", err)
	}
	if err := LanguageIn("xx", nil); err != nil {
		t.Fatalf("expected any language without allow list, got %v", err)
	}
}

func TestAbout(t *testing.T) {
	fifty := strings.Repeat("a", 50)
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "  ", want: "About yourself is required"},
		{name: "short", value: strings.Repeat("a", 49), want: "Minimum 50 characters required (currently 49)"},
		{name: "padding does not count", value: "   " + strings.Repeat("a", 48) + "   ", want: "Minimum 50 characters required (currently 48)"},
		{name: "exactly fifty", value: fifty, want: ""},
		{name: "exactly five hundred", value: strings.Repeat("a", 500), want: ""},
		{name: "too long", value: strings.Repeat("a", 501), want: "Maximum 500 characters allowed (currently 501)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Message(About(tc.value)); got != tc.want {
				t.Fatalf("About() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCharacterCounter_UsesRawLength(t *testing.T) {
	value := "  " + strings.Repeat("a", 48) + "  "

	got := CharacterCounter(value)
	want := Counter{
		Length: 52,
		Text:   "52/500 characters",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("counter mismatch (-want +got):\n%s", diff)
	}

	if About(value) == nil {
		t.Fatalf("expected trimmed length check to reject the value the counter accepts")
	}

	short := CharacterCounter("hello")
	if !short.OutOfRange || short.Remaining != 45 || short.Text != "5/500 characters (45 more required)" {
		t.Fatalf("unexpected short counter: %+v", short)
	}
}

func TestFieldErrorCarriesField(t *testing.T) {
	var fe *FieldError
	if !errors.As(Password("short"), &fe) {
		t.Fatalf("expected *FieldError")
	}
	if fe.Field != FieldPassword {
		t.Fatalf("expected field %q, got %q", FieldPassword, fe.Field)
	}
}
