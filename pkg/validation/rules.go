package validation

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Field identifiers used on FieldError. They match the JSON keys of the form
// values, not the submission payload (phoneNumber vs phone).
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phoneNumber"
	FieldPassword    = "password"
	FieldLang        = "lang"
	FieldAbout       = "about"
)

// Length limits applied by the rules.
const (
	NameMinLength     = 2
	PasswordMinLength = 8
	PhoneDigits       = 10
	AboutMinLength    = 50
	AboutMaxLength    = 500
)

// PasswordSymbols lists the punctuation accepted as the password symbol class.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

// whitespace is the class of characters treated as space by the name and
// email rules. RE2's \s covers ASCII only, so the Unicode separators, vertical
// tab and BOM are listed explicitly.
const whitespace = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z` + whitespace + `]+$`)
	emailPattern = regexp.MustCompile(`^[^@` + whitespace + `]+@[^@` + whitespace + `]+\.[^@` + whitespace + `]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
	digitPattern = regexp.MustCompile(`[0-9]`)
)

// FieldError reports a rule violation for a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the user facing message.
func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func fail(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// Name requires a trimmed value of at least two characters made of ASCII
// letters and whitespace, Unicode space separators included.
func Name(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fail(FieldName, "Full name is required")
	}
	if utf8.RuneCountInString(trimmed) < NameMinLength {
		return fail(FieldName, fmt.Sprintf("Full name must be at least %d characters", NameMinLength))
	}
	if !namePattern.MatchString(value) {
		return fail(FieldName, "Full name can only contain letters")
	}
	return nil
}

// Email requires a local@domain.tld shaped address.
func Email(value string) error {
	if strings.TrimSpace(value) == "" {
		return fail(FieldEmail, "Email address is required")
	}
	if !emailPattern.MatchString(value) {
		return fail(FieldEmail, "Please enter a valid email address")
	}
	return nil
}

// Phone checks the phone number only when it is required or non-empty. A
// present value must be exactly ten digits.
func Phone(value string, required bool) error {
	if !required && value == "" {
		return nil
	}
	if strings.TrimSpace(value) == "" {
		if required {
			return fail(FieldPhoneNumber, "Phone number is required")
		}
		return nil
	}
	if !phonePattern.MatchString(value) {
		return fail(FieldPhoneNumber, fmt.Sprintf("Phone number must be exactly %d digits", PhoneDigits))
	}
	return nil
}

// Password enforces length and the four character classes, reporting the
// first missing requirement.
func Password(value string) error {
	if value == "" {
		return fail(FieldPassword, "Password is required")
	}
	if utf8.RuneCountInString(value) < PasswordMinLength {
		return fail(FieldPassword, fmt.Sprintf("Password must be at least %d characters", PasswordMinLength))
	}
	if !upperPattern.MatchString(value) {
		return fail(FieldPassword, "Password must contain at least 1 uppercase letter")
	}
	if !lowerPattern.MatchString(value) {
		return fail(FieldPassword, "Password must contain at least 1 lowercase letter")
	}
	if !digitPattern.MatchString(value) {
		return fail(FieldPassword, "Password must contain at least 1 number")
	}
	if !strings.ContainsAny(value, PasswordSymbols) {
		return fail(FieldPassword, "Password must contain at least 1 special character")
	}
	return nil
}

// Language requires a non-empty selection.
func Language(value string) error {
	if value == "" {
		return fail(FieldLang, "Please select a language")
	}
	return nil
}

// LanguageIn behaves like Language and additionally rejects codes outside
// allowed. An empty allowed list accepts any non-empty selection.
func LanguageIn(value string, allowed []string) error {
	if err := Language(value); err != nil {
		return err
	}
	if len(allowed) > 0 && !slices.Contains(allowed, value) {
		return fail(FieldLang, "Please select a supported language")
	}
	return nil
}

// About bounds the trimmed biography between AboutMinLength and
// AboutMaxLength characters inclusive.
func About(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fail(FieldAbout, "About yourself is required")
	}
	n := utf8.RuneCountInString(trimmed)
	if n < AboutMinLength {
		return fail(FieldAbout, fmt.Sprintf("Minimum %d characters required (currently %d)", AboutMinLength, n))
	}
	if n > AboutMaxLength {
		return fail(FieldAbout, fmt.Sprintf("Maximum %d characters allowed (currently %d)", AboutMaxLength, n))
	}
	return nil
}

// Counter describes the character counter shown under the biography input.
type Counter struct {
	Length     int    `json:"length"`
	Remaining  int    `json:"remaining"`
	OutOfRange bool   `json:"outOfRange"`
	Text       string `json:"text"`
}

// CharacterCounter measures the raw, untrimmed value. It can disagree with
// About, which trims first; the counter reflects what the user typed.
func CharacterCounter(value string) Counter {
	n := utf8.RuneCountInString(value)
	c := Counter{
		Length:     n,
		OutOfRange: n < AboutMinLength || n > AboutMaxLength,
		Text:       fmt.Sprintf("%d/%d characters", n, AboutMaxLength),
	}
	if n < AboutMinLength {
		c.Remaining = AboutMinLength - n
		c.Text += fmt.Sprintf(" (%d more required)", c.Remaining)
	}
	return c
}

// Message returns the message carried by err, or "" when err is nil.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
