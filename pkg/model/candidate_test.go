package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCandidateForm_FieldOrder(t *testing.T) {
	form := CandidateForm()

	var got []FieldName
	for _, field := range form.Fields {
		got = append(got, field.Name)
	}
	want := []FieldName{FieldFullName, FieldEmail, FieldPhoneNumber, FieldPassword, FieldLang, FieldAbout}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	phone, ok := form.Field(FieldPhoneNumber)
	if !ok || phone.Required || phone.Toggle == "" {
		t.Fatalf("phone field should be optional behind a toggle, got %+v", phone)
	}
}

func TestCandidateForm_Options(t *testing.T) {
	form := CandidateForm(
		WithEndpoint("https://example.test/apply"),
		WithLanguages([]Option{{Value: "es", Label: "Spanish (es)"}}),
	)

	if form.Endpoint != "https://example.test/apply" {
		t.Fatalf("endpoint not applied: %q", form.Endpoint)
	}
	lang, _ := form.Field(FieldLang)
	if diff := cmp.Diff([]string{"es"}, lang.OptionValues()); diff != "" {
		t.Fatalf("language options mismatch (-want +got):\n%s", diff)
	}
	if got := lang.OptionLabel("es"); got != "Spanish (es)" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := lang.OptionLabel("zz"); got != "zz" {
		t.Fatalf("expected fallback label, got %q", got)
	}

	// defaults must not be shared with callers
	def := CandidateForm()
	defLang, _ := def.Field(FieldLang)
	defLang.Options[0].Label = "mutated"
	if DefaultLanguages[0].Label == "mutated" {
		t.Fatalf("CandidateForm leaked DefaultLanguages backing array")
	}
}
