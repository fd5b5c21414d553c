package model

import (
	"net/http"
	"strings"
)

// DefaultEndpoint receives candidate applications.
const DefaultEndpoint = "https://admin-staging.whydonate.dev/whydonate/assignment"

// OperationSubmitApplication names the submission operation in the endpoint
// contract.
const OperationSubmitApplication = "submitApplication"

// DefaultLanguages are the language preferences offered by the form.
var DefaultLanguages = []Option{
	{Value: "en", Label: "English (en)"},
	{Value: "fr", Label: "French (fr)"},
	{Value: "nl", Label: "Dutch (nl)"},
	{Value: "it", Label: "Italian (it)"},
	{Value: "de", Label: "German (de)"},
}

// FormOption configures CandidateForm.
type FormOption func(*FormModel)

// WithEndpoint overrides the submission endpoint recorded on the model.
func WithEndpoint(endpoint string) FormOption {
	return func(f *FormModel) {
		if endpoint != "" {
			f.Endpoint = endpoint
		}
	}
}

// WithLanguages replaces the language options.
func WithLanguages(options []Option) FormOption {
	return func(f *FormModel) {
		if len(options) == 0 {
			return
		}
		for i := range f.Fields {
			if f.Fields[i].Name == FieldLang {
				f.Fields[i].Options = append([]Option(nil), options...)
			}
		}
	}
}

// WithDescription sets an introductory HTML fragment shown under the title.
// Renderers sanitise it before output.
func WithDescription(description string) FormOption {
	return func(f *FormModel) {
		f.Description = strings.TrimSpace(description)
	}
}

// CandidateForm returns the descriptor of the candidate application form.
func CandidateForm(options ...FormOption) FormModel {
	form := FormModel{
		OperationID: OperationSubmitApplication,
		Endpoint:    DefaultEndpoint,
		Method:      http.MethodPost,
		Title:       "Candidate Application",
		SubmitLabel: "Save",
		BusyLabel:   "Saving...",
		Fields: []Field{
			{
				Name:        FieldFullName,
				Format:      FormatText,
				Required:    true,
				Label:       "Full Name",
				Placeholder: "Enter your full name",
			},
			{
				Name:        FieldEmail,
				Format:      FormatEmail,
				Required:    true,
				Label:       "Email Address",
				Placeholder: "your.email@example.com",
			},
			{
				Name:        FieldPhoneNumber,
				Format:      FormatTel,
				Label:       "Phone Number",
				Placeholder: "10-digit number",
				Toggle:      "Include Phone Number",
			},
			{
				Name:        FieldPassword,
				Format:      FormatPassword,
				Required:    true,
				Label:       "Password",
				Placeholder: "Create a strong password",
			},
			{
				Name:        FieldLang,
				Format:      FormatSelect,
				Required:    true,
				Label:       "Language",
				Placeholder: "Select your preferred language",
				Options:     append([]Option(nil), DefaultLanguages...),
			},
			{
				Name:        FieldAbout,
				Format:      FormatTextArea,
				Required:    true,
				Label:       "About Yourself",
				Placeholder: "Tell us about yourself (minimum 50, maximum 500 characters)",
				Rows:        5,
			},
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&form)
	}
	return form
}
