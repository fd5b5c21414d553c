package tui

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-candidateform/pkg/form"
	"github.com/goliatone/go-candidateform/pkg/model"
)

const maskedPassword = "********"

// Summary renders descriptor and state as markdown: a field table, pending
// errors, and the submission status.
func Summary(descriptor model.FormModel, state form.Snapshot) string {
	var b strings.Builder

	if title := strings.TrimSpace(descriptor.Title); title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}

	b.WriteString("| Field | Value |\n")
	b.WriteString("| --- | --- |\n")
	for _, field := range descriptor.Fields {
		fmt.Fprintf(&b, "| %s | %s |\n", cell(field.Label), cell(displayValue(field, state)))
	}

	var pending []string
	for _, field := range descriptor.Fields {
		if field.Name == model.FieldPhoneNumber && !state.PhoneVisible {
			continue
		}
		if msg := state.Errors.Get(field.Name); msg != "" {
			pending = append(pending, fmt.Sprintf("- **%s**: %s", cell(field.Label), cell(msg)))
		}
	}
	if len(pending) > 0 {
		b.WriteString("\n**Please fix:**\n\n")
		b.WriteString(strings.Join(pending, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case state.Submitting:
		fmt.Fprintf(&b, "_%s_\n", labelOr(descriptor.BusyLabel, "Saving..."))
	case state.Valid:
		b.WriteString("_Ready to submit._\n")
	default:
		b.WriteString("_Incomplete._\n")
	}
	return b.String()
}

func displayValue(field model.Field, state form.Snapshot) string {
	value, _ := state.Values.Get(field.Name)
	switch {
	case field.Name == model.FieldPhoneNumber && !state.PhoneVisible:
		return "_not included_"
	case value == "":
		return "-"
	case field.Format == model.FormatPassword && !state.PasswordVisible:
		return maskedPassword
	case field.Format == model.FormatSelect:
		return field.OptionLabel(value)
	case field.Name == model.FieldAbout:
		return fmt.Sprintf("%s (%s)", truncate(value, 60), state.Counter.Text)
	default:
		return value
	}
}

func cell(value string) string {
	value = strings.ReplaceAll(value, "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.ReplaceAll(value, "|", `\|`)
}

func truncate(value string, limit int) string {
	runes := []rune(strings.TrimSpace(value))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}

func labelOr(label, fallback string) string {
	if trimmed := strings.TrimSpace(label); trimmed != "" {
		return trimmed
	}
	return fallback
}
