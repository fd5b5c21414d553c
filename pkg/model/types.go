package model

// FieldName identifies an input on the candidate form.
type FieldName string

const (
	FieldFullName    FieldName = "name"
	FieldEmail       FieldName = "email"
	FieldPhoneNumber FieldName = "phoneNumber"
	FieldPassword    FieldName = "password"
	FieldLang        FieldName = "lang"
	FieldAbout       FieldName = "about"
)

// Format values select the widget used to collect a field.
const (
	FormatText     = "text"
	FormatEmail    = "email"
	FormatTel      = "tel"
	FormatPassword = "password"
	FormatSelect   = "select"
	FormatTextArea = "textarea"
)

// Option is a selectable value for select widgets.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field models an individual input inside the form. Struct fields are
// annotated so renderers can serialise them directly when needed.
type Field struct {
	Name        FieldName         `json:"name"`
	Format      string            `json:"format"`
	Required    bool              `json:"required"`
	Label       string            `json:"label"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Options     []Option          `json:"options,omitempty"`
	Toggle      string            `json:"toggle,omitempty"`
	Rows        int               `json:"rows,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	SubmitLabel string            `json:"submitLabel"`
	BusyLabel   string            `json:"busyLabel"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the descriptor for name.
func (f FormModel) Field(name FieldName) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// OptionValues lists the option values of a select field in display order.
func (f Field) OptionValues() []string {
	return OptionValues(f.Options)
}

// OptionValues lists the values of options in order.
func OptionValues(options []Option) []string {
	if len(options) == 0 {
		return nil
	}
	out := make([]string, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.Value)
	}
	return out
}

// OptionLabel resolves the label for value, falling back to the value itself.
func (f Field) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
