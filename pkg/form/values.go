package form

import (
	"maps"

	"github.com/goliatone/go-candidateform/pkg/model"
)

// Values holds the current field values. The zero value is the default state.
type Values struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber"`
	Password    string `json:"password" yaml:"password"`
	Lang        string `json:"lang" yaml:"lang"`
	About       string `json:"about" yaml:"about"`
}

// Get returns the value of the named field.
func (v Values) Get(name model.FieldName) (string, bool) {
	switch name {
	case model.FieldFullName:
		return v.Name, true
	case model.FieldEmail:
		return v.Email, true
	case model.FieldPhoneNumber:
		return v.PhoneNumber, true
	case model.FieldPassword:
		return v.Password, true
	case model.FieldLang:
		return v.Lang, true
	case model.FieldAbout:
		return v.About, true
	default:
		return "", false
	}
}

func (v *Values) set(name model.FieldName, value string) bool {
	switch name {
	case model.FieldFullName:
		v.Name = value
	case model.FieldEmail:
		v.Email = value
	case model.FieldPhoneNumber:
		v.PhoneNumber = value
	case model.FieldPassword:
		v.Password = value
	case model.FieldLang:
		v.Lang = value
	case model.FieldAbout:
		v.About = value
	default:
		return false
	}
	return true
}

// Payload projects the values onto the submission body.
func (v Values) Payload() model.Payload {
	return model.Payload{
		Name:     v.Name,
		Email:    v.Email,
		Phone:    v.PhoneNumber,
		Password: v.Password,
		Lang:     v.Lang,
		About:    v.About,
	}
}

// Errors maps fields to their current validation message. Fields without an
// entry are valid.
type Errors map[model.FieldName]string

// Get returns the message for name, or "".
func (e Errors) Get(name model.FieldName) string {
	if e == nil {
		return ""
	}
	return e[name]
}

// Has reports whether name currently has an error.
func (e Errors) Has(name model.FieldName) bool {
	return e.Get(name) != ""
}

// Clone returns a copy safe to hand out.
func (e Errors) Clone() Errors {
	if len(e) == 0 {
		return Errors{}
	}
	return maps.Clone(e)
}
