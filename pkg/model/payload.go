package model

// Payload is the request body sent to the submission endpoint. It renames
// phoneNumber to phone; every other key matches the form field name.
type Payload struct {
	Name     string `json:"name" yaml:"name" validate:"candidate_name"`
	Email    string `json:"email" yaml:"email" validate:"candidate_email"`
	Phone    string `json:"phone" yaml:"phone" validate:"candidate_phone"`
	Password string `json:"password" yaml:"password" validate:"candidate_password"`
	Lang     string `json:"lang" yaml:"lang" validate:"candidate_lang"`
	About    string `json:"about" yaml:"about" validate:"candidate_about"`
}

// Redacted returns a copy safe for logging.
func (p Payload) Redacted() Payload {
	if p.Password != "" {
		p.Password = "[redacted]"
	}
	return p
}
