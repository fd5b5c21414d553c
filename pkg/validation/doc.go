// Package validation holds the candidate form rule set.
//
// Every rule is a pure function over a single field value and returns nil when
// the value is acceptable or a *FieldError carrying the message that should be
// shown next to the input. Rules never perform I/O, so they can be reused as
// survey prompt validators, called from the form controller on every edit, or
// composed into the struct-level Validator used before a payload leaves the
// process.
package validation
