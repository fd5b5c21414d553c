// Package form implements the candidate form controller.
//
// A Controller is an explicit state object: field values, the phone and
// password visibility toggles, the derived error map, the aggregate validity
// flag and the in-flight flag. State only changes through the transitions it
// exposes (SetField, SetPhoneVisible/TogglePhone, TogglePasswordVisibility,
// Submit, Reset) and every transition recomputes the full error map before it
// returns, so readers never observe values and errors out of step.
//
// Submission is guarded by validity and by the in-flight flag; exactly one
// request can be outstanding. Outcomes are reported to a Notifier as transient
// success or error notifications. A failed submission keeps the values so
// they can be corrected.
package form
