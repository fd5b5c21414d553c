// Package model describes the candidate application form independently of any
// renderer. The descriptor lists each input with its label, placeholder,
// widget format and, for the language selector, the fixed option set.
// Renderers (terminal prompts, HTML markup) read the descriptor to lay out
// inputs; the form controller owns values and errors.
package model
