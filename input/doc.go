// Package input turns raw puzzle text into rows, blank-line separated
// blocks and integer lists.
//
// Rows are plain strings without their line terminators. A trailing "\r"
// is dropped so that files with Windows line endings parse the same way.
//
// Parsing helpers never panic on bad input; they return an error wrapping
// ErrMalformed together with the offending text.
package input
