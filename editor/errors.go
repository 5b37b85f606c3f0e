// Package editor implements thin, pure mutators over a loaded save graph.
// Editors never touch disk and never perform cross-entity invariant
// checks — that is the validate package's job. Each operation returns an
// Outcome describing what happened.
package editor

import "errors"

// Editor-level argument and state errors, returned in-band via Outcome
// rather than as raised exceptions.
var (
	ErrOutOfRange       = errors.New("editor: value out of range")
	ErrConflict         = errors.New("editor: conflicting state")
	ErrCapacityExceeded = errors.New("editor: capacity exceeded")
	ErrNotEnoughTroops  = errors.New("editor: not enough troops")
	ErrNotFound         = errors.New("editor: referenced entity not found")
)

// Outcome reports the result of one editor operation. Success is false
// whenever Err is non-nil; Warning carries a non-fatal note (e.g. a level
// set above the normal cap) that did not prevent the operation.
type Outcome struct {
	Success bool
	Err     error
	Warning string
}

func ok() Outcome                { return Outcome{Success: true} }
func okWith(warning string) Outcome { return Outcome{Success: true, Warning: warning} }
func fail(err error) Outcome     { return Outcome{Success: false, Err: err} }
