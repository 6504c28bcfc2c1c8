package domain

import (
	"errors"
	"fmt"
)

// Reasons carried by StateError.
const (
	ReasonWrongTurn       = "wrong turn"
	ReasonNothingToUndo   = "nothing to undo"
	ReasonNoSuchMove      = "no such move"
	ReasonBreaksLaterMove = "edit makes a later move illegal"
)

// FormatError reports move text that matches no recognized move shape.
type FormatError struct {
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Text == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %q", e.Reason, e.Text)
}

// LegalityError reports a well-formed move the rules oracle refused.
// MoveNumber and Color locate the half-move when it is known.
type LegalityError struct {
	SAN        string
	Reason     string
	MoveNumber int
	Color      Color
}

func (e *LegalityError) Error() string {
	if e.MoveNumber > 0 {
		return fmt.Sprintf("illegal move %s at %d (%s): %s", e.SAN, e.MoveNumber, e.Color, e.Reason)
	}
	return fmt.Sprintf("illegal move %s: %s", e.SAN, e.Reason)
}

// StateError reports an operation that does not fit the ledger's current state.
type StateError struct {
	Reason     string
	MoveNumber int
	Color      Color
	Err        error
}

func (e *StateError) Error() string {
	msg := e.Reason
	if e.MoveNumber > 0 {
		msg = fmt.Sprintf("%s (move %d, %s)", msg, e.MoveNumber, e.Color)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StateError) Unwrap() error { return e.Err }

// IOError wraps a failed export file operation. The message is the underlying error's.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// ErrorKind names the four error classes.
type ErrorKind string

const (
	KindFormat   ErrorKind = "format"
	KindLegality ErrorKind = "legality"
	KindState    ErrorKind = "state"
	KindIO       ErrorKind = "io"
)

// Kind classifies err. Unknown errors yield "".
func Kind(err error) ErrorKind {
	var (
		fe *FormatError
		le *LegalityError
		se *StateError
		ie *IOError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return KindState
	case errors.As(err, &fe):
		return KindFormat
	case errors.As(err, &le):
		return KindLegality
	case errors.As(err, &ie):
		return KindIO
	default:
		return ""
	}
}

// IsStateReason reports whether err is a StateError with the given reason.
func IsStateReason(err error, reason string) bool {
	var se *StateError
	return errors.As(err, &se) && se.Reason == reason
}
