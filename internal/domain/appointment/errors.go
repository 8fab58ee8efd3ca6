package appointment

import "errors"

// Kind classifies why a scheduling or lifecycle request was rejected.
type Kind string

const (
	KindConflict      Kind = "time_conflict"
	KindHours         Kind = "outside_working_hours"
	KindPastTime      Kind = "in_the_past"
	KindDuration      Kind = "invalid_duration"
	KindTenant        Kind = "tenant_mismatch"
	KindNotFound      Kind = "not_found"
	KindAuthorization Kind = "not_authorized"
	KindState         Kind = "invalid_state"
	KindValidation    Kind = "invalid_input"
)

// Error is the single rejection type raised by the engine.
// Code is a more specific machine code ("staff_not_found"); it defaults to Kind.
type Error struct {
	Kind Kind
	Code string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return e.Code
	}
	return string(e.Kind)
}

func Reject(kind Kind, code string) error {
	return &Error{Kind: kind, Code: code}
}

func ErrConflict() error      { return Reject(KindConflict, "") }
func ErrHours() error         { return Reject(KindHours, "") }
func ErrPastTime() error      { return Reject(KindPastTime, "") }
func ErrDuration() error      { return Reject(KindDuration, "") }
func ErrTenant() error        { return Reject(KindTenant, "") }
func ErrAuthorization() error { return Reject(KindAuthorization, "") }
func ErrState() error         { return Reject(KindState, "") }

func ErrNotFound(entity string) error {
	return Reject(KindNotFound, entity+"_not_found")
}

func ErrValidation(code string) error {
	return Reject(KindValidation, code)
}

// KindOf reports the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
