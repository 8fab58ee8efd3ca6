// Package lock serializes booking attempts for one staff member.
package lock

import "errors"

// ErrBusy is returned when the lock could not be acquired before the
// context deadline or the configured wait.
var ErrBusy = errors.New("staff schedule is busy")
