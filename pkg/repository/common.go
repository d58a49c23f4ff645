package repository

import "strings"

// criticalError marks a failure that must not be retried. Passed to
// repeater.Do as the termination error via errStopRetry, matched through Is.
type criticalError struct {
	err error
}

// errStopRetry terminates the backoff on any *criticalError
var errStopRetry = &criticalError{}

func (e *criticalError) Error() string {
	if e.err == nil {
		return "critical error"
	}
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

// Is matches any *criticalError regardless of the wrapped cause, so the
// repeater can use a single sentinel to stop on all of them
func (e *criticalError) Is(target error) bool {
	_, ok := target.(*criticalError)
	return ok
}

// isLockError reports whether an error is a transient SQLite lock failure.
// Only these are worth retrying, the writes here contend on the single
// news/settings file under the shared-cache DSN.
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{"SQLITE_BUSY", "database is locked", "database table is locked"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
