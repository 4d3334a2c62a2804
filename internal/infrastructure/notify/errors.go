package notify

import (
	crerr "github.com/cockroachdb/errors"
)

// errTransient marks failures worth retrying and worth counting against the
// circuit breaker: network errors, timeouts, 408, 429 and 5xx.
var errTransient = crerr.New("notifier transient failure")

func IsTransient(err error) bool {
	return err != nil && crerr.Is(err, errTransient)
}

func markTransient(err error) error {
	return crerr.Mark(err, errTransient)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == 408 || statusCode == 429 || statusCode >= 500
}
