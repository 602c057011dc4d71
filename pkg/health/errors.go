package health

import "errors"

// ErrCheckTimeout marks a check that did not finish within the configured
// timeout. Recorded as the check's error text in the response.
var ErrCheckTimeout = errors.New("health: check timeout")
