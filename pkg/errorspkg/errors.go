// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error. Storage failures are wrapped
// into it before crossing the service boundary so that clients never see
// driver details.
var ErrInternal = errors.New("internal")
