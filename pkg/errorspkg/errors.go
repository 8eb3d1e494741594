// Package errorspkg provides errors shared by every layer of the app.
package errorspkg

import "errors"

// ErrInternal replaces storage and driver failures before they reach a client.
// The original error is logged where it occurs.
var ErrInternal = errors.New("internal")
