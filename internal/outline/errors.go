package outline

import "errors"

// ErrSessionNotFound is returned when a toggle names an unknown session.
var ErrSessionNotFound = errors.New("outline session not found")
