package bluenoise

import "errors"

// ErrInvalidInput reports malformed or degenerate arguments: an empty
// candidate set, a negative target, a duplicate identifier, a non-finite
// coordinate, or a bounding box with zero extent on every axis. Validation
// fails fast, before any index or weight work happens.
var ErrInvalidInput = errors.New("invalid input")

// ErrNumericInstability reports a non-finite radius or weight produced even
// though input validation passed. It signals a heuristic breakdown on
// pathological geometry rather than a caller mistake.
var ErrNumericInstability = errors.New("numeric instability")
