package http

import "errors"

// errInvalidJSON is reported when a request body cannot be decoded.
// The decoder's own message is logged; clients get this stable wording.
var errInvalidJSON = errors.New("invalid JSON was passed")
