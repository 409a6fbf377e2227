package tables

import "errors"

// ErrTableLoad is returned when an embedded or loaded table blob is corrupt
// or its magic/version header does not match this build's expectations.
var ErrTableLoad = errors.New("tables: failed to load table blob")
