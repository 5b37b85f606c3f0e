package binio

import "errors"

// ErrLimitExceeded is returned when a length prefix (string or blob) exceeds
// the configured safety bound. It is checked before any allocation happens.
var ErrLimitExceeded = errors.New("binio: length prefix exceeds configured limit")

// ErrNegativeLength is returned when a length-prefixed field carries a
// negative length. Per the wire format, a non-positive length means "empty".
var ErrNegativeLength = errors.New("binio: negative length prefix")

// ErrInvalidUTF8 is returned when a length-prefixed string is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("binio: string is not valid utf-8")
