package store

import "errors"

// ErrStorage marks cache read/write failures (unavailable data directory,
// corrupt database file, failed transaction). Wrapped around the driver error
// so callers can report persistence trouble separately from fetch results.
var ErrStorage = errors.New("conversation cache failure")
