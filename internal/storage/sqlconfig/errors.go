package sqlconfig

import "errors"

// ErrNotFound is returned when a lookup or write targets a missing row.
var ErrNotFound = errors.New("record not found")
