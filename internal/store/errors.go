package store

import "errors"

// ErrKeyNotFound signals that a document has never been written. Callers
// treat it as "use defaults", not as a failure.
var ErrKeyNotFound = errors.New("store: key not found")
