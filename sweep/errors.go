package sweep

import "errors"

// ErrNilObserver indicates Run was called with a nil Observer.
var ErrNilObserver = errors.New("sweep: observer must not be nil")
