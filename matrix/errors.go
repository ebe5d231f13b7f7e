package matrix

import "errors"

// ErrUnknownNode indicates HasID was called with an ID absent from the
// Adjacency's Index.
var ErrUnknownNode = errors.New("matrix: unknown node")
