package pathguard

import "errors"

var (
	ErrTraversal     = errors.New("path traversal not allowed")
	ErrDepthExceeded = errors.New("path depth exceeds maximum")
	ErrOutsideRoot   = errors.New("path is outside workspace root")
)
