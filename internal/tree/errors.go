package tree

import "errors"

var (
	ErrRootNotFound  = errors.New("root directory not found")
	ErrNotADirectory = errors.New("root path is not a directory")
)
