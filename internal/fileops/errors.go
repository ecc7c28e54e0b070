package fileops

import "errors"

var (
	ErrNotFound  = errors.New("file not found")
	ErrNotAFile  = errors.New("path is not a regular file")
	ErrSerialize = errors.New("serialization failed")
	ErrParse     = errors.New("parse failed")
)
