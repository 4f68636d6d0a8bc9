package gallery

import "errors"

var (
	ErrNotFound     = errors.New("photo not found")
	ErrAccessDenied = errors.New("access denied")
	ErrInvalidImage = errors.New("invalid or unsupported image")
)
