package photographer

import "errors"

var (
	ErrNotFound      = errors.New("photographer profile not found")
	ErrProfileExists = errors.New("photographer profile already exists")
	ErrAccessDenied  = errors.New("access denied")
)
