package courts

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("court not found")
)
