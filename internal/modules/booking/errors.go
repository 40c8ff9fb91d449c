package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("record not found")
	ErrCourtInactive           = errors.New("court is not active")
	ErrConflict                = errors.New("time slot already booked")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
