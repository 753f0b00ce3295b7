package activities

import "errors"

// Domain errors. The messages are part of the public API and are returned verbatim
// as the "detail" of the error response.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Student is already signed up")
	ErrActivityFull     = errors.New("Activity is full")
	ErrNotRegistered    = errors.New("Student is not registered")

	ErrActivityExists  = errors.New("activity already exists")
	ErrInvalidActivity = errors.New("invalid activity")
)
