package errs

import "errors"

// Sentinels for the query layer; the command layer carries its own set.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("order not found")
)
