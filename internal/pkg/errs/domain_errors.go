package errs

import "errors"

// Sentinels shared by the command and query layers
var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrDuplicateUsername = errors.New("username already taken")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
