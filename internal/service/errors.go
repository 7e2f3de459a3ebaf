package service

import "errors"

// Sentinel errors returned by service methods. The HTTP layer maps them to
// status codes via its errorStatusMap; callers match with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request payload fails
	// service-level validation (missing required field, invalid enum value,
	// password shorter than the minimum). The wrapping message names the
	// offending field.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by the login stub when the supplied
	// password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when signing a session token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
