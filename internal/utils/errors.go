package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrEmailExists      = errors.New("email_exists")
	ErrUnknownEmail     = errors.New("unknown_email")
	ErrWrongCredentials = errors.New("wrong_credentials")

	ErrUnknownUserFactor   = errors.New("unknown_user_factor")
	ErrUnknownFamilyFactor = errors.New("unknown_family_factor")
)
