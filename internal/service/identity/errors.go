package identity

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrInvalidRole           = errors.New("invalid role")

	ErrIdentityNotFound = errors.New("identity not found")
)
