package service

import "errors"

// Error taxonomy for the service layer. Controllers translate these into
// HTTP statuses at the request boundary; anything else is an unexpected
// storage failure and becomes a 500.
var (
	ErrValidation = errors.New("required field missing")
	ErrDuplicate  = errors.New("username or email already exists")
	ErrAuth       = errors.New("incorrect email or password")
	ErrNotFound   = errors.New("not found")
)
