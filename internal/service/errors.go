package service

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("an account with this email already exists")
	ErrUserNotVerified = errors.New("account is not verified")
	ErrInvalidCode     = errors.New("invalid or expired passcode")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingSection  = errors.New("section is required")
	ErrRecordNotFound  = errors.New("no test record for this user")
)
