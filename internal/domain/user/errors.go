package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyUsed  = errors.New("email already registered")
	ErrResetTokenInvalid = errors.New("invalid or expired token")
)
