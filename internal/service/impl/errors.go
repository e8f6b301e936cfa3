package impl

import "errors"

const minPasswordLength = 8

var (
	ErrEmptyPassword  = errors.New("empty password")
	ErrPasswordLength = errors.New("password too short")
)
