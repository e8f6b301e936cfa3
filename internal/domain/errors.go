package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEntity    = errors.New("duplicate entity")
	ErrNotFound           = errors.New("not found")
	ErrNoOwnedCompany     = errors.New("employer owns no company")
	ErrInvalidToken       = errors.New("invalid activation token")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotActivated       = errors.New("account not activated")
)
