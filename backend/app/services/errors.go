package services

import "errors"

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrNotFound           = errors.New("not found")
	ErrMissingKeyword     = errors.New("missing keyword")
)
