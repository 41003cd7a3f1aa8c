package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrUsernameExists  = errors.New("company username already exists")
)
