package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrTINExists          = errors.New("TIN already registered in this company")
	ErrEmailExists        = errors.New("email already registered in this company")
)
