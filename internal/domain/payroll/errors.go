package payroll

import "errors"

var (
	ErrEntryNotFound      = errors.New("payroll entry not found")
	ErrEntryAlreadyPaid   = errors.New("payroll entry already paid, cannot modify")
	ErrInvalidPeriod      = errors.New("invalid payroll period")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEntryAlreadyExists = errors.New("payroll entry already exists for this period")
)
