package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum - statutory loan programs amortized through payroll.
type Type string

const (
	TypeSSSSalary      Type = "sss_salary"
	TypeSSSCalamity    Type = "sss_calamity"
	TypePagIBIGShort   Type = "pagibig_stl"
	TypePagIBIGHousing Type = "pagibig_housing"
	TypeCompany        Type = "company"
)

// Payment - One amortization payment against an employee loan.
type Payment struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	LoanID          string
	LoanType        Type
	ReferenceNumber string
	Principal       decimal.Decimal
	PaymentDate     time.Time
	Amount          decimal.Decimal
	Balance         decimal.Decimal
	CreatedAt       time.Time

	// Joined employee fields
	EmployeeCode  string
	LastName      string
	FirstName     string
	MiddleName    string
	Suffix        string
	SSSNumber     string
	PagIBIGNumber string
}
