package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus enum
type EntryStatus string

const (
	EntryStatusDraft    EntryStatus = "draft"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusPaid     EntryStatus = "paid"
	EntryStatusVoided   EntryStatus = "voided"
)

// Countable reports whether the entry participates in statutory reports.
// Draft and voided entries never do.
func (s EntryStatus) Countable() bool {
	return s == EntryStatusApproved || s == EntryStatusPaid
}

// Entry - One computed payroll record per employee per pay period.
type Entry struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	PeriodYear  int
	PeriodMonth int
	// PeriodSequence distinguishes multiple runs inside one month, e.g. the
	// two halves of a semi-monthly cycle.
	PeriodSequence int
	PayDate        time.Time

	// Earnings
	BasicPay          decimal.Decimal
	OvertimePay       decimal.Decimal
	HolidayPay        decimal.Decimal
	NightDifferential decimal.Decimal
	ThirteenthMonth   decimal.Decimal
	DeMinimis         decimal.Decimal
	OtherEarnings     decimal.Decimal
	GrossPay          decimal.Decimal

	// Deductions and contributions
	SSSEmployee        decimal.Decimal
	SSSEmployer        decimal.Decimal
	SSSEC              decimal.Decimal
	PhilHealthEmployee decimal.Decimal
	PhilHealthEmployer decimal.Decimal
	PagIBIGEmployee    decimal.Decimal
	PagIBIGEmployer    decimal.Decimal
	WithholdingTax     decimal.Decimal
	OtherDeductions    decimal.Decimal
	NetPay             decimal.Decimal

	Status    EntryStatus
	PaidAt    *time.Time
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined employee fields
	EmployeeCode     string
	LastName         string
	FirstName        string
	MiddleName       string
	Suffix           string
	TIN              string
	SSSNumber        string
	PhilHealthNumber string
	PagIBIGNumber    string
	BirthDate        *time.Time
	HireDate         time.Time
	TerminationDate  *time.Time
	EmploymentStatus string
	DepartmentID     string
	DepartmentName   *string
	PositionName     *string
}
